package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
)

func ReviewRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/addReview", h.AddReview).Methods(http.MethodPost)
	router.HandleFunc("/reviews", h.GetReviews).Methods(http.MethodGet)
}
