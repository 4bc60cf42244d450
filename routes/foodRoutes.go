package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
)

func FoodRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/foods", h.GetFoods).Methods(http.MethodGet)
	router.HandleFunc("/foods/{id}", h.GetFood).Methods(http.MethodGet)
	router.HandleFunc("/foods/{id}/like", h.LikeFood).Methods(http.MethodPut)
	router.HandleFunc("/foods/{id}/dislike", h.DislikeFood).Methods(http.MethodPut)
}
