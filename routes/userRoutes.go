package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
)

func UserRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/addUser", h.AddUser).Methods(http.MethodPost)
	router.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/checkUsername", h.CheckUsername).Methods(http.MethodGet)
}
