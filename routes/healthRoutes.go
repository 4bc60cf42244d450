package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
)

func HealthRoutes(router *mux.Router, h *controller.Handler) {
	router.HandleFunc("/", h.Health).Methods(http.MethodGet)
}

// StaticRoutes serves previously uploaded files. A missing file is a 404
// from the file server.
func StaticRoutes(router *mux.Router, uploadDir string) {
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
}
