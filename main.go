package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	database "github.com/tasmiakhaled/foodWebsite-server/config"
	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
	middleware "github.com/tasmiakhaled/foodWebsite-server/middlewares"
	"github.com/tasmiakhaled/foodWebsite-server/routes"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
	"github.com/tasmiakhaled/foodWebsite-server/uploads"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	uri := os.Getenv("DB")
	if uri == "" {
		log.Fatal("DB is not set in the environment variables")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "foodMood"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "https://restaurantapp-bd68c.web.app"
	}

	client := database.Connect(uri)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := client.Database(dbName)
	if err := database.EnsureUserIndexes(db); err != nil {
		log.Fatalf("Error creating user indexes: %v", err)
	}

	sink, err := uploads.NewDiskSink(uploadDir)
	if err != nil {
		log.Fatalf("Error preparing upload directory: %v", err)
	}

	h := controller.NewHandler(storage.NewGateway(db), sink)

	router := mux.NewRouter()
	router.Use(middleware.Logging)

	routes.FoodRoutes(router, h)
	routes.UserRoutes(router, h)
	routes.ReviewRoutes(router, h)
	routes.StaticRoutes(router, uploadDir)
	routes.HealthRoutes(router, h)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{corsOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Food server is running on %s", port)
	if err := http.ListenAndServe(":"+port, cors(router)); err != nil {
		log.Fatal(err)
	}
}
