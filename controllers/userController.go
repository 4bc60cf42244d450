package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasmiakhaled/foodWebsite-server/helper"
	"github.com/tasmiakhaled/foodWebsite-server/models"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
)

// AddUser creates a user. The body is stored as sent, so clients may
// attach arbitrary profile fields; only userName is required. The unique
// index on userName backstops the pre-insert check, so a concurrent
// duplicate signup still ends in a 409 rather than two users.
func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var body bson.M
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		helper.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userName, _ := body["userName"].(string)
	if err := validate.Struct(models.User{UserName: userName}); err != nil {
		helper.WriteError(w, http.StatusBadRequest, "userName is required")
		return
	}

	existing, err := h.store.FindByField(ctx, storage.UserCollection, "userName", userName)
	if err != nil {
		log.Printf("Error checking username %q: %v", userName, err)
		helper.WriteError(w, http.StatusInternalServerError, "Error checking username")
		return
	}
	if existing != nil {
		helper.WriteError(w, http.StatusConflict, "Username already exists")
		return
	}

	if _, err := h.store.Insert(ctx, storage.UserCollection, body); err != nil {
		if storage.IsDuplicateKey(err) {
			helper.WriteError(w, http.StatusConflict, "Username already exists")
			return
		}
		log.Printf("Error inserting user %q: %v", userName, err)
		helper.WriteError(w, http.StatusInternalServerError, "User creation failed")
		return
	}

	helper.WriteJSON(w, http.StatusOK, true)
}

// GetUsers returns every user.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := h.store.ListAll(ctx, storage.UserCollection)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		helper.WriteError(w, http.StatusInternalServerError, "Error retrieving users")
		return
	}

	helper.WriteJSON(w, http.StatusOK, users)
}

// CheckUsername reports whether a username is still free.
func (h *Handler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	username := r.URL.Query().Get("username")

	existing, err := h.store.FindByField(ctx, storage.UserCollection, "userName", username)
	if err != nil {
		log.Printf("Error checking username %q: %v", username, err)
		helper.WriteError(w, http.StatusInternalServerError, "Error checking username")
		return
	}

	helper.WriteJSON(w, http.StatusOK, map[string]bool{"available": existing == nil})
}
