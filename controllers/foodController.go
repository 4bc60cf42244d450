package controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tasmiakhaled/foodWebsite-server/helper"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
)

// GetFoods returns every food item.
func (h *Handler) GetFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	foods, err := h.store.ListAll(ctx, storage.FoodCollection)
	if err != nil {
		log.Printf("Error listing foods: %v", err)
		helper.WriteError(w, http.StatusInternalServerError, "Error retrieving food items")
		return
	}

	helper.WriteJSON(w, http.StatusOK, foods)
}

// GetFood returns a single food item. An unknown but well-formed id yields
// a 200 with a null body; only a malformed id is an error.
func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	food, err := h.store.GetByID(ctx, storage.FoodCollection, id)
	if errors.Is(err, storage.ErrInvalidID) {
		helper.WriteError(w, http.StatusBadRequest, "Invalid food id")
		return
	}
	if err != nil {
		log.Printf("Error finding food %s: %v", id, err)
		helper.WriteError(w, http.StatusInternalServerError, "Error retrieving food item")
		return
	}

	helper.WriteJSON(w, http.StatusOK, food)
}

// LikeFood increments the like counter and returns the updated document.
func (h *Handler) LikeFood(w http.ResponseWriter, r *http.Request) {
	h.incrementFood(w, r, "likes")
}

// DislikeFood increments the dislike counter and returns the updated
// document.
func (h *Handler) DislikeFood(w http.ResponseWriter, r *http.Request) {
	h.incrementFood(w, r, "dislikes")
}

func (h *Handler) incrementFood(w http.ResponseWriter, r *http.Request, field string) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]

	food, err := h.store.IncrementField(ctx, storage.FoodCollection, id, field, 1)
	if errors.Is(err, storage.ErrInvalidID) {
		helper.WriteError(w, http.StatusBadRequest, "Invalid food id")
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		helper.WriteError(w, http.StatusNotFound, "Food item not found")
		return
	}
	if err != nil {
		log.Printf("Error updating %s for food %s: %v", field, id, err)
		helper.WriteError(w, http.StatusInternalServerError, "An error occurred while updating the "+field+" count")
		return
	}

	helper.WriteJSON(w, http.StatusOK, food)
}
