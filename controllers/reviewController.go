package controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/tasmiakhaled/foodWebsite-server/helper"
	"github.com/tasmiakhaled/foodWebsite-server/models"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
	"github.com/tasmiakhaled/foodWebsite-server/uploads"
)

const maxUploadSize = 10 << 20 // 10 MiB

// AddReview creates a review from a multipart form with an optional image
// file. The image is written to disk before the document is inserted; if
// the insert then fails, the stored file is removed so no orphan is left
// behind.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		helper.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	review := models.Review{
		Name:   r.FormValue("name"),
		Email:  r.FormValue("email"),
		Rating: r.FormValue("rating"),
		Review: r.FormValue("review"),
	}
	if err := validate.Struct(review); err != nil {
		helper.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		ref, storeErr := h.sink.Store(file, header.Filename, header.Header.Get("Content-Type"))
		if errors.Is(storeErr, uploads.ErrUnsupportedMediaType) {
			helper.WriteError(w, http.StatusUnsupportedMediaType, "Invalid file type. Only image files are allowed.")
			return
		}
		if storeErr != nil {
			log.Printf("Error storing review image: %v", storeErr)
			helper.WriteError(w, http.StatusInternalServerError, "Error storing image")
			return
		}
		review.Image = &ref
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		helper.WriteError(w, http.StatusBadRequest, "Invalid image field")
		return
	}

	id, err := h.store.Insert(ctx, storage.ReviewCollection, review)
	if err != nil {
		if review.Image != nil {
			if rmErr := h.sink.Remove(*review.Image); rmErr != nil {
				log.Printf("Error removing orphaned upload %s: %v", *review.Image, rmErr)
			}
		}
		log.Printf("Error inserting review: %v", err)
		helper.WriteError(w, http.StatusInternalServerError, "An error occurred while adding the review.")
		return
	}

	helper.WriteJSON(w, http.StatusOK, id)
}

// GetReviews returns every review.
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	reviews, err := h.store.ListAll(ctx, storage.ReviewCollection)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		helper.WriteError(w, http.StatusInternalServerError, "Error retrieving reviews")
		return
	}

	helper.WriteJSON(w, http.StatusOK, reviews)
}
