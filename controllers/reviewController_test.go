package controller_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	controller "github.com/tasmiakhaled/foodWebsite-server/controllers"
	"github.com/tasmiakhaled/foodWebsite-server/storage"
	"github.com/tasmiakhaled/foodWebsite-server/uploads"
)

type reviewForm struct {
	name, email, rating, review string
	imageName, imageType        string
	imageBytes                  []byte
}

func validForm() reviewForm {
	return reviewForm{
		name:   "Alice",
		email:  "alice@example.com",
		rating: "5",
		review: "The pasta was great.",
	}
}

func buildReviewRequest(t *testing.T, form reviewForm) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":   form.name,
		"email":  form.email,
		"rating": form.rating,
		"review": form.review,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		require.NoError(t, writer.WriteField(name, value))
	}

	if form.imageName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="`+form.imageName+`"`)
		header.Set("Content-Type", form.imageType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(form.imageBytes)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/addReview", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAddReviewWithImage(t *testing.T) {
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir)
	require.NoError(t, err)

	store := newFakeStore()
	router := newTestRouter(t, controller.NewHandler(store, sink), dir)

	form := validForm()
	form.imageName = "dinner.png"
	form.imageType = "image/png"
	form.imageBytes = []byte("png payload bytes")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, buildReviewRequest(t, form))

	require.Equal(t, http.StatusOK, rec.Code)
	var id string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	require.NotEmpty(t, id)

	require.Len(t, store.docs[storage.ReviewCollection], 1)
	doc := store.docs[storage.ReviewCollection][0]
	ref, ok := doc["image"].(string)
	require.True(t, ok, "review should reference the stored image")

	stored, err := os.ReadFile(filepath.FromSlash(ref))
	require.NoError(t, err)
	assert.Equal(t, form.imageBytes, stored)

	// the reference resolves through the static route to identical bytes
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/"+filepath.Base(ref), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, form.imageBytes, rec.Body.Bytes())

	// the returned id shows up in the review listing
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id)
}

func TestAddReviewWithoutImage(t *testing.T) {
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir)
	require.NoError(t, err)

	store := newFakeStore()
	router := newTestRouter(t, controller.NewHandler(store, sink), dir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, buildReviewRequest(t, validForm()))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.docs[storage.ReviewCollection], 1)
	assert.Nil(t, store.docs[storage.ReviewCollection][0]["image"])
}

func TestAddReviewNonImageUpload(t *testing.T) {
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir)
	require.NoError(t, err)

	store := newFakeStore()
	router := newTestRouter(t, controller.NewHandler(store, sink), dir)

	form := validForm()
	form.imageName = "notes.txt"
	form.imageType = "text/plain"
	form.imageBytes = []byte("definitely not an image")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, buildReviewRequest(t, form))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Empty(t, store.docs[storage.ReviewCollection])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must leave no file behind")
}

func TestAddReviewMissingFields(t *testing.T) {
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir)
	require.NoError(t, err)

	store := newFakeStore()
	router := newTestRouter(t, controller.NewHandler(store, sink), dir)

	form := validForm()
	form.email = ""

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, buildReviewRequest(t, form))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.docs[storage.ReviewCollection])
}

func TestAddReviewInsertFailureRemovesUpload(t *testing.T) {
	dir := t.TempDir()
	sink, err := uploads.NewDiskSink(dir)
	require.NoError(t, err)

	store := newFakeStore()
	store.insertErr = errors.New("write concern error")
	router := newTestRouter(t, controller.NewHandler(store, sink), dir)

	form := validForm()
	form.imageName = "dinner.png"
	form.imageType = "image/png"
	form.imageBytes = []byte("png payload bytes")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, buildReviewRequest(t, form))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed insert must roll back the stored file")
}

func TestGetReviewsEmpty(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(t, controller.NewHandler(store, nil), t.TempDir())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
