package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/httpx"
)

type HTTPHandler struct {
	service  *Service
	activity activity.Logger
}

func NewHTTPHandler(service *Service, logger activity.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, activity: logger}
}

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	h.activity.Log(fmt.Sprintf("list books: %d entries", len(books)))
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.activity.Log(fmt.Sprintf("get book id=%d: not found", id))
			httpx.NotFound(w)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	h.activity.Log(fmt.Sprintf("get book id=%d: %q", id, b.Title))
	httpx.JSON(w, http.StatusOK, b)
}

// Add handles POST /api/books
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var b Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be a JSON book")
		return
	}

	if err := h.service.Add(r.Context(), b); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	h.activity.Log(fmt.Sprintf("add book id=%d: %q", b.ID, b.Title))
	httpx.Created(w, fmt.Sprintf("/api/books/%d", b.ID), b)
}

// Delete handles DELETE /api/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	// Deleting an absent ID is a no-op and still a 204.
	h.activity.Log(fmt.Sprintf("delete book id=%d", id))
	httpx.NoContent(w)
}
