package blog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

// Handler handles HTTP requests for blog posts. Mutations are gated
// by the admin bearer middleware at the router layer.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new blog handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /blog requests. Drafts are excluded unless the
// caller explicitly passes published=false.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{
		Category:      Category(q.Get("category")),
		FeaturedOnly:  q.Get("featured") == "true",
		IncludeDrafts: q.Get("published") == "false",
	}

	posts, err := h.repo.List(r.Context(), f)
	if err != nil {
		h.logger.Error("failed to list blog posts", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// Get handles GET /blog/{slug} requests for published posts.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.repo.GetBySlug(r.Context(), slug)
	if errors.Is(err, ErrPostNotFound) {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch blog post", "error", err, "slug", slug)
		writeError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Categories handles GET /blog/categories requests.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": Categories})
}

// Create handles POST /blog requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var post Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.Create(r.Context(), &post); err != nil {
		switch {
		case errors.Is(err, ErrMissingTitle), errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrSlugExists):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create blog post", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create blog post")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Update handles PUT /blog requests.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var post Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.Update(r.Context(), &post); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			writeError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, ErrSlugExists):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update blog post", "error", err, "id", post.ID)
			writeError(w, http.StatusInternalServerError, "Failed to update blog post")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Delete handles DELETE /blog?id= requests.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Post ID required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.Error("failed to delete blog post", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
