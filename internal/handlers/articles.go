// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"healthportal/internal/ai"
	"healthportal/internal/markdown"
	"healthportal/internal/metrics"
	"healthportal/internal/middleware"
	"healthportal/internal/models"
	"healthportal/internal/slug"
	"healthportal/internal/store"
)

// slugRetries bounds the suffixed-slug attempts on collision.
const slugRetries = 3

// Articles serves the content lifecycle and engagement endpoints.
type Articles struct {
	contents   *store.ContentStore
	engagement *store.EngagementStore
	doctors    *store.DoctorStore
	provider   ai.Provider // nil when no generation backend is configured
	collector  *metrics.Collector
}

// NewArticles creates the article handler group.
func NewArticles(contents *store.ContentStore, engagement *store.EngagementStore, doctors *store.DoctorStore, provider ai.Provider, collector *metrics.Collector) *Articles {
	return &Articles{
		contents:   contents,
		engagement: engagement,
		doctors:    doctors,
		provider:   provider,
		collector:  collector,
	}
}

// createRequest is the create payload. System-managed fields (slug, views,
// likes, publishedAt) have no place here and are silently ignored if sent.
type createRequest struct {
	AuthorClerkID string             `json:"authorClerkId"`
	Type          models.ContentType `json:"type"`
	Title         string             `json:"title"`
	Body          string             `json:"content"`
	KeyPoints     []string           `json:"keyPoints"`
	Prompt        string             `json:"prompt"`
	Tags          []string           `json:"tags"`
	Images        []models.Image     `json:"images"`
}

// Create handles POST /articles. An Article with an empty body is drafted
// by the AI provider from the title, key points, and optional prompt;
// Announcements and Alerts always require caller-supplied text.
func (h *Articles) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if msg := validateContentFields(req.Type, req.Title, req.Tags, req.Images); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validateBody(req.Body); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	title := strings.TrimSpace(req.Title)

	// Resolve the author. An unknown or absent clerk id is not an error:
	// the item is stored as admin-authored.
	var authorID *uuid.UUID
	if req.AuthorClerkID != "" {
		doctor, err := h.doctors.FindByClerkID(r.Context(), req.AuthorClerkID)
		if err != nil {
			slog.Error("resolve author", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create article")
			return
		}
		if doctor != nil {
			authorID = &doctor.ID
		}
	}

	body := req.Body
	if req.Type == models.ContentTypeArticle && strings.TrimSpace(body) == "" && h.provider != nil {
		prompt := ai.BuildArticlePrompt(title, req.KeyPoints, req.Prompt)
		generated, err := h.provider.Generate(r.Context(), prompt, ai.ArticleTemperature)
		if err != nil {
			// Generation failure is not fatal here; the emptiness check
			// below turns it into a 422 without persisting anything.
			slog.Error("article generation failed", "error", err, "title", title)
			h.collector.RecordGeneration(false)
		} else {
			h.collector.RecordGeneration(true)
			body = strings.TrimSpace(generated)
		}
	}

	if req.Type != models.ContentTypeArticle && strings.TrimSpace(body) == "" {
		respondError(w, http.StatusBadRequest, "Content is required for Announcement and Alert")
		return
	}
	if req.Type == models.ContentTypeArticle && strings.TrimSpace(body) == "" {
		respondError(w, http.StatusUnprocessableEntity,
			"AI did not return content. Provide content or try again with keyPoints/prompt.")
		return
	}

	base := slug.Generate(title)
	if base == "" {
		base = uuid.NewString()[:8]
	}

	item := &models.Content{
		AuthorID: authorID,
		Type:     req.Type,
		Title:    title,
		Slug:     base,
		Body:     body,
		Tags:     req.Tags,
		Images:   req.Images,
	}

	created, err := h.contents.Create(r.Context(), item)
	for attempt := 0; err == store.ErrDuplicateSlug && attempt < slugRetries; attempt++ {
		item.Slug = base + "-" + uuid.NewString()[:8]
		created, err = h.contents.Create(r.Context(), item)
	}
	if err != nil {
		slog.Error("create content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Article created successfully",
		Data:    created,
	})
}

// List handles GET /articles.
func (h *Articles) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.contents.List(r.Context(), middleware.ViewerFromCtx(r.Context()))
	if err != nil {
		slog.Error("list content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if items == nil {
		items = []models.Content{}
	}
	respondData(w, http.StatusOK, items)
}

// Get handles GET /articles/{id}. Every successful fetch counts one view.
func (h *Articles) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := h.contents.GetAndCountView(r.Context(), id, middleware.ViewerFromCtx(r.Context()))
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		slog.Error("get content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch article")
		return
	}

	html, err := markdown.ToHTML(item.Body)
	if err != nil {
		slog.Error("render content html", "error", err, "id", item.ID)
	} else {
		item.BodyHTML = html
	}

	respondData(w, http.StatusOK, item)
}

// updateRequest is the partial update payload. Pointer fields distinguish
// "absent" from "set to zero". authorId, slug, views, likes, and
// publishedAt are not decoded at all, so clients cannot touch them.
type updateRequest struct {
	Type   *models.ContentType `json:"type"`
	Title  *string             `json:"title"`
	Body   *string             `json:"content"`
	Tags   *[]string           `json:"tags"`
	Images *[]models.Image     `json:"images"`
}

// Update handles PUT /articles/{id}.
func (h *Articles) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid type: must be Article, Announcement, or Alert.")
		return
	}
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if msg := validateContentFields(models.ContentTypeArticle, trimmed, nil, nil); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		req.Title = &trimmed
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			respondError(w, http.StatusBadRequest, "Content cannot be empty")
			return
		}
		if msg := validateBody(*req.Body); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}
	if req.Tags != nil || req.Images != nil {
		var tags []string
		if req.Tags != nil {
			tags = *req.Tags
		}
		var images []models.Image
		if req.Images != nil {
			images = *req.Images
		}
		if msg := validateContentFields(models.ContentTypeArticle, "x", tags, images); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}

	updated, err := h.contents.Update(r.Context(), id, store.ContentPatch{
		Type:   req.Type,
		Title:  req.Title,
		Body:   req.Body,
		Tags:   req.Tags,
		Images: req.Images,
	})
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		slog.Error("update content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Article updated successfully",
		Data:    updated,
	})
}

// Publish handles PATCH /articles/{id}/publish. Publishing is a one-way
// transition; republishing just refreshes the timestamp.
func (h *Articles) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	published, err := h.contents.Publish(r.Context(), id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		slog.Error("publish content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to publish article")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Article published successfully",
		Data:    published,
	})
}

// Delete handles DELETE /articles/{id}.
func (h *Articles) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := h.contents.Delete(r.Context(), id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		slog.Error("delete content", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}

	respondMessage(w, http.StatusOK, "Article deleted successfully")
}

// Like handles POST /articles/{id}/like.
func (h *Articles) Like(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerFromCtx(r.Context())
	if viewerID == "" {
		writeJSON(w, http.StatusUnauthorized, engagementResponse{Message: "Unauthorized"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, engagementResponse{Message: "Invalid article id"})
		return
	}

	likes, err := h.engagement.Like(r.Context(), id, viewerID)
	switch err {
	case nil:
		h.collector.RecordLike()
		respondEngagement(w, http.StatusOK, "Liked", likes)
	case store.ErrAlreadyLiked:
		respondEngagement(w, http.StatusBadRequest, "Already liked", likes)
	case store.ErrNotFound:
		writeJSON(w, http.StatusNotFound, engagementResponse{Message: "Content not found"})
	default:
		slog.Error("like content", "error", err)
		writeJSON(w, http.StatusInternalServerError, engagementResponse{Message: "Internal server error"})
	}
}

// Unlike handles DELETE /articles/{id}/like.
func (h *Articles) Unlike(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.ViewerFromCtx(r.Context())
	if viewerID == "" {
		writeJSON(w, http.StatusUnauthorized, engagementResponse{Message: "Unauthorized"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, engagementResponse{Message: "Invalid article id"})
		return
	}

	likes, err := h.engagement.Unlike(r.Context(), id, viewerID)
	switch err {
	case nil:
		h.collector.RecordUnlike()
		respondEngagement(w, http.StatusOK, "Like removed", likes)
	case store.ErrNotLikedYet:
		respondEngagement(w, http.StatusBadRequest, "Not liked before", likes)
	case store.ErrNotFound:
		writeJSON(w, http.StatusNotFound, engagementResponse{Message: "Content not found"})
	default:
		slog.Error("unlike content", "error", err)
		writeJSON(w, http.StatusInternalServerError, engagementResponse{Message: "Internal server error"})
	}
}

// ListByDoctor handles GET /articles/doctor/{clerkUserId}: all items
// authored by that doctor, plus the doctor's profile.
func (h *Articles) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, ok := h.resolveDoctor(w, r)
	if !ok {
		return
	}

	items, err := h.contents.ListByAuthor(r.Context(), doctor.ID, middleware.ViewerFromCtx(r.Context()))
	if err != nil {
		slog.Error("list content by author", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if items == nil {
		items = []models.Content{}
	}

	respondData(w, http.StatusOK, map[string]any{
		"doctor":   doctor,
		"articles": items,
	})
}

// ListExcludingDoctor handles GET /articles/doctor/{clerkUserId}/others:
// everything NOT authored by that doctor, admin items included.
func (h *Articles) ListExcludingDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, ok := h.resolveDoctor(w, r)
	if !ok {
		return
	}

	items, err := h.contents.ListExcludingAuthor(r.Context(), doctor.ID, middleware.ViewerFromCtx(r.Context()))
	if err != nil {
		slog.Error("list content excluding author", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if items == nil {
		items = []models.Content{}
	}

	respondData(w, http.StatusOK, map[string]any{
		"excludedDoctor": doctor,
		"articles":       items,
	})
}

func (h *Articles) resolveDoctor(w http.ResponseWriter, r *http.Request) (*models.Doctor, bool) {
	doctor, err := h.doctors.FindByClerkID(r.Context(), chi.URLParam(r, "clerkUserId"))
	if err != nil {
		slog.Error("find doctor", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch articles")
		return nil, false
	}
	if doctor == nil {
		respondError(w, http.StatusNotFound, "Doctor not found")
		return nil, false
	}
	return doctor, true
}

// parseID extracts and validates the {id} route parameter.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid article id")
		return uuid.Nil, false
	}
	return id, true
}
