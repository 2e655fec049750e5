// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthportal/internal/models"
	"healthportal/internal/storage"
	"healthportal/internal/store"
)

// maxUploadSize is the maximum allowed image upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedImageTypes defines MIME types accepted for article images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Media serves image uploads backing the article editor.
type Media struct {
	storage *storage.Client // nil when object storage is not configured
	media   *store.MediaStore
}

// NewMedia creates the media handler group.
func NewMedia(client *storage.Client, media *store.MediaStore) *Media {
	return &Media{storage: client, media: media}
}

// Upload handles POST /media: multipart "file" field in, media record out.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "File is too large (max 10 MB) or form is malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	// Sniff the real content type; the declared header is not trusted.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, "Cannot read file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedImageTypes[contentType] {
		respondError(w, http.StatusBadRequest, "Unsupported file type: only JPEG, PNG, GIF, and WebP images are accepted")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, http.StatusBadRequest, "Cannot read file")
		return
	}

	key := buildStorageKey(header.Filename)
	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("media upload", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	record, err := h.media.Create(r.Context(), &models.Media{
		Filename:    filepath.Base(header.Filename),
		ContentType: contentType,
		SizeBytes:   header.Size,
		StorageID:   key,
		URL:         h.storage.FileURL(key),
	})
	if err != nil {
		slog.Error("media record", "error", err, "key", key)
		// The object is orphaned without its record; remove it.
		if delErr := h.storage.Delete(r.Context(), key); delErr != nil {
			slog.Error("media cleanup", "error", delErr, "key", key)
		}
		respondError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	respondData(w, http.StatusCreated, record)
}

// buildStorageKey produces a date-partitioned, collision-free object key
// that keeps the original extension for content-type hints.
func buildStorageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return time.Now().UTC().Format("2006/01") + "/" + uuid.NewString() + ext
}
