// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ateliercms/internal/imaging"
	"ateliercms/internal/storage"
)

// maxUploadSize bounds public uploads (CVs, drawings, photos).
const maxUploadSize = 5 << 20

var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// UploadHandler proxies file uploads to the S3-compatible media host.
// The storage client is nil when no media host is configured; uploads
// then answer 503 instead of failing deeper in the request.
type UploadHandler struct {
	storage *storage.Client
}

func NewUploadHandler(client *storage.Client) *UploadHandler {
	return &UploadHandler{storage: client}
}

// Public handles POST /api/upload for visitor-submitted files.
func (h *UploadHandler) Public(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, false)
}

// Admin handles POST /api/admin/upload for media library files. Images
// get a thumbnail rendered alongside the original.
func (h *UploadHandler) Admin(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, true)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request, withThumb bool) {
	if h.storage == nil {
		writeError(w, http.StatusServiceUnavailable, "Media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "File exceeds the 5 MB limit")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	// Sniff the real content type rather than trusting the client.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Unreadable file")
		return
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	key := uuid.New().String() + ext
	if err := h.storage.Upload(r.Context(), key, contentType, file, header.Size); err != nil {
		slog.Error("upload failed", "key", key, "error", err)
		writeError(w, http.StatusBadGateway, "Upload to media host failed")
		return
	}

	resp := map[string]any{"success": true, "url": h.storage.FileURL(key)}

	if withThumb && strings.HasPrefix(contentType, "image/") {
		if _, err := file.Seek(0, io.SeekStart); err == nil {
			if thumb, terr := imaging.Thumbnail(file, imaging.ThumbMaxWidth); terr == nil && thumb != nil {
				thumbKey := thumbnailKey(key)
				if uerr := h.storage.Upload(r.Context(), thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); uerr == nil {
					resp["thumb_url"] = h.storage.FileURL(thumbKey)
				} else {
					slog.Warn("thumbnail upload failed", "key", thumbKey, "error", uerr)
				}
			} else if terr != nil {
				slog.Warn("thumbnail generation failed", "key", key, "error", terr)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func thumbnailKey(key string) string {
	base := strings.TrimSuffix(key, filepath.Ext(key))
	return fmt.Sprintf("%s_thumb.jpg", base)
}
