// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ulco/internal/imaging"
	"ulco/internal/storage"
)

const (
	// maxUploadSize is the ceiling for designer and product photos (5 MB).
	maxUploadSize = 5 << 20
)

// Upload handles image uploads from the admin dashboard. Files land in
// the local upload directory, or in object storage when configured, and
// the returned path is embedded into product/collection/hero records.
type Upload struct {
	dir       string // local upload directory
	urlPrefix string // public prefix for locally stored files
	storage   *storage.Client
}

// NewUpload creates the upload handler. storageClient may be nil, in
// which case files are stored on local disk.
func NewUpload(dir, urlPrefix string, storageClient *storage.Client) *Upload {
	return &Upload{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		storage:   storageClient,
	}
}

// Handle processes POST /api/upload. Multipart field "file" carries the
// image; optional field "prefix" names the upload (defaults to "upload")
// so hero images arrive as hero-<timestamp>.<ext>. Responds with the
// path to embed in content records.
func (u *Upload) Handle(w http.ResponseWriter, r *http.Request) {
	// Cap the request body; some overhead allowed for the form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 5MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 5MB.")
		return
	}

	// Sniff the content type from the first 512 bytes; the client header
	// is not trusted.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	// Timestamp-named path, preserved from the original upload scheme.
	prefix := r.FormValue("prefix")
	if prefix == "" {
		prefix = "upload"
	}
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	name := fmt.Sprintf("%s-%d%s", sanitizePrefix(prefix), time.Now().UnixMilli(), ext)

	filePath, err := u.save(r, name, contentType, data)
	if err != nil {
		slog.Error("upload failed", "error", err, "name", name)
		writeError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	// Generate a thumbnail alongside JPEG/PNG/WebP uploads. Best-effort:
	// a failure is logged, never surfaced.
	var thumbPath string
	if imaging.Thumbable(contentType) {
		if thumb, err := imaging.Thumbnail(bytes.NewReader(data), imaging.ThumbMaxWidth); err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "name", name)
		} else if thumb != nil {
			thumbName := strings.TrimSuffix(name, ext) + "_thumb.jpg"
			if tp, err := u.save(r, thumbName, "image/jpeg", thumb); err != nil {
				slog.Warn("thumbnail save failed", "error", err, "name", thumbName)
			} else {
				thumbPath = tp
			}
		}
	}

	resp := map[string]any{
		"success":  true,
		"filePath": filePath,
		"message":  "File uploaded successfully",
	}
	if thumbPath != "" {
		resp["thumbPath"] = thumbPath
	}
	writeJSON(w, http.StatusOK, resp)
}

// save writes the file to object storage when configured, local disk
// otherwise, and returns the public path.
func (u *Upload) save(r *http.Request, name, contentType string, data []byte) (string, error) {
	if u.storage != nil {
		key := "uploads/" + name
		if err := u.storage.Upload(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
			return "", err
		}
		return u.storage.FileURL(key), nil
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	dst := filepath.Join(u.dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return u.urlPrefix + "/" + name, nil
}

// sanitizePrefix keeps upload names to a safe charset: lowercase
// letters, digits, and hyphens.
func sanitizePrefix(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}

// extensionFromType returns a file extension for known image MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
