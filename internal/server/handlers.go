package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const formFileField = "file"

// handleHello is the liveness greeting kept for existing clients
func (s *Server) handleHello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "Hello, World!")
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload stores the uploaded résumé and responds with the extracted fields
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	path, err := s.storeUpload(r)
	if err != nil {
		s.logger.Warn("upload.rejected", "err", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.extractor.Extract(r.Context(), path)
	if err != nil {
		s.logger.Warn("upload.extract.failed", "path", path, "err", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.Info("upload.ok", "path", path, "found", result.FoundFields())
	s.jsonResponse(w, http.StatusOK, result)
}

// storeUpload writes the multipart file to <upload dir>/<request id>/<base name>
func (s *Server) storeUpload(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", err
		}
		return "", &ErrValidation{Field: formFileField, Message: "no file part"}
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		return "", &ErrValidation{Field: formFileField, Message: "no file part"}
	}
	defer func() { _ = file.Close() }()

	name := filepath.Base(filepath.Clean("/" + filepath.ToSlash(header.Filename)))
	if name == "/" || name == "." {
		return "", &ErrValidation{Field: formFileField, Message: "no selected file"}
	}

	dir := filepath.Join(s.uploadDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path, nil
}
