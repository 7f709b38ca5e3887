package api

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/example/carecompanion/internal/errors"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
)

// multipartOverhead leaves room for boundaries and part headers on top of the
// file size limit.
const multipartOverhead = 1 << 20

// handleProcessDocument handles POST {prefix}/process-document
func (s *Server) handleProcessDocument(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerFromContext(r.Context())
	maxBytes := s.upload.MaxBytes()

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			s.respondAppError(w, tooLarge(s.upload))
			return
		}
		s.respondAppError(w, apperrors.NewUnprocessableError("multipart form with a 'file' field is required"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondAppError(w, apperrors.NewUnprocessableError("field 'file' is required"))
		return
	}
	defer file.Close()

	logger.Info().Str("filename", header.Filename).Msg("processing document upload")

	if err := ValidateExtension(header.Filename, s.upload); err != nil {
		s.respondAppError(w, err)
		return
	}
	if err := ValidateContentType(header.Header.Get("Content-Type")); err != nil {
		s.respondAppError(w, err)
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		s.respondAppError(w, apperrors.NewInternalError("failed to read upload", err))
		return
	}
	if err := ValidateSize(int64(len(content)), s.upload); err != nil {
		s.respondAppError(w, err)
		return
	}

	status, resp := s.processor.ProcessDocument(r.Context(), content, header.Filename)
	if status == models.StatusFailed {
		msg := "unknown error"
		if resp != nil && resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		logger.Error().Str("filename", header.Filename).Msg("Document processing failed: " + msg)
		respondWithError(w, http.StatusInternalServerError, "Document processing failed: "+msg)
		return
	}

	logger.Info().
		Str("filename", header.Filename).
		Float64("seconds", resp.ProcessingTimeSeconds).
		Msg("document processed")
	respondWithJSON(w, http.StatusOK, resp)
}

func (s *Server) respondAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Type == apperrors.ErrorTypeInternal {
			respondInternalError(w, map[string]any{"error": appErr.Error()})
			return
		}
		respondWithError(w, appErr.HTTPStatus(), appErr.Message)
		return
	}
	respondInternalError(w, map[string]any{"error": err.Error()})
}
