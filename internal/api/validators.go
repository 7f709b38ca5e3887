package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/carecompanion/internal/config"
	apperrors "github.com/example/carecompanion/internal/errors"
)

// AllowedContentTypes are the MIME types accepted for uploads.
var AllowedContentTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/bmp",
	"image/tiff",
	"image/webp",
}

// ValidateExtension checks the part after the last dot of filename against
// the configured allow-list. A name without a dot is checked as a whole.
func ValidateExtension(filename string, cfg config.UploadConfig) error {
	if filename == "" {
		return apperrors.NewValidationError("No filename provided")
	}
	parts := strings.Split(strings.ToLower(filename), ".")
	ext := parts[len(parts)-1]
	if !slices.Contains(cfg.AllowedExtensions, ext) {
		return apperrors.NewValidationError(fmt.Sprintf("File type '%s' not allowed. Allowed types: %s",
			ext, strings.Join(cfg.AllowedExtensions, ", ")))
	}
	return nil
}

func ValidateContentType(contentType string) error {
	if !slices.Contains(AllowedContentTypes, contentType) {
		return apperrors.NewValidationError(fmt.Sprintf("Content type '%s' not allowed. Allowed types: %s",
			contentType, strings.Join(AllowedContentTypes, ", ")))
	}
	return nil
}

func ValidateSize(size int64, cfg config.UploadConfig) error {
	if size > cfg.MaxBytes() {
		return tooLarge(cfg)
	}
	if size == 0 {
		return apperrors.NewValidationError("Empty file uploaded")
	}
	return nil
}

func tooLarge(cfg config.UploadConfig) error {
	return apperrors.NewTooLargeError(fmt.Sprintf("File too large. Maximum size: %dMB", cfg.MaxFileSizeMB))
}
