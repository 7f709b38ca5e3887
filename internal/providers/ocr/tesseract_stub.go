//go:build !tesseract

package ocr

func newTesseractEngine() Engine { return nil }
