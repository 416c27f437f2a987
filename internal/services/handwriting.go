package services

import (
	"context"
	"log/slog"
)

// HandwritingExtractor recognizes handwritten or scanned text in answer
// script images through a remote document-text-detection service.
type HandwritingExtractor struct {
	detector TextDetector
}

// NewHandwritingExtractor wraps a TextDetector.
func NewHandwritingExtractor(detector TextDetector) *HandwritingExtractor {
	return &HandwritingExtractor{detector: detector}
}

// Recognize submits the image bytes for full-document text detection. On
// success it returns the recognized text, which may be empty, and ok=true.
// A failed remote call is recovered: the error is logged and ok=false is
// returned, never an error to the caller.
func (h *HandwritingExtractor) Recognize(ctx context.Context, image []byte) (string, bool) {
	text, err := h.detector.DetectDocumentText(ctx, image)
	if err != nil {
		slog.Error("Error during document text detection.", "error", err)
		return "", false
	}
	return text, true
}
