package services

import (
	"context"

	"github.com/ganglia/scripteval/internal/models"
)

// External collaborators of the intake flows. The GCP-backed implementations
// live in internal/gcp; tests substitute in-memory fakes.

// ObjectStore is the blob store holding uploaded evaluation schemes and
// answer scripts.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
	Download(ctx context.Context, objectName string) ([]byte, error)
	PublicURL(objectName string) string
}

// SubjectStore persists subject records keyed by subject ID.
type SubjectStore interface {
	Put(ctx context.Context, subject *models.Subject) error
	List(ctx context.Context) ([]models.Subject, error)
}

// StudentStore persists student records keyed by roll number.
type StudentStore interface {
	Put(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]models.Student, error)
}

// TextDetector is the remote document-text-detection capability.
type TextDetector interface {
	DetectDocumentText(ctx context.Context, image []byte) (string, error)
}
