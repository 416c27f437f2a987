package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ganglia/scripteval/internal/models"
)

// evalSchemeFolder is the object-name prefix for uploaded evaluation schemes.
const evalSchemeFolder = "EvalScheme"

// SubjectIntakeFunction holds the dependencies for the subject intake flow:
// upload the evaluation scheme, extract its text, persist the subject record.
type SubjectIntakeFunction struct {
	store    ObjectStore
	subjects SubjectStore
}

// NewSubjectIntake creates a new SubjectIntakeFunction instance.
func NewSubjectIntake(store ObjectStore, subjects SubjectStore) *SubjectIntakeFunction {
	return &SubjectIntakeFunction{store: store, subjects: subjects}
}

// Process runs the linear subject intake flow: sanitize the filename, upload
// the scheme to object storage, download the just-uploaded bytes, extract the
// text, and replace the subject record keyed by subject ID. There is no
// rollback of the uploaded blob if a later step fails.
func (f *SubjectIntakeFunction) Process(ctx context.Context, req *models.SubjectIntakeRequest) (*models.SubjectIntakeResponse, error) {
	logCtx := slog.With("subjectId", req.SubjectID)
	logCtx.Info("Starting subject intake.", "filename", req.Filename)

	filename := SanitizeFilename(req.Filename)
	objectName := fmt.Sprintf("%s/%s", evalSchemeFolder, filename)

	if err := f.store.Upload(ctx, objectName, req.File, req.ContentType); err != nil {
		logCtx.Error("Failed to upload evaluation scheme.", "error", err, "object", objectName)
		return nil, fmt.Errorf("failed to upload evaluation scheme: %w", err)
	}

	schemeData, err := f.store.Download(ctx, objectName)
	if err != nil {
		logCtx.Error("Failed to download evaluation scheme.", "error", err, "object", objectName)
		return nil, fmt.Errorf("failed to download evaluation scheme: %w", err)
	}

	textContent, err := ExtractText(schemeData, filename)
	if err != nil {
		logCtx.Error("Failed to extract evaluation scheme text.", "error", err, "object", objectName)
		return nil, fmt.Errorf("failed to extract evaluation scheme text: %w", err)
	}

	subject := models.Subject{
		SubjectID:            req.SubjectID,
		Name:                 req.Name,
		EvaluationSchemeText: textContent,
	}
	if err := f.subjects.Put(ctx, &subject); err != nil {
		logCtx.Error("Failed to persist subject record.", "error", err)
		return nil, fmt.Errorf("failed to persist subject record: %w", err)
	}

	logCtx.Info("Subject intake complete.", "object", objectName)
	return &models.SubjectIntakeResponse{
		Status:     "success",
		ObjectName: objectName,
		SchemeURL:  f.store.PublicURL(objectName),
	}, nil
}
