package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganglia/scripteval/internal/models"
)

// answerScriptFolder is the object-name prefix for uploaded answer scripts.
const answerScriptFolder = "AnswerScript"

// ErrHandwritingDetection reports that the remote OCR call failed for an
// answer script. The uploaded blob persists; no student record is written.
var ErrHandwritingDetection = errors.New("handwriting detection failed")

// StudentIntakeFunction holds the dependencies for the student intake flow:
// upload the answer script, recognize its text, persist the student record.
type StudentIntakeFunction struct {
	store       ObjectStore
	students    StudentStore
	handwriting *HandwritingExtractor
}

// NewStudentIntake creates a new StudentIntakeFunction instance.
func NewStudentIntake(store ObjectStore, students StudentStore, handwriting *HandwritingExtractor) *StudentIntakeFunction {
	return &StudentIntakeFunction{store: store, students: students, handwriting: handwriting}
}

// Process runs the linear student intake flow: sanitize the filename, upload
// the answer script, download the just-uploaded bytes, run handwriting
// recognition, and replace the student record keyed by roll number. If
// recognition fails, ErrHandwritingDetection is returned and nothing is
// persisted; the uploaded blob is not cleaned up. Empty recognized text from
// a successful detection still produces a record.
func (f *StudentIntakeFunction) Process(ctx context.Context, req *models.StudentIntakeRequest) (*models.StudentIntakeResponse, error) {
	logCtx := slog.With("rollNumber", req.RollNumber)
	logCtx.Info("Starting student intake.", "filename", req.Filename)

	filename := SanitizeFilename(req.Filename)
	objectName := fmt.Sprintf("%s/%s", answerScriptFolder, filename)

	if err := f.store.Upload(ctx, objectName, req.File, req.ContentType); err != nil {
		logCtx.Error("Failed to upload answer script.", "error", err, "object", objectName)
		return nil, fmt.Errorf("failed to upload answer script: %w", err)
	}
	scriptURL := f.store.PublicURL(objectName)

	scriptData, err := f.store.Download(ctx, objectName)
	if err != nil {
		logCtx.Error("Failed to download answer script.", "error", err, "object", objectName)
		return nil, fmt.Errorf("failed to download answer script: %w", err)
	}

	extractedText, ok := f.handwriting.Recognize(ctx, scriptData)
	if !ok {
		logCtx.Error("Handwriting recognition returned no result.", "object", objectName)
		return nil, ErrHandwritingDetection
	}

	student := models.Student{
		RollNumber:           req.RollNumber,
		Name:                 req.Name,
		SubName:              req.SubName,
		AnswerScriptFilename: filename,
		AnswerScriptURL:      scriptURL,
		AnswerScriptText:     extractedText,
	}
	if err := f.students.Put(ctx, &student); err != nil {
		logCtx.Error("Failed to persist student record.", "error", err)
		return nil, fmt.Errorf("failed to persist student record: %w", err)
	}

	logCtx.Info("Student intake complete.", "object", objectName)
	return &models.StudentIntakeResponse{
		Status:     "success",
		ObjectName: objectName,
		ScriptURL:  scriptURL,
	}, nil
}
