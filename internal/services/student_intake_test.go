package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganglia/scripteval/internal/models"
)

func newStudentIntake(store *fakeObjectStore, students *fakeStudentStore, detector *fakeDetector) *StudentIntakeFunction {
	return NewStudentIntake(store, students, NewHandwritingExtractor(detector))
}

func studentRequest() *models.StudentIntakeRequest {
	return &models.StudentIntakeRequest{
		RollNumber:  "R001",
		Name:        "Asha Rao",
		SubName:     "Algorithms",
		Filename:    "answer script.jpg",
		ContentType: "image/jpeg",
		File:        []byte{0xff, 0xd8, 0xff, 0xe0},
	}
}

func TestStudentIntakeSuccess(t *testing.T) {
	store := newFakeObjectStore()
	students := newFakeStudentStore()
	intake := newStudentIntake(store, students, &fakeDetector{text: "Answer text"})

	resp, err := intake.Process(context.Background(), studentRequest())
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "AnswerScript/answer_script.jpg", resp.ObjectName)

	record, ok := students.records["R001"]
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", record.Name)
	assert.Equal(t, "Algorithms", record.SubName)
	assert.Equal(t, "answer_script.jpg", record.AnswerScriptFilename)
	assert.Equal(t, store.PublicURL("AnswerScript/answer_script.jpg"), record.AnswerScriptURL)
	assert.Equal(t, "Answer text", record.AnswerScriptText)
}

func TestStudentIntakeOCRFailure(t *testing.T) {
	store := newFakeObjectStore()
	students := newFakeStudentStore()
	intake := newStudentIntake(store, students, &fakeDetector{err: errors.New("rpc deadline exceeded")})

	_, err := intake.Process(context.Background(), studentRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHandwritingDetection)

	// No record, but the blob is orphaned in storage.
	assert.Empty(t, students.records)
	_, uploaded := store.objects["AnswerScript/answer_script.jpg"]
	assert.True(t, uploaded)
}

func TestStudentIntakeEmptyRecognizedText(t *testing.T) {
	store := newFakeObjectStore()
	students := newFakeStudentStore()
	intake := newStudentIntake(store, students, &fakeDetector{text: ""})

	_, err := intake.Process(context.Background(), studentRequest())
	require.NoError(t, err)

	record, ok := students.records["R001"]
	require.True(t, ok)
	assert.Empty(t, record.AnswerScriptText)
}

func TestStudentIntakeResubmissionReplaces(t *testing.T) {
	store := newFakeObjectStore()
	students := newFakeStudentStore()
	intake := newStudentIntake(store, students, &fakeDetector{text: "First answer"})

	_, err := intake.Process(context.Background(), studentRequest())
	require.NoError(t, err)

	resubmission := studentRequest()
	resubmission.Name = "Asha R."
	resubmission.Filename = "retake.png"
	resubmission.ContentType = "image/png"
	intake = newStudentIntake(store, students, &fakeDetector{text: "Second answer"})

	_, err = intake.Process(context.Background(), resubmission)
	require.NoError(t, err)

	require.Len(t, students.records, 1)
	record := students.records["R001"]
	assert.Equal(t, "Asha R.", record.Name)
	assert.Equal(t, "retake.png", record.AnswerScriptFilename)
	assert.Equal(t, "Second answer", record.AnswerScriptText)
}

func TestStudentIntakeUploadFailure(t *testing.T) {
	store := newFakeObjectStore()
	store.uploadErr = errors.New("bucket unavailable")
	students := newFakeStudentStore()
	intake := newStudentIntake(store, students, &fakeDetector{text: "Answer text"})

	_, err := intake.Process(context.Background(), studentRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrHandwritingDetection)
	assert.Empty(t, students.records)
}
