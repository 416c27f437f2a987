package services

import (
	"context"
	"fmt"

	"github.com/ganglia/scripteval/internal/models"
)

// In-memory fakes for the intake flow collaborators.

type fakeObjectStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
	uploadErr    error
	downloadErr  error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (s *fakeObjectStore) Upload(_ context.Context, objectName string, data []byte, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.objects[objectName] = append([]byte(nil), data...)
	s.contentTypes[objectName] = contentType
	return nil
}

func (s *fakeObjectStore) Download(_ context.Context, objectName string) ([]byte, error) {
	if s.downloadErr != nil {
		return nil, s.downloadErr
	}
	data, ok := s.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s does not exist", objectName)
	}
	return data, nil
}

func (s *fakeObjectStore) PublicURL(objectName string) string {
	return "https://storage.example.com/test-bucket/" + objectName
}

type fakeSubjectStore struct {
	records map[string]models.Subject
	putErr  error
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{records: make(map[string]models.Subject)}
}

func (s *fakeSubjectStore) Put(_ context.Context, subject *models.Subject) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.records[subject.SubjectID] = *subject
	return nil
}

func (s *fakeSubjectStore) List(_ context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	for _, subject := range s.records {
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

type fakeStudentStore struct {
	records map[string]models.Student
	putErr  error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{records: make(map[string]models.Student)}
}

func (s *fakeStudentStore) Put(_ context.Context, student *models.Student) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.records[student.RollNumber] = *student
	return nil
}

func (s *fakeStudentStore) List(_ context.Context) ([]models.Student, error) {
	var students []models.Student
	for _, student := range s.records {
		students = append(students, student)
	}
	return students, nil
}

type fakeDetector struct {
	text string
	err  error
}

func (d *fakeDetector) DetectDocumentText(_ context.Context, _ []byte) (string, error) {
	return d.text, d.err
}
