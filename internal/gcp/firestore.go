package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/ganglia/scripteval/internal/models"
)

// NewFirestoreClient creates and returns a new Firestore client for the given project ID.
// It centralizes client creation for all repositories.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID, ClientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

// SubjectRepository stores subject records in the "subjects" collection,
// one document per subject ID. Set replaces the whole document, which gives
// the overwrite-on-resubmission semantics the intake flow relies on.
type SubjectRepository struct {
	client *firestore.Client
}

// NewSubjectRepository wraps a Firestore client for subject access.
func NewSubjectRepository(client *firestore.Client) *SubjectRepository {
	return &SubjectRepository{client: client}
}

func (r *SubjectRepository) Put(ctx context.Context, subject *models.Subject) error {
	if _, err := r.client.Collection("subjects").Doc(subject.SubjectID).Set(ctx, subject); err != nil {
		return fmt.Errorf("failed to write subject %s: %w", subject.SubjectID, err)
	}
	return nil
}

func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	it := r.client.Collection("subjects").Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list subjects: %w", err)
		}
		var subject models.Subject
		if err := doc.DataTo(&subject); err != nil {
			return nil, fmt.Errorf("failed to decode subject %s: %w", doc.Ref.ID, err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// StudentRepository stores student records in the "students" collection,
// one document per roll number, replaced wholesale on resubmission.
type StudentRepository struct {
	client *firestore.Client
}

// NewStudentRepository wraps a Firestore client for student access.
func NewStudentRepository(client *firestore.Client) *StudentRepository {
	return &StudentRepository{client: client}
}

func (r *StudentRepository) Put(ctx context.Context, student *models.Student) error {
	if _, err := r.client.Collection("students").Doc(student.RollNumber).Set(ctx, student); err != nil {
		return fmt.Errorf("failed to write student %s: %w", student.RollNumber, err)
	}
	return nil
}

func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	it := r.client.Collection("students").Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list students: %w", err)
		}
		var student models.Student
		if err := doc.DataTo(&student); err != nil {
			return nil, fmt.Errorf("failed to decode student %s: %w", doc.Ref.ID, err)
		}
		students = append(students, student)
	}
	return students, nil
}
