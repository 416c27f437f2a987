package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ganglia/scripteval/internal/models"
	"github.com/ganglia/scripteval/internal/services"
)

// maxUploadBytes bounds the in-memory portion of a multipart submission.
const maxUploadBytes = 32 << 20

// subjectForm mirrors the fields of the subject intake form.
type subjectForm struct {
	SubjectID   string `validate:"required"`
	SubjectName string `validate:"required"`
	Filename    string `validate:"required"`
}

// studentForm mirrors the fields of the student intake form.
type studentForm struct {
	RollNumber string `validate:"required"`
	Name       string `validate:"required"`
	SubName    string `validate:"required"`
	Filename   string `validate:"required"`
}

// parseSubjectForm validates a subject submission and converts it into an
// intake request. Any validation problem, including a disallowed file
// extension, is returned as an error; the caller redirects silently.
func (s *Server) parseSubjectForm(r *http.Request) (*models.SubjectIntakeRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("evaluation_scheme")
	if err != nil {
		return nil, fmt.Errorf("missing evaluation scheme file: %w", err)
	}
	defer file.Close()

	form := subjectForm{
		SubjectID:   r.FormValue("subject_id"),
		SubjectName: r.FormValue("subject_name"),
		Filename:    header.Filename,
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid subject form: %w", err)
	}
	if !services.AllowedFile(header.Filename) {
		return nil, fmt.Errorf("file extension not allowed: %s", header.Filename)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation scheme file: %w", err)
	}

	return &models.SubjectIntakeRequest{
		SubjectID:   form.SubjectID,
		Name:        form.SubjectName,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        data,
	}, nil
}

// parseStudentForm validates a student submission and converts it into an
// intake request.
func (s *Server) parseStudentForm(r *http.Request) (*models.StudentIntakeRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile("answer_script")
	if err != nil {
		return nil, fmt.Errorf("missing answer script file: %w", err)
	}
	defer file.Close()

	form := studentForm{
		RollNumber: r.FormValue("roll_number"),
		Name:       r.FormValue("name"),
		SubName:    r.FormValue("sub_name"),
		Filename:   header.Filename,
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid student form: %w", err)
	}
	if !services.AllowedFile(header.Filename) {
		return nil, fmt.Errorf("file extension not allowed: %s", header.Filename)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read answer script file: %w", err)
	}

	return &models.StudentIntakeRequest{
		RollNumber:  form.RollNumber,
		Name:        form.Name,
		SubName:     form.SubName,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        data,
	}, nil
}
