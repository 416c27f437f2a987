package web

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/ganglia/scripteval/internal/models"
	"github.com/ganglia/scripteval/internal/services"
)

// subjectView augments a subject record with a paragraph preview of its
// evaluation scheme for the index page.
type subjectView struct {
	models.Subject
	SchemeParagraphs []string
}

// indexData is the template payload for the index page.
type indexData struct {
	Subjects []subjectView
	Students []models.Student
	Flashes  []flashMessage
}

// handleIndex lists all subjects and students. The two reads are independent
// and run concurrently.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var subjects []models.Subject
	var students []models.Student
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		subjects, err = s.subjects.List(gctx)
		return err
	})
	eg.Go(func() error {
		var err error
		students, err = s.students.List(gctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		slog.Error("Failed to load index listings.", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := indexData{
		Students: students,
		Flashes:  s.popFlashes(w, r),
	}
	for _, subject := range subjects {
		data.Subjects = append(data.Subjects, subjectView{
			Subject:          subject,
			SchemeParagraphs: s.segmenter.SegmentParagraphs(subject.EvaluationSchemeText),
		})
	}

	if err := s.templates.ExecuteTemplate(w, "add_subject.html", data); err != nil {
		slog.Error("Failed to render index.", "error", err)
	}
}

// studentPageData is the template payload for the student form page rendered
// after a successful subject intake.
type studentPageData struct {
	SuccessMessage string
}

// handleAddSubject runs the subject intake flow. A malformed form submission
// redirects silently; processing failures flash an error.
func (s *Server) handleAddSubject(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSubjectForm(r)
	if err != nil {
		slog.Warn("Rejected subject submission.", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := s.subjectIntake.Process(r.Context(), req); err != nil {
		if errors.Is(err, services.ErrMalformedDocument) {
			s.flash(w, r, "danger", "Could not read the evaluation scheme file. Please check it and try again.")
		} else {
			s.flash(w, r, "danger", "Error adding subject. Please try again.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := studentPageData{SuccessMessage: "Subject added successfully!"}
	if err := s.templates.ExecuteTemplate(w, "add_student.html", data); err != nil {
		slog.Error("Failed to render student form page.", "error", err)
	}
}

// handleAddStudent runs the student intake flow. A failed handwriting
// detection flashes an error and persists nothing.
func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseStudentForm(r)
	if err != nil {
		slog.Warn("Rejected student submission.", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := s.studentIntake.Process(r.Context(), req); err != nil {
		if errors.Is(err, services.ErrHandwritingDetection) {
			s.flash(w, r, "danger", "Error processing handwriting. Please try again.")
		} else {
			s.flash(w, r, "danger", "Error adding student. Please try again.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.flash(w, r, "success", "Student added successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
