package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/ganglia/scripteval/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionName = "scripteval"

// flashMessage is a categorized user-facing notice carried across a redirect.
type flashMessage struct {
	Category string
	Text     string
}

// Server wires the intake services to the three HTTP routes and owns the
// template and session machinery.
type Server struct {
	subjectIntake *services.SubjectIntakeFunction
	studentIntake *services.StudentIntakeFunction
	subjects      services.SubjectStore
	students      services.StudentStore
	segmenter     *services.Segmenter
	sessions      *sessions.CookieStore
	validate      *validator.Validate
	templates     *template.Template
}

// NewServer constructs a Server with all collaborators passed in explicitly.
func NewServer(
	subjectIntake *services.SubjectIntakeFunction,
	studentIntake *services.StudentIntakeFunction,
	subjects services.SubjectStore,
	students services.StudentStore,
	segmenter *services.Segmenter,
	secret string,
) *Server {
	return &Server{
		subjectIntake: subjectIntake,
		studentIntake: studentIntake,
		subjects:      subjects,
		students:      students,
		segmenter:     segmenter,
		sessions:      sessions.NewCookieStore([]byte(secret)),
		validate:      validator.New(),
		templates:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router returns the route table for the application.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods("GET")
	router.HandleFunc("/add_subject", s.handleAddSubject).Methods("POST")
	router.HandleFunc("/add_student", s.handleAddStudent).Methods("POST")
	return router
}

// flash queues a categorized message for the next rendered page.
func (s *Server) flash(w http.ResponseWriter, r *http.Request, category, text string) {
	session, _ := s.sessions.Get(r, sessionName)
	session.AddFlash(text, category)
	_ = session.Save(r, w)
}

// popFlashes drains all queued flash messages, success first.
func (s *Server) popFlashes(w http.ResponseWriter, r *http.Request) []flashMessage {
	session, _ := s.sessions.Get(r, sessionName)
	var messages []flashMessage
	for _, category := range []string{"success", "danger"} {
		for _, value := range session.Flashes(category) {
			if text, ok := value.(string); ok {
				messages = append(messages, flashMessage{Category: category, Text: text})
			}
		}
	}
	_ = session.Save(r, w)
	return messages
}
