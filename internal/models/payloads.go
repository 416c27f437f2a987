package models

// These structs carry validated form submissions from the web layer into the
// intake services.

// SubjectIntakeRequest is the input for the subject intake flow.
type SubjectIntakeRequest struct {
	SubjectID   string
	Name        string
	Filename    string
	ContentType string
	File        []byte
}

// SubjectIntakeResponse is the output of the subject intake flow.
type SubjectIntakeResponse struct {
	Status     string
	ObjectName string
	SchemeURL  string
}

// StudentIntakeRequest is the input for the student intake flow.
type StudentIntakeRequest struct {
	RollNumber  string
	Name        string
	SubName     string
	Filename    string
	ContentType string
	File        []byte
}

// StudentIntakeResponse is the output of the student intake flow.
type StudentIntakeResponse struct {
	Status     string
	ObjectName string
	ScriptURL  string
}
