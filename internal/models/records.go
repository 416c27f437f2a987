package models

// Subject is the Firestore record for a subject and its evaluation scheme.
// The document is keyed by SubjectID; resubmitting the same ID replaces the
// record wholesale.
type Subject struct {
	SubjectID            string `firestore:"subject_id"`
	Name                 string `firestore:"name"`
	EvaluationSchemeText string `firestore:"evaluation_scheme_text"`
}

// Student is the Firestore record for a submitted answer script. Keyed by
// RollNumber, replaced on resubmission. SubName is free text, not a reference
// to a Subject document.
type Student struct {
	RollNumber           string `firestore:"roll_number"`
	Name                 string `firestore:"name"`
	SubName              string `firestore:"sub_name"`
	AnswerScriptFilename string `firestore:"answer_script_filename"`
	AnswerScriptURL      string `firestore:"answer_script_url"`
	AnswerScriptText     string `firestore:"answer_script_text"`
}
