package model

// Failure records a photo reference that could not be downloaded or written.
type Failure struct {
	PersonID string `json:"person_id"`
	URL      string `json:"url"`
	Error    string `json:"error"`
}

// Report summarizes the outcome of one fetch run.
type Report struct {
	RunID      string    `json:"run_id"`
	Refs       int       `json:"refs"`
	Downloaded int       `json:"downloaded"`
	Files      []string  `json:"files,omitempty"`
	Failures   []Failure `json:"failures,omitempty"`
}
