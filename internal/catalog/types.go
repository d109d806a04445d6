// Package catalog holds the in-memory professor directory the chatbot answers
// from, and resolves free-text queries against it.
package catalog

import "context"

// Person is one professor with the subjects they teach and their class schedule.
type Person struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Department     string          `json:"department"`
	Contact        string          `json:"contact"`
	Email          string          `json:"email"`
	OfficeLocation string          `json:"office_location"`
	Bio            string          `json:"bio"`
	ImageURL       string          `json:"image_url"`
	Subjects       []Subject       `json:"subjects"`
	Schedules      []ScheduleEntry `json:"schedules"`
}

// Subject is a course a person teaches. ID is unique within one person.
type Subject struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Units       int    `json:"units"`
}

// ScheduleEntry is one class meeting. Subject code and name are copied from
// the feed row the entry came from. Time values are kept as text; nil means
// the time is not set.
type ScheduleEntry struct {
	ID           int64   `json:"id"`
	SubjectCode  string  `json:"subject_code"`
	SubjectName  string  `json:"subject_name"`
	Classroom    string  `json:"classroom"`
	Day          string  `json:"day"`
	TimeStart    *string `json:"time_start"`
	TimeEnd      *string `json:"time_end"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academic_year"`
	Section      string  `json:"section"`
	Description  string  `json:"description"`
}

// Attachment is a file uploaded for a person, optionally tied to one of their
// subjects through a schedule. Attachments are fetched per request and never
// stored in a Snapshot.
type Attachment struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	FileType    string `json:"file_type"`
	Description string `json:"description"`
	ScheduleID  *int64 `json:"schedule_id,omitempty"`
	SubjectName string `json:"subject_name,omitempty"`
	SubjectCode string `json:"subject_code,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Row is one flat record of the catalog feed: a person joined with at most one
// subject and at most one schedule. Subject and schedule columns are absent
// (nil IDs) for a person with none.
type Row struct {
	PersonID       int64
	PersonName     string
	Department     string
	Contact        string
	Email          string
	OfficeLocation string
	Bio            string
	ImageURL       string

	SubjectID          *int64
	SubjectCode        string
	SubjectName        string
	SubjectDescription string
	Units              int

	ScheduleID          *int64
	Classroom           string
	Day                 string
	TimeStart           *string
	TimeEnd             *string
	Semester            string
	AcademicYear        string
	Section             string
	ScheduleDescription string
}

// Match pairs a person with one of their subjects.
type Match struct {
	Person  *Person  `json:"professor"`
	Subject *Subject `json:"subject"`
}

// RowSource supplies the flat catalog feed.
type RowSource interface {
	FetchCatalogRows(ctx context.Context) ([]Row, error)
}

// AttachmentSource supplies a person's attachments, newest first.
type AttachmentSource interface {
	FetchAttachments(ctx context.Context, personID int64) ([]Attachment, error)
}
