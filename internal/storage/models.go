package storage

// Professor is a row of the professors table.
type Professor struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Contact        string `json:"contact,omitempty"`
	Email          string `json:"email,omitempty"`
	OfficeLocation string `json:"office_location,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// SubjectRecord is a row of the subjects table.
type SubjectRecord struct {
	ID          int64  `json:"id"`
	ProfessorID int64  `json:"professor_id"`
	Code        string `json:"subject_code"`
	Name        string `json:"subject_name"`
	Description string `json:"description,omitempty"`
	Units       int    `json:"units"`
}

// ScheduleRecord is a row of the schedules table. Nil times are stored as NULL.
type ScheduleRecord struct {
	ID           int64   `json:"id"`
	ProfessorID  int64   `json:"professor_id"`
	SubjectID    int64   `json:"subject_id"`
	Classroom    string  `json:"classroom,omitempty"`
	Day          string  `json:"day,omitempty"`
	TimeStart    *string `json:"time_start,omitempty"`
	TimeEnd      *string `json:"time_end,omitempty"`
	Semester     string  `json:"semester,omitempty"`
	AcademicYear string  `json:"academic_year,omitempty"`
	Section      string  `json:"section,omitempty"`
	Description  string  `json:"description,omitempty"`
}

// AttachmentRecord is a row of the attachments table. CreatedAt is a Unix
// timestamp; zero means "now" on import.
type AttachmentRecord struct {
	ID          int64  `json:"id"`
	ProfessorID int64  `json:"professor_id"`
	ScheduleID  *int64 `json:"schedule_id,omitempty"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	FileType    string `json:"file_type,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

// Seed is the JSON document imported into a fresh database.
type Seed struct {
	Professors  []Professor        `json:"professors"`
	Subjects    []SubjectRecord    `json:"subjects"`
	Schedules   []ScheduleRecord   `json:"schedules"`
	Attachments []AttachmentRecord `json:"attachments"`
}

// ImportStats reports how many rows of each table a seed import wrote.
type ImportStats struct {
	Professors  int
	Subjects    int
	Schedules   int
	Attachments int
}
