package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InitSchema creates all necessary tables and indexes.
// Connection pragmas (WAL, foreign keys) are applied in New.
func InitSchema(ctx context.Context, db *sql.DB) error {
	steps := []struct {
		name  string
		query string
	}{
		{"professors", professorsTable},
		{"subjects", subjectsTable},
		{"schedules", schedulesTable},
		{"attachments", attachmentsTable},
	}
	for _, step := range steps {
		if _, err := db.ExecContext(ctx, step.query); err != nil {
			return fmt.Errorf("failed to create %s table: %w", step.name, err)
		}
	}
	return nil
}

const professorsTable = `
	CREATE TABLE IF NOT EXISTS professors (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		contact TEXT,
		email TEXT,
		office_location TEXT,
		bio TEXT,
		image_url TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_professors_name ON professors(name);
	CREATE INDEX IF NOT EXISTS idx_professors_department ON professors(department);
`

const subjectsTable = `
	CREATE TABLE IF NOT EXISTS subjects (
		id INTEGER PRIMARY KEY,
		professor_id INTEGER NOT NULL REFERENCES professors(id) ON DELETE CASCADE,
		subject_code TEXT NOT NULL,
		subject_name TEXT NOT NULL,
		description TEXT,
		units INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_subjects_professor ON subjects(professor_id);
	CREATE INDEX IF NOT EXISTS idx_subjects_code ON subjects(subject_code);
`

// Time columns are free text ("08:00", "1:30 PM"); NULL means not set.
const schedulesTable = `
	CREATE TABLE IF NOT EXISTS schedules (
		id INTEGER PRIMARY KEY,
		professor_id INTEGER NOT NULL REFERENCES professors(id) ON DELETE CASCADE,
		subject_id INTEGER NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		classroom TEXT,
		day TEXT,
		time_start TEXT,
		time_end TEXT,
		semester TEXT,
		academic_year TEXT,
		section TEXT,
		description TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_schedules_professor_subject ON schedules(professor_id, subject_id);
`

const attachmentsTable = `
	CREATE TABLE IF NOT EXISTS attachments (
		id INTEGER PRIMARY KEY,
		professor_id INTEGER NOT NULL REFERENCES professors(id) ON DELETE CASCADE,
		schedule_id INTEGER REFERENCES schedules(id) ON DELETE SET NULL,
		file_name TEXT NOT NULL,
		file_path TEXT NOT NULL,
		file_type TEXT,
		description TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_attachments_professor ON attachments(professor_id, created_at);
`
