package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/findmyprof/findmyprof-go/internal/catalog"
	domerrors "github.com/findmyprof/findmyprof-go/internal/errors"
)

const sourceName = "sqlite"

// maxSearchTermLength bounds SearchProfessors input, in characters.
const maxSearchTermLength = 100

// catalogRowsQuery returns one row per professor × subject × schedule. The
// schedule join matches on both professor and subject so a schedule only
// attaches to the subject it belongs to.
const catalogRowsQuery = `
	SELECT
		p.id, p.name, p.department, p.contact, p.email, p.office_location, p.bio, p.image_url,
		s.id, s.subject_code, s.subject_name, s.description, s.units,
		sch.id, sch.classroom, sch.day, sch.time_start, sch.time_end,
		sch.semester, sch.academic_year, sch.section, sch.description
	FROM professors p
	LEFT JOIN subjects s ON p.id = s.professor_id
	LEFT JOIN schedules sch ON p.id = sch.professor_id AND s.id = sch.subject_id
	ORDER BY p.name, s.subject_code, sch.day, sch.time_start
`

// FetchCatalogRows returns the flat catalog feed.
func (db *DB) FetchCatalogRows(ctx context.Context) ([]catalog.Row, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, catalogRowsQuery)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query catalog rows", "error", err)
		return nil, domerrors.NewSourceError(sourceName, "fetch catalog rows", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.Row
	for rows.Next() {
		row, err := scanCatalogRow(rows)
		if err != nil {
			return nil, domerrors.NewSourceError(sourceName, "scan catalog row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.NewSourceError(sourceName, "iterate catalog rows", err)
	}

	logSlow(ctx, "FetchCatalogRows", start, "rows", len(out))
	return out, nil
}

func scanCatalogRow(rows *sql.Rows) (catalog.Row, error) {
	var (
		row                                      catalog.Row
		contact, email, office, bio, image       sql.NullString
		subjectID, units, scheduleID             sql.NullInt64
		subjectCode, subjectName, subjectDesc    sql.NullString
		classroom, day, timeStart, timeEnd       sql.NullString
		semester, academicYear, section, schDesc sql.NullString
	)
	err := rows.Scan(
		&row.PersonID, &row.PersonName, &row.Department,
		&contact, &email, &office, &bio, &image,
		&subjectID, &subjectCode, &subjectName, &subjectDesc, &units,
		&scheduleID, &classroom, &day, &timeStart, &timeEnd,
		&semester, &academicYear, &section, &schDesc,
	)
	if err != nil {
		return row, err
	}

	row.Contact = contact.String
	row.Email = email.String
	row.OfficeLocation = office.String
	row.Bio = bio.String
	row.ImageURL = image.String

	row.SubjectID = nullInt64Ptr(subjectID)
	row.SubjectCode = subjectCode.String
	row.SubjectName = subjectName.String
	row.SubjectDescription = subjectDesc.String
	row.Units = int(units.Int64)

	row.ScheduleID = nullInt64Ptr(scheduleID)
	row.Classroom = classroom.String
	row.Day = day.String
	row.TimeStart = nullStringPtr(timeStart)
	row.TimeEnd = nullStringPtr(timeEnd)
	row.Semester = semester.String
	row.AcademicYear = academicYear.String
	row.Section = section.String
	row.ScheduleDescription = schDesc.String
	return row, nil
}

// FetchAttachments returns the professor's files, newest first. Files tied to
// a schedule carry that schedule's subject code and name.
func (db *DB) FetchAttachments(ctx context.Context, professorID int64) ([]catalog.Attachment, error) {
	query := `
		SELECT a.id, a.file_name, a.file_path, a.file_type, a.description, a.schedule_id,
			s.subject_name, s.subject_code
		FROM attachments a
		LEFT JOIN schedules sch ON a.schedule_id = sch.id
		LEFT JOIN subjects s ON sch.subject_id = s.id
		WHERE a.professor_id = ?
		ORDER BY a.created_at DESC, a.id DESC
	`
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, professorID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query attachments",
			"professor_id", professorID,
			"error", err)
		return nil, domerrors.NewSourceError(sourceName, "fetch attachments", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.Attachment
	for rows.Next() {
		var (
			a                        catalog.Attachment
			fileType, desc           sql.NullString
			scheduleID               sql.NullInt64
			subjectName, subjectCode sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.FileName, &a.FilePath, &fileType, &desc, &scheduleID, &subjectName, &subjectCode); err != nil {
			return nil, domerrors.NewSourceError(sourceName, "scan attachment", err)
		}
		a.FileType = fileType.String
		a.Description = desc.String
		a.ScheduleID = nullInt64Ptr(scheduleID)
		a.SubjectName = subjectName.String
		a.SubjectCode = subjectCode.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.NewSourceError(sourceName, "iterate attachments", err)
	}

	logSlow(ctx, "FetchAttachments", start, "professor_id", professorID)
	return out, nil
}

// SearchProfessors returns up to limit professors whose name, department,
// subject name or subject code contains term, ordered by name.
func (db *DB) SearchProfessors(ctx context.Context, term string, limit int) ([]Professor, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(term) > maxSearchTermLength {
		return nil, domerrors.NewValidationError("q", "search term too long")
	}
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT DISTINCT p.id, p.name, p.department, p.contact, p.email, p.office_location, p.bio, p.image_url
		FROM professors p
		LEFT JOIN subjects s ON p.id = s.professor_id
		WHERE p.name LIKE ?1 ESCAPE '\'
			OR p.department LIKE ?1 ESCAPE '\'
			OR s.subject_name LIKE ?1 ESCAPE '\'
			OR s.subject_code LIKE ?1 ESCAPE '\'
		ORDER BY p.name
		LIMIT ?2
	`
	rows, err := db.conn.QueryContext(ctx, query, likePattern(term), limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to search professors",
			"search_term", term,
			"error", err)
		return nil, domerrors.NewSourceError(sourceName, "search professors", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Professor
	for rows.Next() {
		var (
			p                                  Professor
			contact, email, office, bio, image sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Department, &contact, &email, &office, &bio, &image); err != nil {
			return nil, domerrors.NewSourceError(sourceName, "scan professor", err)
		}
		p.Contact = contact.String
		p.Email = email.String
		p.OfficeLocation = office.String
		p.Bio = bio.String
		p.ImageURL = image.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domerrors.NewSourceError(sourceName, "iterate professors", err)
	}
	return out, nil
}

// CountProfessors returns the number of professors stored.
func (db *DB) CountProfessors(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM professors`).Scan(&count); err != nil {
		return 0, domerrors.NewSourceError(sourceName, "count professors", err)
	}
	return count, nil
}

func logSlow(ctx context.Context, op string, start time.Time, args ...any) {
	duration := time.Since(start)
	if duration <= slowQueryThreshold {
		return
	}
	attrs := append([]any{"operation", op, "duration_ms", duration.Milliseconds()}, args...)
	slog.WarnContext(ctx, "slow database operation", attrs...)
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
