package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	domerrors "github.com/findmyprof/findmyprof-go/internal/errors"
)

// zstdSuffix marks a zstd-compressed seed document.
const zstdSuffix = ".zst"

// DecodeSeed reads a seed document from r. A name ending in ".zst" is
// decompressed first.
func DecodeSeed(r io.Reader, name string) (*Seed, error) {
	if strings.HasSuffix(name, zstdSuffix) {
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("seed: create decoder: %w", err)
		}
		defer decoder.Close()
		r = decoder
	}

	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("seed: decode %s: %w", name, err)
	}
	return &seed, nil
}

// ReadSeedFile decodes the seed document at path.
func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return DecodeSeed(f, path)
}

// ImportSeed upserts every record of seed in a single transaction. Rows
// already present with the same ID are updated in place; other rows are left
// alone. Records must reference parents that exist or appear earlier in seed.
func (db *DB) ImportSeed(ctx context.Context, seed *Seed) (ImportStats, error) {
	var stats ImportStats
	if seed == nil {
		return stats, nil
	}

	start := time.Now()
	now := start.Unix()
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range seed.Professors {
			if strings.TrimSpace(p.Name) == "" {
				return domerrors.NewValidationError("professors.name", fmt.Sprintf("professor %d has no name", p.ID))
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO professors (id, name, department, contact, email, office_location, bio, image_url)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					name = excluded.name,
					department = excluded.department,
					contact = excluded.contact,
					email = excluded.email,
					office_location = excluded.office_location,
					bio = excluded.bio,
					image_url = excluded.image_url`,
				p.ID, p.Name, p.Department,
				nullString(p.Contact), nullString(p.Email), nullString(p.OfficeLocation),
				nullString(p.Bio), nullString(p.ImageURL),
			)
			if err != nil {
				return fmt.Errorf("save professor %d: %w", p.ID, err)
			}
			stats.Professors++
		}

		for _, s := range seed.Subjects {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO subjects (id, professor_id, subject_code, subject_name, description, units)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					professor_id = excluded.professor_id,
					subject_code = excluded.subject_code,
					subject_name = excluded.subject_name,
					description = excluded.description,
					units = excluded.units`,
				s.ID, s.ProfessorID, s.Code, s.Name, nullString(s.Description), s.Units,
			)
			if err != nil {
				return fmt.Errorf("save subject %d: %w", s.ID, err)
			}
			stats.Subjects++
		}

		for _, sch := range seed.Schedules {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO schedules (id, professor_id, subject_id, classroom, day, time_start, time_end,
					semester, academic_year, section, description)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					professor_id = excluded.professor_id,
					subject_id = excluded.subject_id,
					classroom = excluded.classroom,
					day = excluded.day,
					time_start = excluded.time_start,
					time_end = excluded.time_end,
					semester = excluded.semester,
					academic_year = excluded.academic_year,
					section = excluded.section,
					description = excluded.description`,
				sch.ID, sch.ProfessorID, sch.SubjectID,
				nullString(sch.Classroom), nullString(sch.Day),
				nullStringFromPtr(sch.TimeStart), nullStringFromPtr(sch.TimeEnd),
				nullString(sch.Semester), nullString(sch.AcademicYear),
				nullString(sch.Section), nullString(sch.Description),
			)
			if err != nil {
				return fmt.Errorf("save schedule %d: %w", sch.ID, err)
			}
			stats.Schedules++
		}

		for _, a := range seed.Attachments {
			createdAt := a.CreatedAt
			if createdAt == 0 {
				createdAt = now
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO attachments (id, professor_id, schedule_id, file_name, file_path, file_type, description, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					professor_id = excluded.professor_id,
					schedule_id = excluded.schedule_id,
					file_name = excluded.file_name,
					file_path = excluded.file_path,
					file_type = excluded.file_type,
					description = excluded.description,
					created_at = excluded.created_at`,
				a.ID, a.ProfessorID, nullInt64FromPtr(a.ScheduleID),
				a.FileName, a.FilePath, nullString(a.FileType), nullString(a.Description), createdAt,
			)
			if err != nil {
				return fmt.Errorf("save attachment %d: %w", a.ID, err)
			}
			stats.Attachments++
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "seed import failed", "error", err)
		return ImportStats{}, domerrors.NewSourceError(sourceName, "import seed", err)
	}

	slog.DebugContext(ctx, "batch operation completed",
		"operation", "ImportSeed",
		"professors", stats.Professors,
		"subjects", stats.Subjects,
		"schedules", stats.Schedules,
		"attachments", stats.Attachments,
		"duration_ms", time.Since(start).Milliseconds())
	return stats, nil
}

// ClearCatalog deletes every professor, subject, schedule and attachment
// in one transaction, children first.
func (db *DB) ClearCatalog(ctx context.Context) error {
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"attachments", "schedules", "subjects", "professors"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return domerrors.NewSourceError(sourceName, "clear catalog", err)
	}
	return nil
}

func nullStringFromPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64FromPtr(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}
