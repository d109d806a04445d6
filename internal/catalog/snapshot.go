package catalog

import "time"

// Snapshot is an immutable view of the directory. It is built once and
// never modified, so any number of goroutines may read it.
// Callers must not mutate the Person values it hands out.
type Snapshot struct {
	persons []Person
	builtAt time.Time
}

// Build groups feed rows into a snapshot.
//
// Persons appear in first-seen order. A row carrying a subject adds it to the
// person unless a subject with the same ID is already present. A row carrying
// a schedule always appends a ScheduleEntry.
func Build(rows []Row) *Snapshot {
	index := make(map[int64]int)
	persons := make([]Person, 0)

	for i := range rows {
		row := &rows[i]

		pos, ok := index[row.PersonID]
		if !ok {
			pos = len(persons)
			index[row.PersonID] = pos
			persons = append(persons, Person{
				ID:             row.PersonID,
				Name:           row.PersonName,
				Department:     row.Department,
				Contact:        row.Contact,
				Email:          row.Email,
				OfficeLocation: row.OfficeLocation,
				Bio:            row.Bio,
				ImageURL:       row.ImageURL,
				Subjects:       []Subject{},
				Schedules:      []ScheduleEntry{},
			})
		}
		p := &persons[pos]

		if row.SubjectID != nil && !hasSubject(p.Subjects, *row.SubjectID) {
			p.Subjects = append(p.Subjects, Subject{
				ID:          *row.SubjectID,
				Code:        row.SubjectCode,
				Name:        row.SubjectName,
				Description: row.SubjectDescription,
				Units:       row.Units,
			})
		}

		if row.ScheduleID != nil {
			p.Schedules = append(p.Schedules, ScheduleEntry{
				ID:           *row.ScheduleID,
				SubjectCode:  row.SubjectCode,
				SubjectName:  row.SubjectName,
				Classroom:    row.Classroom,
				Day:          row.Day,
				TimeStart:    nonEmpty(row.TimeStart),
				TimeEnd:      nonEmpty(row.TimeEnd),
				Semester:     row.Semester,
				AcademicYear: row.AcademicYear,
				Section:      row.Section,
				Description:  row.ScheduleDescription,
			})
		}
	}

	return &Snapshot{persons: persons, builtAt: time.Now()}
}

// Empty returns a snapshot with no persons and a zero build time.
func Empty() *Snapshot {
	return &Snapshot{persons: []Person{}}
}

// Len returns the number of persons.
func (s *Snapshot) Len() int { return len(s.persons) }

// BuiltAt returns when the snapshot was built, or the zero time for Empty.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Persons returns the persons in catalog order.
func (s *Snapshot) Persons() []Person { return s.persons }

// Person returns the person with the given ID.
func (s *Snapshot) Person(id int64) (*Person, bool) {
	for i := range s.persons {
		if s.persons[i].ID == id {
			return &s.persons[i], true
		}
	}
	return nil, false
}

func hasSubject(subjects []Subject, id int64) bool {
	for _, s := range subjects {
		if s.ID == id {
			return true
		}
	}
	return false
}

// nonEmpty copies a time value, mapping "" to nil.
func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	s := *v
	return &s
}
