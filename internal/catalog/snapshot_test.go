package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// feedRows mimics the left-joined feed: one row per (person, subject, schedule).
func feedRows() []Row {
	juan := Row{PersonID: 1, PersonName: "Juan Santos", Department: "Computer Science", Email: "juan@uni.edu", OfficeLocation: "CS-201"}
	maria := Row{PersonID: 2, PersonName: "Maria Cruz", Department: "Mathematics"}

	r1 := juan
	r1.SubjectID, r1.SubjectCode, r1.SubjectName, r1.Units = ptr[int64](10), "CS101", "Intro to Programming", 3
	r1.ScheduleID, r1.Day, r1.Classroom = ptr[int64](100), "Monday", "Room 301"
	r1.TimeStart, r1.TimeEnd = ptr("08:00:00"), ptr("09:30:00")

	r2 := r1
	r2.ScheduleID, r2.Day = ptr[int64](101), "Wednesday"
	r2.TimeStart, r2.TimeEnd = nil, ptr("")

	r3 := juan
	r3.SubjectID, r3.SubjectCode, r3.SubjectName = ptr[int64](11), "CS205", "Database Systems"

	m1 := maria

	return []Row{r1, r2, r3, m1}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	snap := Build(feedRows())
	require.Equal(t, 2, snap.Len())

	juan := snap.Persons()[0]
	assert.Equal(t, "Juan Santos", juan.Name)
	assert.Equal(t, "Computer Science", juan.Department)

	require.Len(t, juan.Subjects, 2, "duplicate subject rows collapse")
	assert.Equal(t, "CS101", juan.Subjects[0].Code)
	assert.Equal(t, 3, juan.Subjects[0].Units)
	assert.Equal(t, "CS205", juan.Subjects[1].Code)

	require.Len(t, juan.Schedules, 2)
	mon, wed := juan.Schedules[0], juan.Schedules[1]
	assert.Equal(t, "Monday", mon.Day)
	assert.Equal(t, "CS101", mon.SubjectCode)
	assert.Equal(t, "Intro to Programming", mon.SubjectName)
	require.NotNil(t, mon.TimeStart)
	assert.Equal(t, "08:00:00", *mon.TimeStart)
	assert.Nil(t, wed.TimeStart)
	assert.Nil(t, wed.TimeEnd, "empty time is treated as absent")

	maria := snap.Persons()[1]
	assert.Equal(t, "Maria Cruz", maria.Name)
	assert.NotNil(t, maria.Subjects)
	assert.Empty(t, maria.Subjects)
	assert.Empty(t, maria.Schedules)
}

func TestBuild_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{PersonID: 7, PersonName: "Zed"},
		{PersonID: 3, PersonName: "Amy"},
		{PersonID: 7, PersonName: "Zed", SubjectID: ptr[int64](1), SubjectCode: "Z1"},
	}
	snap := Build(rows)
	require.Equal(t, 2, snap.Len())
	assert.Equal(t, int64(7), snap.Persons()[0].ID)
	assert.Equal(t, int64(3), snap.Persons()[1].ID)
	assert.Len(t, snap.Persons()[0].Subjects, 1)
}

func TestBuild_DoesNotAliasRowTimes(t *testing.T) {
	t.Parallel()

	rows := feedRows()
	snap := Build(rows)
	*rows[0].TimeStart = "23:59:00"
	assert.Equal(t, "08:00:00", *snap.Persons()[0].Schedules[0].TimeStart)
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	snap := Build(nil)
	assert.Zero(t, snap.Len())
	assert.NotNil(t, snap.Persons())
	assert.False(t, snap.BuiltAt().IsZero())
}

func TestSnapshotPerson(t *testing.T) {
	t.Parallel()

	snap := Build(feedRows())
	p, ok := snap.Person(2)
	require.True(t, ok)
	assert.Equal(t, "Maria Cruz", p.Name)

	_, ok = snap.Person(99)
	assert.False(t, ok)
}
