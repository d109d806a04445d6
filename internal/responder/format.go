package responder

import (
	"fmt"
	"strings"

	"github.com/findmyprof/findmyprof-go/internal/catalog"
	"github.com/findmyprof/findmyprof-go/internal/sliceutil"
)

// previewLimit caps how many schedules, classrooms, subjects or files a
// reply lists before summarising the rest.
const previewLimit = 3

// FormatSchedule renders up to three entries, one per line, followed by a
// remainder line when more exist.
func FormatSchedule(entries []catalog.ScheduleEntry) string {
	if len(entries) == 0 {
		return "No schedule available."
	}

	lines := make([]string, 0, previewLimit+1)
	for _, e := range sliceutil.Head(entries, previewLimit) {
		lines = append(lines, fmt.Sprintf("📅 %s %s - %s @ %s", e.Day, timeRange(e), e.SubjectCode, e.Classroom))
	}
	if extra := len(entries) - previewLimit; extra > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", extra))
	}
	return strings.Join(lines, "\n")
}

// timeRange renders "start-end"; a missing start is "TBA" and a missing end
// is shown as "TBA" after the start.
func timeRange(e catalog.ScheduleEntry) string {
	if e.TimeStart == nil {
		return "TBA"
	}
	end := "TBA"
	if e.TimeEnd != nil {
		end = *e.TimeEnd
	}
	return *e.TimeStart + "-" + end
}

// Classrooms returns up to three distinct non-empty classrooms in first-seen order.
func Classrooms(entries []catalog.ScheduleEntry) []string {
	rooms := make([]string, 0, len(entries))
	for _, e := range entries {
		if r := strings.TrimSpace(e.Classroom); r != "" {
			rooms = append(rooms, r)
		}
	}
	rooms = sliceutil.Deduplicate(rooms, func(r string) string { return r })
	return sliceutil.Head(rooms, previewLimit)
}

// SubjectCodes joins up to three subject codes, or "None".
func SubjectCodes(subjects []catalog.Subject) string {
	if len(subjects) == 0 {
		return "None"
	}
	codes := make([]string, 0, previewLimit)
	for _, s := range sliceutil.Head(subjects, previewLimit) {
		codes = append(codes, s.Code)
	}
	return strings.Join(codes, ", ")
}

func formatScheduleReply(p *catalog.Person) string {
	return fmt.Sprintf("📋 **%s's Schedule**\n\n%s", p.Name, FormatSchedule(p.Schedules))
}

func formatClassroomReply(p *catalog.Person) string {
	var b strings.Builder
	if p.OfficeLocation != "" {
		fmt.Fprintf(&b, "📍 **%s**\n\nOffice: %s", p.Name, p.OfficeLocation)
	} else {
		fmt.Fprintf(&b, "Office location not available for %s.", p.Name)
	}
	if rooms := Classrooms(p.Schedules); len(rooms) > 0 {
		fmt.Fprintf(&b, "\n\n🏫 Classrooms: %s", strings.Join(rooms, ", "))
	}
	return b.String()
}

func formatContactReply(p *catalog.Person) string {
	var parts []string
	if p.Email != "" {
		parts = append(parts, "📧 "+p.Email)
	}
	if p.Contact != "" {
		parts = append(parts, "📱 "+p.Contact)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("No contact info available for %s.", p.Name)
	}
	return fmt.Sprintf("📞 **%s**\n\n%s", p.Name, strings.Join(parts, "\n"))
}

func formatAttachmentReply(p *catalog.Person, files []catalog.Attachment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📎 **%s's Materials** (%d)\n\n", p.Name, len(files))
	for _, f := range sliceutil.Head(files, previewLimit) {
		b.WriteString("• " + f.FileName)
		if f.SubjectCode != "" {
			b.WriteString(" (" + f.SubjectCode + ")")
		}
		b.WriteString("\n")
	}
	if extra := len(files) - previewLimit; extra > 0 {
		fmt.Fprintf(&b, "\n...and %d more files", extra)
	}
	return b.String()
}

func formatProfileReply(p *catalog.Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👨‍🏫 **%s**\n\n", p.Name)
	fmt.Fprintf(&b, "🏛️ %s\n", p.Department)
	fmt.Fprintf(&b, "📚 %s\n", SubjectCodes(p.Subjects))
	if p.OfficeLocation != "" {
		fmt.Fprintf(&b, "📍 %s\n", p.OfficeLocation)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, "📧 %s", p.Email)
	}
	return b.String()
}

func formatSubjectReply(matches []catalog.Match) string {
	if len(matches) == 1 {
		m := matches[0]
		return fmt.Sprintf("📚 **%s** (%s)\n\n👨‍🏫 %s\n🏛️ %s", m.Subject.Name, m.Subject.Code, m.Person.Name, m.Person.Department)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d professors:\n\n", len(matches))
	for i, m := range sliceutil.Head(matches, previewLimit) {
		fmt.Fprintf(&b, "%d. **%s** - %s\n", i+1, m.Person.Name, m.Subject.Code)
	}
	if extra := len(matches) - previewLimit; extra > 0 {
		fmt.Fprintf(&b, "\n...and %d more", extra)
	}
	return b.String()
}
