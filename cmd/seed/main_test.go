package main

import (
	"testing"

	"github.com/findmyprof/findmyprof-go/internal/storage"
)

func TestParseFiles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single file", "seed.json", []string{"seed.json"}},
		{"multiple files", "a.json,b.json.zst", []string{"a.json", "b.json.zst"}},
		{"with spaces", " a.json , b.json ", []string{"a.json", "b.json"}},
		{"empty string", "", []string{}},
		{"only commas", ",,,", []string{}},
		{"case preserved", "Seeds/Prof.JSON", []string{"Seeds/Prof.JSON"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFiles(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFiles(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseFiles(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCountSeeds(t *testing.T) {
	seeds := []*storage.Seed{
		{
			Professors: []storage.Professor{{ID: 1, Name: "Juan Santos"}, {ID: 2, Name: "Maria Cruz"}},
			Subjects:   []storage.SubjectRecord{{ID: 10, ProfessorID: 1}},
		},
		{
			Professors:  []storage.Professor{{ID: 3, Name: "Ana Reyes"}},
			Attachments: []storage.AttachmentRecord{{ID: 1000, ProfessorID: 3}},
		},
	}

	want := "3 professors, 1 subjects, 0 schedules, 1 attachments"
	if got := countSeeds(seeds); got != want {
		t.Errorf("countSeeds() = %q, want %q", got, want)
	}
}
