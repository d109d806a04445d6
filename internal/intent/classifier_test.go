package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	c := NewClassifier(nil)

	tests := []struct {
		name  string
		input string
		want  Label
	}{
		{"Greeting", "hello", Greeting},
		{"Greeting uppercase", "HELLO there", Greeting},
		{"Farewell", "bye", Farewell},
		{"Thanks", "thanks so much", Thanks},
		{"Love beats feeling good on hit count", "I love you", LoveDeclaration},
		{"Joke counts both triggers", "tell me a joke", Joke},
		{"Professor search wins find tie by declaration order", "Find Prof. Santos", ProfessorSearch},
		{"Schedule", "What is Juan Santos's schedule", Schedule},
		{"Subject", "Who teaches Database?", Subject},
		{"Contact", "Contact Dr. Cruz", Contact},
		{"Classroom", "where is the office of juan santos", Classroom},
		{"Capability", "list your features and your abilities", Capability},
		{"Empty", "", Unknown},
		{"Whitespace", "   ", Unknown},
		{"No hits", "qwz xkq", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_TieBreakFollowsTableOrder(t *testing.T) {
	t.Parallel()

	table := Table{
		{Schedule, []string{"alpha"}},
		{Contact, []string{"beta"}},
	}
	assert.Equal(t, Schedule, NewClassifier(table).Classify("alpha beta"))

	reversed := Table{
		{Contact, []string{"beta"}},
		{Schedule, []string{"alpha"}},
	}
	assert.Equal(t, Contact, NewClassifier(reversed).Classify("alpha beta"))
}

func TestClassify_AlwaysReturnsDeclaredLabel(t *testing.T) {
	t.Parallel()
	c := NewClassifier(nil)

	inputs := []string{
		"", "?", "🤖", "find", "who is the schedule contact file help",
		"Ünïcödé text", "1234567890", "hi bye thanks", "\n\t",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		assert.True(t, got.Valid(), "Classify(%q) returned undeclared label %q", in, got)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()
	c := NewClassifier(nil)

	scores := c.Score("I love you")
	assert.Equal(t, 2, scores[LoveDeclaration])
	assert.Equal(t, 1, scores[FeelingGood])
	assert.Equal(t, 1, scores[Greeting]) // "yo" inside "you"
	assert.NotContains(t, scores, Unknown)

	assert.Empty(t, c.Score(""))
}

func TestLabelCategories(t *testing.T) {
	t.Parallel()

	for _, l := range All {
		if l == Unknown || l == Subject {
			assert.False(t, l.IsSimple(), "%s", l)
			assert.False(t, l.IsEntityBacked(), "%s", l)
			continue
		}
		assert.NotEqual(t, l.IsSimple(), l.IsEntityBacked(), "%s must be exactly one of simple/entity", l)
	}
	assert.False(t, Label("bogus").Valid())
}
