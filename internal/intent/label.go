// Package intent classifies free-text chat messages into a fixed set of
// intent labels by counting keyword hits against a declarative table.
package intent

// Label is the classified purpose of a user message.
type Label string

// Intent labels. The set is closed: Classify never returns anything else.
const (
	Greeting        Label = "greeting"
	Farewell        Label = "farewell"
	Thanks          Label = "thanks"
	HowAreYou       Label = "how_are_you"
	FeelingGood     Label = "feeling_good"
	FeelingBad      Label = "feeling_bad"
	FeelingTired    Label = "feeling_tired"
	FeelingConfused Label = "feeling_confused"
	FeelingBored    Label = "feeling_bored"
	ComplimentBot   Label = "compliment_bot"
	LoveDeclaration Label = "love_declaration"
	Joke            Label = "joke"
	Age             Label = "age"
	Name            Label = "name"
	Capability      Label = "capability"
	Motivation      Label = "motivation"
	StudyTips       Label = "study_tips"
	ProfessorInfo   Label = "professor_info"
	ProfessorSearch Label = "professor_search"
	Schedule        Label = "schedule"
	Subject         Label = "subject"
	Classroom       Label = "classroom"
	Contact         Label = "contact"
	Attachment      Label = "attachment"
	Help            Label = "help"
	Unknown         Label = "unknown"
)

// All lists every label in declaration order, Unknown last.
var All = []Label{
	Greeting, Farewell, Thanks, HowAreYou,
	FeelingGood, FeelingBad, FeelingTired, FeelingConfused, FeelingBored,
	ComplimentBot, LoveDeclaration, Joke, Age, Name, Capability, Motivation, StudyTips,
	ProfessorInfo, ProfessorSearch, Schedule, Subject, Classroom, Contact, Attachment,
	Help, Unknown,
}

// simple labels answer from a phrase pool without touching the catalog.
var simple = map[Label]bool{
	Greeting: true, Farewell: true, Thanks: true, HowAreYou: true,
	FeelingGood: true, FeelingBad: true, FeelingTired: true, FeelingConfused: true, FeelingBored: true,
	ComplimentBot: true, LoveDeclaration: true, Joke: true, Age: true, Name: true,
	Capability: true, Motivation: true, StudyTips: true, Help: true,
}

// entityBacked labels need a resolved professor.
var entityBacked = map[Label]bool{
	ProfessorInfo: true, ProfessorSearch: true, Schedule: true,
	Classroom: true, Contact: true, Attachment: true,
}

// IsSimple reports whether the label is answered without a catalog lookup.
func (l Label) IsSimple() bool { return simple[l] }

// IsEntityBacked reports whether the label needs a resolved professor.
func (l Label) IsEntityBacked() bool { return entityBacked[l] }

// Valid reports whether l is one of the declared labels.
func (l Label) Valid() bool {
	for _, known := range All {
		if l == known {
			return true
		}
	}
	return false
}

func (l Label) String() string { return string(l) }
