// Package sentiment scores chat text for polarity and subjectivity and maps
// the result to a coarse emotion label with a display glyph.
package sentiment

// Emotion is a coarse affect label derived from user text.
type Emotion string

// Emotion labels.
const (
	VeryHappy Emotion = "very_happy"
	Happy     Emotion = "happy"
	Neutral   Emotion = "neutral"
	Sad       Emotion = "sad"
	VerySad   Emotion = "very_sad"
	Loving    Emotion = "loving"
	Grateful  Emotion = "grateful"
	Angry     Emotion = "angry"
	Tired     Emotion = "tired"
	Stressed  Emotion = "stressed"
	Bored     Emotion = "bored"
	Excited   Emotion = "excited"
	Confused  Emotion = "confused"
	Needy     Emotion = "needy"
	Content   Emotion = "content"
)

// glyphs maps every label to exactly one display glyph.
var glyphs = map[Emotion]string{
	VeryHappy: "😊",
	Happy:     "🙂",
	Neutral:   "😐",
	Sad:       "😢",
	VerySad:   "😢",
	Loving:    "💕",
	Grateful:  "🙏",
	Angry:     "😠",
	Tired:     "😴",
	Stressed:  "😰",
	Bored:     "😑",
	Excited:   "🤩",
	Confused:  "😕",
	Needy:     "🆘",
	Content:   "🙂",
}

// Glyph returns the display glyph for the label.
// It panics on an undeclared label: labels only come from this package.
func (e Emotion) Glyph() string {
	g, ok := glyphs[e]
	if !ok {
		panic("sentiment: no glyph for emotion " + string(e))
	}
	return g
}

// Valid reports whether e is a declared label.
func (e Emotion) Valid() bool {
	_, ok := glyphs[e]
	return ok
}

func (e Emotion) String() string { return string(e) }

// Result is the outcome of analysing one message.
type Result struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Emotion      Emotion `json:"emotion"`
	Glyph        string  `json:"emoji"`
}

// Override maps a keyword set to the emotion it forces.
type Override struct {
	Emotion  Emotion
	Keywords []string
}

// DefaultOverrides is checked in order against lowercased text; the first
// set with any substring hit replaces the polarity bucket.
var DefaultOverrides = []Override{
	{Loving, []string{"love", "loving", "adore", "i love you"}},
	{Grateful, []string{"thanks", "thank you", "appreciate", "grateful", "tysm", "thx"}},
	{Sad, []string{"sad", "depressed", "upset", "crying", "unhappy", "miserable"}},
	{Angry, []string{"angry", "mad", "furious", "annoyed", "irritated", "pissed"}},
	{Tired, []string{"tired", "exhausted", "sleepy", "fatigue", "burned out", "drained"}},
	{Stressed, []string{"stressed", "stressed out", "anxious", "worried", "nervous", "overwhelmed"}},
	{Bored, []string{"bored", "boring", "dull", "meh"}},
	{Excited, []string{"excited", "awesome", "amazing", "fantastic", "wonderful", "yay", "woohoo"}},
	{Happy, []string{"happy", "glad", "joyful", "cheerful", "delighted", "pleased"}},
	{Confused, []string{"confused", "lost", "don't understand", "unclear", "puzzled"}},
	{Needy, []string{"help", "please", "need", "urgent", "asap"}},
	{Content, []string{"great", "good", "fine", "okay", "alright"}},
}

// bucket maps a polarity score to a coarse label.
func bucket(polarity float64) Emotion {
	switch {
	case polarity > 0.5:
		return VeryHappy
	case polarity > 0.1:
		return Happy
	case polarity < -0.5:
		return VerySad
	case polarity < -0.1:
		return Sad
	default:
		return Neutral
	}
}
