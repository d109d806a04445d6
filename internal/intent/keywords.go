package intent

// Rule binds an intent label to its trigger phrases.
type Rule struct {
	Label    Label
	Triggers []string
}

// Table is an ordered keyword table. Order is significant: on equal hit
// counts the earlier rule wins.
type Table []Rule

// DefaultTable is the keyword table used by the chatbot.
// Triggers are matched as lowercase substrings, so short tokens such as "yo"
// or "ty" also fire inside longer words.
var DefaultTable = Table{
	{Greeting, []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "sup", "yo", "hola", "greetings"}},
	{Farewell, []string{"bye", "goodbye", "see you", "later", "see ya", "cya", "gotta go", "take care"}},
	{Thanks, []string{"thanks", "thank you", "appreciate", "grateful", "thx", "ty", "tysm"}},
	{HowAreYou, []string{"how are you", "how r u", "how are u", "whats up", "what's up", "hows it going", "how do you do"}},
	{FeelingGood, []string{"happy", "excited", "great", "wonderful", "fantastic", "amazing", "awesome", "love", "loving"}},
	{FeelingBad, []string{"sad", "depressed", "stressed", "worried", "anxious", "frustrated", "upset", "angry", "mad"}},
	{FeelingTired, []string{"tired", "exhausted", "sleepy", "burned out", "fatigue", "drained"}},
	{FeelingConfused, []string{"confused", "lost", "stuck", "don't understand", "unclear", "puzzled", "overwhelmed"}},
	{FeelingBored, []string{"bored", "boring", "nothing to do", "dull"}},
	{ComplimentBot, []string{"you are amazing", "you are awesome", "you are great", "good job", "well done", "nice", "smart", "helpful"}},
	{LoveDeclaration, []string{"i love you", "love you", "i like you", "you are the best"}},
	{Joke, []string{"tell me a joke", "joke", "make me laugh", "funny", "humor"}},
	{Age, []string{"how old are you", "your age", "when were you born"}},
	{Name, []string{"what is your name", "your name", "who are you", "what are you"}},
	{Capability, []string{"what can you do", "your abilities", "your features"}},
	{Motivation, []string{"motivate me", "inspire me", "encourage", "motivation", "inspiration"}},
	{StudyTips, []string{"study tips", "how to study", "study advice", "exam tips", "study help"}},
	{ProfessorInfo, []string{"who is", "tell me about", "info about", "information", "about"}},
	{ProfessorSearch, []string{"find", "search", "look for", "looking for", "show me"}},
	{Schedule, []string{"schedule", "class", "when", "time", "what time", "timetable"}},
	{Subject, []string{"subject", "teach", "teaches", "teaching", "course", "what does"}},
	{Classroom, []string{"where", "room", "classroom", "location", "find"}},
	{Contact, []string{"contact", "email", "phone", "reach", "how to contact"}},
	{Attachment, []string{"file", "attachment", "document", "material", "resource", "image", "photo"}},
	{Help, []string{"help", "how", "what can you do", "commands", "assist"}},
}

// Labels returns the rule labels in table order.
func (t Table) Labels() []Label {
	labels := make([]Label, 0, len(t))
	for _, r := range t {
		labels = append(labels, r.Label)
	}
	return labels
}
