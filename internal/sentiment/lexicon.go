package sentiment

// Entry is the polarity/subjectivity pair for one word.
type Entry struct {
	Polarity     float64
	Subjectivity float64
}

// Lexicon is a word-level sentiment table.
type Lexicon struct {
	Words        map[string]Entry
	Intensifiers map[string]float64 // multiplier applied to the next scored word
	Negators     map[string]bool
}

// DefaultLexicon covers the vocabulary students typically use when chatting
// with the bot. Values follow the usual adjective-lexicon scale.
var DefaultLexicon = Lexicon{
	Words: map[string]Entry{
		// positive
		"good":        {0.7, 0.6},
		"great":       {0.8, 0.75},
		"excellent":   {1.0, 1.0},
		"amazing":     {0.6, 0.9},
		"awesome":     {1.0, 1.0},
		"wonderful":   {1.0, 1.0},
		"fantastic":   {0.4, 0.9},
		"perfect":     {1.0, 1.0},
		"best":        {1.0, 0.3},
		"better":      {0.5, 0.5},
		"nice":        {0.6, 1.0},
		"happy":       {0.8, 1.0},
		"glad":        {0.5, 1.0},
		"love":        {0.5, 0.6},
		"lovely":      {0.5, 0.75},
		"beautiful":   {0.85, 1.0},
		"cool":        {0.35, 0.65},
		"fun":         {0.3, 0.2},
		"funny":       {0.25, 0.75},
		"smart":       {0.21, 0.64},
		"helpful":     {0.4, 0.5},
		"fine":        {0.42, 0.5},
		"okay":        {0.5, 0.5},
		"ok":          {0.5, 0.5},
		"easy":        {0.43, 0.83},
		"interesting": {0.5, 0.5},
		"excited":     {0.38, 0.75},
		"exciting":    {0.3, 0.8},
		"pleased":     {0.5, 0.5},
		"delighted":   {0.7, 0.8},
		"cheerful":    {0.7, 0.8},
		// negative
		"bad":       {-0.7, 0.67},
		"sad":       {-0.5, 1.0},
		"terrible":  {-1.0, 1.0},
		"awful":     {-1.0, 1.0},
		"horrible":  {-1.0, 1.0},
		"worst":     {-1.0, 1.0},
		"worse":     {-0.4, 0.6},
		"hate":      {-0.8, 0.9},
		"angry":     {-0.5, 1.0},
		"mad":       {-0.625, 1.0},
		"furious":   {-0.9, 1.0},
		"annoyed":   {-0.4, 0.8},
		"tired":     {-0.4, 0.7},
		"exhausted": {-0.4, 0.8},
		"bored":     {-0.5, 1.0},
		"boring":    {-1.0, 1.0},
		"dull":      {-0.3, 0.6},
		"confused":  {-0.4, 0.7},
		"stupid":    {-0.8, 1.0},
		"miserable": {-1.0, 1.0},
		"unhappy":   {-0.6, 0.9},
		"depressed": {-0.6, 0.9},
		"upset":     {-0.5, 0.8},
		"worried":   {-0.4, 0.8},
		"anxious":   {-0.4, 0.8},
		"stressed":  {-0.5, 0.8},
		"difficult": {-0.5, 1.0},
		"hard":      {-0.29, 0.54},
		"wrong":     {-0.5, 0.9},
		"useless":   {-0.5, 0.2},
	},
	Intensifiers: map[string]float64{
		"very":       1.3,
		"really":     1.3,
		"so":         1.2,
		"super":      1.3,
		"extremely":  1.5,
		"incredibly": 1.5,
		"totally":    1.2,
		"quite":      1.1,
		"too":        1.2,
	},
	Negators: map[string]bool{
		"not":     true,
		"no":      true,
		"never":   true,
		"don't":   true,
		"dont":    true,
		"doesn't": true,
		"didn't":  true,
		"isn't":   true,
		"wasn't":  true,
		"aren't":  true,
		"can't":   true,
		"cannot":  true,
		"won't":   true,
	},
}
