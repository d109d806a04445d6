package responder

import (
	"github.com/findmyprof/findmyprof-go/internal/intent"
	"github.com/findmyprof/findmyprof-go/internal/sentiment"
)

// GlyphPlaceholder is replaced with the user's emotion glyph in templates.
const GlyphPlaceholder = "{emoji}"

// Pool holds the reply variants and follow-up suggestions for one simple intent.
type Pool struct {
	Messages    []string
	Suggestions []string
}

// DefaultPools covers every simple intent. Each pool has at least three
// variants; farewell has no suggestions.
var DefaultPools = map[intent.Label]Pool{
	intent.Greeting: {
		Messages: []string{
			"Hi there! {emoji} How can I help you today?",
			"Hello! {emoji} What would you like to know?",
			"Hey! {emoji} Need info about professors?",
			"Good to see you! {emoji} What brings you here today?",
		},
		Suggestions: []string{"Find a professor", "Search by subject", "View schedules"},
	},
	intent.HowAreYou: {
		Messages: []string{
			"I'm doing great, thanks for asking! 😊 I'm here and ready to help you find professors and schedules. How are YOU doing?",
			"I'm functioning perfectly! 🤖💚 More importantly, how can I help you today?",
			"I'm excellent! 😄 Always happy to assist students like you. What do you need help with?",
			"Doing wonderful! ✨ Thanks for asking! Now, what can I help you discover today?",
		},
		Suggestions: []string{"I'm doing great!", "Find a professor", "I need help"},
	},
	intent.FeelingGood: {
		Messages: []string{
			"That's wonderful to hear! 😊 Your positive energy is contagious! Now, how can I help make your day even better?",
			"So happy for you! 🎉 Love to see you in such great spirits! What can I assist you with?",
			"Awesome! 🌟 Keep that amazing energy! Need help finding a professor or schedule?",
			"That's fantastic! 💫 Your happiness makes me happy too! What brings you here today?",
		},
		Suggestions: []string{"Find my professor", "View schedules", "Tell me a joke"},
	},
	intent.FeelingBad: {
		Messages: []string{
			"I'm sorry you're feeling down 😢. Remember, tough times don't last, but tough people do! 💪 How can I help lighten your load?",
			"Aw, I wish I could give you a hug! 🤗 Let me help you with what you need - sometimes getting things done helps us feel better.",
			"I hear you 💙. It's okay to have difficult days. Let me assist you so at least one thing goes smoothly today. What do you need?",
			"Sending virtual support your way! 🌈 You've got this! Now, how can I help make things easier for you?",
		},
		Suggestions: []string{"Find my professor", "Need motivation", "Tell me something nice"},
	},
	intent.FeelingTired: {
		Messages: []string{
			"I can tell you're exhausted 😴. Remember to take breaks and rest! Meanwhile, let me help you find what you need quickly so you can relax.",
			"Hang in there! ☕ Maybe grab some coffee and let me do the searching for you. What are you looking for?",
			"Rest is important! 💤 Let me handle the heavy lifting. Tell me what you need and I'll find it fast!",
			"You deserve a break! 🛋️ Let's get your questions answered quickly so you can rest. What do you need help with?",
		},
		Suggestions: []string{"Find a professor", "Quick search", "Study tips"},
	},
	intent.FeelingConfused: {
		Messages: []string{
			"Don't worry, confusion is just a step before clarity! 🤔➡️💡 Let me help clear things up. What's puzzling you?",
			"I'm here to help you figure it out! 🧩 No question is too simple. What do you need explained?",
			"Let's untangle this together! 🎯 Take it one step at a time. What are you confused about?",
			"Confusion is totally normal! 😊 I'll break things down for you. What can I clarify?",
		},
		Suggestions: []string{"Help me understand", "What can you do?", "Show me examples"},
	},
	intent.FeelingBored: {
		Messages: []string{
			"Bored, huh? 😏 Let's fix that! How about exploring some interesting subjects or professors? What catches your interest?",
			"Perfect timing! Let's discover something new together! 🔍✨ What topic intrigues you?",
			"Boredom is just creativity waiting to happen! 🎨 Let me help you find something fascinating. Any interests?",
			"Let's turn that boredom into curiosity! 🚀 Browse professors, subjects, or ask me anything!",
		},
		Suggestions: []string{"Browse professors", "Tell me a joke", "Surprise me"},
	},
	intent.ComplimentBot: {
		Messages: []string{
			"Aww, thank you so much! 🥰 You're pretty awesome yourself! Now, how can this amazing bot help you? 😄",
			"You're making me blush! 😊💕 I really appreciate that! What can I do for you today?",
			"That's so kind of you! 🌟 You just made my day! Now let's make YOUR day better - what do you need?",
			"Thank you! 😄 Compliments like yours are why I love my job! How can I assist you?",
		},
		Suggestions: []string{"Find a professor", "You're welcome!", "Search subjects"},
	},
	intent.LoveDeclaration: {
		Messages: []string{
			"Aww! 💕 While I'm flattered, I'm just a bot, but I love helping you too! 🤖❤️ What can I do for you today?",
			"You're sweet! 🥰 I care about helping you succeed! Now, what do you need assistance with?",
			"Love you too, in my own bot way! 😊💙 Let's channel that positive energy - what are you looking for?",
			"That's adorable! 💖 I'm here for you anytime! Now, how can I help you today?",
		},
		Suggestions: []string{"Help me find something", "Tell me a joke", "You're awesome"},
	},
	intent.Joke: {
		Messages: []string{
			"Why did the professor bring a ladder to class? 🪜\nTo reach the high-level concepts! 😄",
			"Why don't scientists trust atoms? ⚛️\nBecause they make up everything! 😂",
			"What did the student say to the professor? 📚\n'I'm in a parallel class!' 😅",
			"Why did the student eat their homework? 📝\nThe teacher said it was a piece of cake! 🍰😂",
			"What's a professor's favorite type of music? 🎵\nClass-ical! 😄",
		},
		Suggestions: []string{"Another joke!", "Find a professor", "That was funny!"},
	},
	intent.Age: {
		Messages: []string{
			"I'm timeless! ⏰✨ Created to help students like you, and I get better every day! Age is just a number anyway! 😄",
			"I'm as old as the database I'm connected to! 📊 But in bot years, I'm pretty young and energetic! 🤖",
			"Let's just say I'm young enough to understand memes and old enough to know my stuff! 😎 How can I help you?",
		},
		Suggestions: []string{"What can you do?", "Find a professor", "Tell me more"},
	},
	intent.Name: {
		Messages: []string{
			"I'm FindMyProf! 🤖 Your friendly assistant for all things professors, schedules, and subjects! What's your name?",
			"You can call me FindMyProf! 😊 I'm here to make your academic life easier! How can I help you today?",
			"I'm your assistant for this platform! 🌟 I help students find professors, schedules, and more! What shall I call you?",
		},
		Suggestions: []string{"What can you do?", "Find a professor", "Help me"},
	},
	intent.Capability: {
		Messages: []string{
			"I'm quite capable! 💪 Here's what I can do:\n\n🔍 Find professors by name\n📚 Search by subject\n📅 Show schedules\n📍 Locate classrooms\n📧 Provide contact info\n📎 Find course materials\n💬 Chat naturally with you!\n\nPlus, I understand emotions and try to respond with empathy! ❤️",
			"Glad you asked! {emoji} I can find professors by name, search subjects, show schedules, point you to classrooms and offices, share contact info, and list course materials.",
			"Here's my toolkit 🧰\n\n🔍 Professors by name\n📚 Subjects and who teaches them\n📅 Class schedules\n📍 Offices and classrooms\n📧 Contact details\n📎 Course files\n\nJust ask!",
		},
		Suggestions: []string{"Find a professor", "Search subjects", "That's cool!"},
	},
	intent.Motivation: {
		Messages: []string{
			"You've got this! 💪 Every expert was once a beginner. Keep pushing forward! 🌟 Now, what can I help you accomplish today?",
			"Believe in yourself! 🚀 You're capable of amazing things! Let's tackle your questions one at a time. What do you need?",
			"Remember: The only way to do great work is to love what you do! ❤️ You're on the right path! How can I help you today?",
			"Success is not final, failure is not fatal! 💫 Keep going, you're doing great! What are you working on?",
			"You're stronger than you think! 🦾 Every day is a chance to grow. Let me help you with what you need! 🌱",
		},
		Suggestions: []string{"Thank you!", "Find my professor", "I needed that"},
	},
	intent.StudyTips: {
		Messages: []string{
			"Here are some study tips! 📚✨\n\n1. 📅 Use the Pomodoro Technique (25 min study, 5 min break)\n2. 📝 Take handwritten notes\n3. 🔄 Review within 24 hours\n4. 👥 Study in groups\n5. 🎯 Set specific goals\n\nNow, need help finding professor info or schedules?",
			"Study smarter, not harder! 🧠💡\n\n✅ Space out your studying\n✅ Test yourself regularly\n✅ Teach someone else\n✅ Get enough sleep\n✅ Stay organized\n\nWhat else can I help with?",
			"Pro study tips! 📖🌟\n\n• Find a quiet study spot 🤫\n• Eliminate distractions 📵\n• Stay hydrated 💧\n• Take regular breaks 🌿\n• Ask questions! (like right now!) 😊\n\nHow can I assist you today?",
		},
		Suggestions: []string{"Thanks for the tips!", "Find my professor", "More tips"},
	},
	intent.Farewell: {
		Messages: []string{
			"Goodbye! {emoji} Feel free to ask anytime!",
			"Take care! 👋 Come back whenever you need help!",
			"See you later! 😊 Good luck with your studies!",
			"Bye! 🌟 You've got this! Come back anytime!",
		},
		Suggestions: []string{},
	},
	intent.Thanks: {
		Messages: []string{
			"You're welcome! {emoji} Happy to help!",
			"Anytime! 😊 That's what I'm here for!",
			"My pleasure! ✨ Glad I could assist!",
			"You're very welcome! 💙 Need anything else?",
		},
		Suggestions: []string{"Find another professor", "Search by subject"},
	},
	intent.Help: {
		Messages: []string{
			"I can help with:\n\n🔍 Find professors\n📚 Search subjects\n📅 View schedules\n📍 Find locations\n📧 Get contacts\n💬 Just chat!\n\nJust ask naturally! I understand emotions too! ❤️",
			"Try asking me things like:\n\n🔍 \"Find Prof. Santos\"\n📚 \"Who teaches Database?\"\n📅 \"Show Prof. Santos's schedule\"\n📧 \"Contact Dr. Cruz\"",
			"Here's how I can help:\n\n• Look up a professor by name\n• Find who teaches a subject\n• Show schedules and classrooms\n• Share contact info and course files",
		},
		Suggestions: []string{"Find Prof. Santos", "Who teaches Database?", "Show me schedules"},
	},
}

// openings are prepended to composed replies, keyed by the user's emotion.
var openings = map[sentiment.Emotion]string{
	sentiment.VerySad:   "I can sense you're feeling down {emoji}. I'm here to help make things easier!",
	sentiment.Sad:       "I can sense you're feeling down {emoji}. I'm here to help make things easier!",
	sentiment.Angry:     "I understand you're frustrated {emoji}. Let's work through this together!",
	sentiment.Tired:     "You sound exhausted {emoji}. Let me help you quickly so you can rest!",
	sentiment.Stressed:  "Take a deep breath {emoji}. I'll help you sort this out!",
	sentiment.Confused:  "No worries, let me clarify things for you {emoji}!",
	sentiment.Bored:     "Let's make this interesting {emoji}!",
	sentiment.Grateful:  "You're very welcome! {emoji} Glad I could help!",
	sentiment.Needy:     "Don't worry, I'm here to help! {emoji}",
	sentiment.Excited:   "Love your energy! {emoji}",
	sentiment.VeryHappy: "Love your energy! {emoji}",
	sentiment.Happy:     "Love your energy! {emoji}",
	sentiment.Loving:    "Love your energy! {emoji}",
	sentiment.Content:   "Great! {emoji}",
}
