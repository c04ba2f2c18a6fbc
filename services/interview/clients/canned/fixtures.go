package canned

const (
	QuestionsReply = "```json\n[\n  \"How do goroutines differ from OS threads?\",\n  \"Describe a time you tuned a slow SQL query.\",\n  \"How would you design retries for a flaky upstream API?\"\n]\n```"

	ReportReply = `**CONFIDENCE:** 7

CLARITY: 8

QUESTION COUNT: 6

CORRECT ANSWERS: 4

INCORRECT ANSWERS: 2

TECHNICAL KNOWLEDGE: 7

OVERALL FIT: 7

WHAT WENT WELL:
Explained concurrency primitives accurately
Gave concrete examples from past projects
Asked clarifying questions


AREAS TO IMPROVE:
Database indexing strategies
Structuring answers about system design

AI FEEDBACK: The candidate showed solid fundamentals. Answers on Go concurrency were precise. Database questions revealed gaps. Communication was clear throughout. Overall a promising fit for the role.`

	VoiceReply = "Here is the analysis:\n{\"clarity\": {\"score\": 8}, \"confidence\": {\"score\": 6}, \"speech_patterns\": \"Steady pace with occasional long pauses\"}"

	TranscriptText = "Interviewer: Tell me about goroutines. Candidate: They are lightweight threads managed by the Go runtime."
)

// Offline returns providers that answer every prompt the service sends with
// plausible fixture replies.
func Offline() (*Generator, Transcriber) {
	gen := NewGenerator(QuestionsReply,
		Rule{Contains: "AREAS TO IMPROVE:", Reply: ReportReply},
		Rule{Contains: "speech_patterns", Reply: VoiceReply},
	)
	return gen, Transcriber{Text: TranscriptText}
}
