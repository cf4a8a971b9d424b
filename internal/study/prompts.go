package study

const flashcardPrompt = "You are a flashcard generator. Given notes, respond with ONLY a JSON object " +
	"in this exact format: " +
	`{"flashcards": [{"question": "...", "answer": "..."}]} ` +
	"No markdown, no extra text, only the JSON object."

const quizPrompt = "You are a quiz generator. Given notes, create a multiple-choice quiz. " +
	"Respond with ONLY a JSON object in this exact format: " +
	`{"quiz": [{"question": "...", "choices": ["choice 1", "choice 2", "choice 3", "choice 4"], "answer": "choice 1"}]} ` +
	"Each item must have exactly 4 choices as plain text (no A/B/C/D prefixes). " +
	"The answer field must be the EXACT full text of the correct choice. " +
	"No markdown, no extra text, only the JSON object."

const studyPlanPrompt = "You are a study planner. Given notes, create a 7-day study plan. " +
	"Respond with ONLY a JSON object in this exact format: " +
	`{"plan": [{"day": 1, "focus": "Topic name", "tasks": ["task 1", "task 2"]}]} ` +
	"Include exactly 7 days (day 1 through 7). Each day has a focus topic and 2-4 tasks. " +
	"No markdown, no extra text, only the JSON object."

// SystemPrompt returns the kind-specific instruction describing the exact
// JSON shape the model must produce and forbidding any non-JSON wrapping.
func SystemPrompt(kind Kind) string {
	switch kind {
	case KindFlashcards:
		return flashcardPrompt
	case KindQuiz:
		return quizPrompt
	case KindStudyPlan:
		return studyPlanPrompt
	}
	return ""
}
