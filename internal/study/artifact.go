package study

// Artifact is a validated structured payload produced by the generation
// pipeline. The concrete types below mirror the JSON shape the model is
// instructed to produce, and the shape stored in artifact history rows.
type Artifact interface {
	Kind() Kind
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Flashcards struct {
	Flashcards []Flashcard `json:"flashcards"`
}

func (Flashcards) Kind() Kind { return KindFlashcards }

type QuizQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

type Quiz struct {
	Quiz []QuizQuestion `json:"quiz"`
}

func (Quiz) Kind() Kind { return KindQuiz }

type StudyDay struct {
	Day   int      `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

type StudyPlan struct {
	Plan []StudyDay `json:"plan"`
}

func (StudyPlan) Kind() Kind { return KindStudyPlan }
