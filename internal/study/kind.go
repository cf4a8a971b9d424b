package study

// Kind identifies one of the generated study artifact families.
type Kind string

const (
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
	KindStudyPlan  Kind = "study_plan"
)

func Kinds() []Kind {
	return []Kind{KindFlashcards, KindQuiz, KindStudyPlan}
}

func (k Kind) Valid() bool {
	switch k {
	case KindFlashcards, KindQuiz, KindStudyPlan:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }
