package exam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxOptions is the number of choices a question can present.
const MaxOptions = 4

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

var ErrCorrectIndexOutOfRange = errors.New("correct option index out of range")

var validate = validator.New()

// MarkFor derives the mark awarded for a difficulty tier.
// Matching is case-insensitive and unknown tiers are worth 1.
func MarkFor(difficulty string) int {
	switch strings.ToLower(difficulty) {
	case "easy":
		return 1
	case "medium":
		return 2
	case "hard":
		return 3
	default:
		return 1
	}
}

// Scoring is the metadata attached to a multiple-choice question.
// The mark is derived once from the difficulty and cannot change.
type Scoring struct {
	difficulty string
	mark       int
}

func NewScoring(difficulty string) *Scoring {
	return &Scoring{
		difficulty: difficulty,
		mark:       MarkFor(difficulty),
	}
}

func (s *Scoring) Difficulty() string { return s.difficulty }
func (s *Scoring) Mark() int          { return s.mark }

// Question is one prompt with ordered options. The option order is both the
// display order and the index space of CorrectIndex.
// Scoring is nil for plain questions, which are worth no marks.
type Question struct {
	Prompt       string   `validate:"required"`
	Options      []string `validate:"min=1,max=4,unique,dive,required"`
	CorrectIndex int      `validate:"gte=0"`
	Scoring      *Scoring `validate:"-"`
}

// NewQuestion creates a plain (unscored) question.
func NewQuestion(prompt string, options []string, correctIndex int) (Question, error) {
	q := Question{
		Prompt:       prompt,
		Options:      append([]string(nil), options...),
		CorrectIndex: correctIndex,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// NewMCQ creates a scored multiple-choice question.
func NewMCQ(prompt string, options []string, correctIndex int, difficulty string) (Question, error) {
	q, err := NewQuestion(prompt, options, correctIndex)
	if err != nil {
		return Question{}, err
	}
	q.Scoring = NewScoring(difficulty)
	return q, nil
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid question %q: %w", q.Prompt, err)
	}
	if q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: %w (%d of %d)", q.Prompt, ErrCorrectIndexOutOfRange, q.CorrectIndex, len(q.Options))
	}
	return nil
}

func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

func (q Question) Mark() int {
	if q.Scoring == nil {
		return 0
	}
	return q.Scoring.Mark()
}

func (q Question) Difficulty() string {
	if q.Scoring == nil {
		return ""
	}
	return q.Scoring.Difficulty()
}
