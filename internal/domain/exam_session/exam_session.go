package examsession

import (
	"errors"
	"fmt"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/student"
	"github.com/examdesk/quiz/internal/id"
)

// NoSelection is submitted when the student advanced without choosing an option.
const NoSelection = -1

var (
	ErrNoSelection      = errors.New("no option selected")
	ErrInvalidSelection = errors.New("selected option does not exist")
	ErrCompleted        = errors.New("session already completed")
	ErrNotCompleted     = errors.New("session not completed")
	ErrOutcomeTaken     = errors.New("session outcome already taken")
)

type State int

const (
	AwaitingAnswer State = iota
	Completed
)

func (s State) String() string {
	switch s {
	case AwaitingAnswer:
		return "awaiting_answer"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// QuestionView is what a frontend may see of the current question.
// The correct option is deliberately absent.
type QuestionView struct {
	Number     int // 1-based
	Total      int
	Prompt     string
	Options    []string
	Difficulty string
	Mark       int
}

// Last reports whether this is the final question of the session.
func (v QuestionView) Last() bool {
	return v.Number == v.Total
}

// Outcome is handed to the result reporter once the session is completed.
type Outcome struct {
	Student student.Student
	Exam    *exam.Exam
	Score   int
}

// Session is one student's single linear walk through an exam.
// Questions are answered in order, each exactly once.
type Session struct {
	ID      string
	Student student.Student

	exam     *exam.Exam
	state    State
	position int
	score    int
	taken    bool
}

// New starts a session. An exam without questions is completed immediately
// with a score of 0.
func New(s student.Student, e *exam.Exam) *Session {
	snapshot := &exam.Exam{
		ID:        e.ID,
		Title:     e.Title,
		Questions: make([]exam.Question, len(e.Questions)),
	}
	copy(snapshot.Questions, e.Questions)

	session := &Session{
		ID:      id.GenerateID(),
		Student: s,
		exam:    snapshot,
		state:   AwaitingAnswer,
	}
	if snapshot.Len() == 0 {
		session.state = Completed
	}
	return session
}

func (s *Session) State() State  { return s.state }
func (s *Session) Position() int { return s.position }
func (s *Session) Score() int    { return s.score }

func (s *Session) Exam() *exam.Exam { return s.exam }

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (QuestionView, error) {
	if s.state == Completed {
		return QuestionView{}, ErrCompleted
	}
	q := s.exam.Questions[s.position]
	return QuestionView{
		Number:     s.position + 1,
		Total:      s.exam.Len(),
		Prompt:     q.Prompt,
		Options:    append([]string(nil), q.Options...),
		Difficulty: q.Difficulty(),
		Mark:       q.Mark(),
	}, nil
}

// Submit scores the selected option for the current question and advances.
// A missing or out-of-range selection is rejected without changing state.
// It reports whether the answer was correct.
func (s *Session) Submit(selected int) (bool, error) {
	if s.state == Completed {
		return false, ErrCompleted
	}
	if selected == NoSelection {
		return false, ErrNoSelection
	}

	q := s.exam.Questions[s.position]
	if selected < 0 || selected >= len(q.Options) {
		return false, fmt.Errorf("%w: %d", ErrInvalidSelection, selected)
	}

	correct := q.IsCorrect(selected)
	if correct {
		s.score += q.Mark()
	}

	s.position++
	if s.position >= s.exam.Len() {
		s.state = Completed
	}
	return correct, nil
}

// Outcome releases the final score. It succeeds exactly once, after completion.
func (s *Session) Outcome() (Outcome, error) {
	if s.state != Completed {
		return Outcome{}, ErrNotCompleted
	}
	if s.taken {
		return Outcome{}, ErrOutcomeTaken
	}
	s.taken = true
	return Outcome{
		Student: s.Student,
		Exam:    s.exam,
		Score:   s.score,
	}, nil
}
