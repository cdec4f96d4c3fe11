package exam

// Exam is a titled, ordered collection of questions.
// Once handed to a session it is treated as read-only.
type Exam struct {
	ID        int64
	Title     string
	Questions []Question
}

func New(title string) *Exam {
	return &Exam{
		Title:     title,
		Questions: []Question{},
	}
}

// AddQuestion appends a question after checking its invariants.
func (e *Exam) AddQuestion(q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	q.Options = append([]string(nil), q.Options...)
	e.Questions = append(e.Questions, q)
	return nil
}

func (e *Exam) Len() int {
	return len(e.Questions)
}

// TotalMarks is the sum of every question's mark.
func (e *Exam) TotalMarks() int {
	total := 0
	for _, q := range e.Questions {
		total += q.Mark()
	}
	return total
}
