package result

import (
	"fmt"
	"strings"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/student"
)

// Result is the write-once outcome of a completed session.
// Student and exam details are copied so later changes to either
// do not leak into a result that already exists.
type Result struct {
	StudentID   int
	StudentName string
	ExamTitle   string
	Score       int
	TotalMarks  int
	Percentage  float64
}

// New finalizes a session outcome into a Result.
func New(s student.Student, e *exam.Exam, score int) Result {
	total := e.TotalMarks()
	return Result{
		StudentID:   s.ID,
		StudentName: s.Name,
		ExamTitle:   e.Title,
		Score:       score,
		TotalMarks:  total,
		Percentage:  Percentage(score, total),
	}
}

// Percentage returns 100*score/total, or 0 when total is 0.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Summary renders the result for display.
func (r Result) Summary() string {
	var b strings.Builder
	b.WriteString("=== Examination Result ===\n")
	fmt.Fprintf(&b, "Student: %s (ID: %d)\n", r.StudentName, r.StudentID)
	fmt.Fprintf(&b, "Exam: %s\n", r.ExamTitle)
	fmt.Fprintf(&b, "Score: %d / %d\n", r.Score, r.TotalMarks)
	fmt.Fprintf(&b, "Percentage: %.2f%%", r.Percentage)
	return b.String()
}
