package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/examdesk/quiz/internal/domain/exam"
	examsession "github.com/examdesk/quiz/internal/domain/exam_session"
	"github.com/examdesk/quiz/internal/domain/result"
	"github.com/examdesk/quiz/internal/domain/student"
	"github.com/examdesk/quiz/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/* ---------------- In-memory fakes that satisfy store.Store & service.Frontend ---------------- */

type fakeStore struct {
	exams   map[string]*exam.Exam
	results []store.StoredResult

	loadErr error
	saveErr error
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{exams: map[string]*exam.Exam{}}
}

func (s *fakeStore) Initialize(context.Context) error { return nil }

func (s *fakeStore) CreateExam(_ context.Context, e *exam.Exam) (int64, error) {
	e.ID = int64(len(s.exams) + 1)
	s.exams[e.Title] = e
	return e.ID, nil
}

func (s *fakeStore) LoadExam(_ context.Context, title string) (*exam.Exam, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	e, ok := s.exams[title]
	if !ok {
		return exam.New(title), nil
	}
	return e, nil
}

func (s *fakeStore) SaveResult(_ context.Context, r result.Result) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	id := int64(len(s.results) + 1)
	s.results = append(s.results, store.StoredResult{ID: id, Result: r})
	return id, nil
}

func (s *fakeStore) GetResult(_ context.Context, id int64) (*store.StoredResult, error) {
	for _, r := range s.results {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeStore) ListResults(_ context.Context, studentID int) ([]store.StoredResult, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []store.StoredResult
	for _, r := range s.results {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) Close() error { return nil }

var errInputClosed = errors.New("input closed")

// fakeFrontend answers from a script and records everything shown to it.
type fakeFrontend struct {
	student    student.Student
	studentErr error
	answers    []int

	asked    []examsession.QuestionView
	rejected []string
	notices  []string
	summary  string
	previous int
	shown    int
}

func (f *fakeFrontend) AskStudent(context.Context) (student.Student, error) {
	if f.studentErr != nil {
		return student.Student{}, f.studentErr
	}
	return f.student, nil
}

func (f *fakeFrontend) AskAnswer(_ context.Context, q examsession.QuestionView) (int, error) {
	if len(f.answers) == 0 {
		return 0, errInputClosed
	}
	f.asked = append(f.asked, q)
	choice := f.answers[0]
	f.answers = f.answers[1:]
	return choice, nil
}

func (f *fakeFrontend) Reject(message string) { f.rejected = append(f.rejected, message) }
func (f *fakeFrontend) Notify(message string) { f.notices = append(f.notices, message) }

func (f *fakeFrontend) ShowResult(summary string, previousAttempts int) {
	f.summary = summary
	f.previous = previousAttempts
	f.shown++
}
