package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/examdesk/quiz/internal/domain/exam"
	examsession "github.com/examdesk/quiz/internal/domain/exam_session"
	"github.com/examdesk/quiz/internal/domain/student"
	"github.com/examdesk/quiz/internal/service"
	"github.com/examdesk/quiz/internal/store"
)

// seedTwoQuestions stores an exam with marks [1, 2] and correct indices [1, 0].
func seedTwoQuestions(t *testing.T, s *fakeStore) {
	t.Helper()
	e := exam.New("Two Questions")
	q1, _ := exam.NewMCQ("First?", []string{"a", "b", "c", "d"}, 1, "Easy")
	q2, _ := exam.NewMCQ("Second?", []string{"a", "b"}, 0, "Medium")
	for _, q := range []exam.Question{q1, q2} {
		if err := e.AddQuestion(q); err != nil {
			t.Fatalf("add question: %v", err)
		}
	}
	_, _ = s.CreateExam(context.Background(), e)
}

func newRunner(s *fakeStore, ui *fakeFrontend) *service.Runner {
	logger := discardLogger()
	return service.NewRunner(
		service.NewExamService(s, logger),
		service.NewResultService(s, logger),
		ui,
		logger,
	)
}

func ada() student.Student {
	s, _ := student.New(101, "Ada")
	return s
}

func TestRun_AllCorrect(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)
	ui := &fakeFrontend{student: ada(), answers: []int{1, 0}}

	res, err := newRunner(s, ui).Run(context.Background(), "Two Questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Score != 3 || res.TotalMarks != 3 || res.Percentage != 100 {
		t.Errorf("expected 3/3 100%%, got %d/%d %v", res.Score, res.TotalMarks, res.Percentage)
	}
	if !strings.Contains(ui.summary, "Percentage: 100.00%") {
		t.Errorf("unexpected summary:\n%s", ui.summary)
	}
	if len(s.results) != 1 || s.results[0].Result != res {
		t.Errorf("expected result to be persisted, got %+v", s.results)
	}
}

func TestRun_AllWrong(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)
	ui := &fakeFrontend{student: ada(), answers: []int{0, 1}}

	res, err := newRunner(s, ui).Run(context.Background(), "Two Questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Score != 0 || res.Percentage != 0 {
		t.Errorf("expected 0 and 0%%, got %d and %v", res.Score, res.Percentage)
	}
	if !strings.Contains(ui.summary, "Percentage: 0.00%") {
		t.Errorf("unexpected summary:\n%s", ui.summary)
	}
}

func TestRun_RepromptsOnMissingSelection(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)
	ui := &fakeFrontend{
		student: ada(),
		answers: []int{examsession.NoSelection, 1, 7, examsession.NoSelection, 0},
	}

	res, err := newRunner(s, ui).Run(context.Background(), "Two Questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ui.rejected) != 3 {
		t.Errorf("expected 3 rejections, got %d", len(ui.rejected))
	}
	for _, msg := range ui.rejected {
		if msg != service.MsgSelectAnswer {
			t.Errorf("unexpected rejection message %q", msg)
		}
	}
	if res.Score != 3 {
		t.Errorf("expected score 3, got %d", res.Score)
	}
	// the first question is shown twice before it is answered
	if ui.asked[0].Number != 1 || ui.asked[1].Number != 1 || ui.asked[2].Number != 2 {
		t.Errorf("unexpected question sequence: %+v", ui.asked)
	}
}

func TestRun_ShowsHistoryBeforeSaving(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)

	for i := 0; i < 2; i++ {
		ui := &fakeFrontend{student: ada(), answers: []int{1, 1}}
		if _, err := newRunner(s, ui).Run(context.Background(), "Two Questions"); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if ui.previous != i {
			t.Errorf("run %d: expected %d previous attempts, got %d", i, i, ui.previous)
		}
	}
}

func TestRun_UnknownExamCompletesImmediately(t *testing.T) {
	s := newFakeStore()
	ui := &fakeFrontend{student: ada()}

	res, err := newRunner(s, ui).Run(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ui.asked) != 0 {
		t.Errorf("expected no questions asked, got %d", len(ui.asked))
	}
	if res.Score != 0 || res.TotalMarks != 0 || res.Percentage != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if ui.shown != 1 {
		t.Errorf("expected result shown once, got %d", ui.shown)
	}
}

func TestRun_StoreDownStillShowsResult(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)
	s.loadErr = store.ErrUnavailable
	s.saveErr = store.ErrUnavailable
	s.listErr = store.ErrUnavailable
	ui := &fakeFrontend{student: ada()}

	res, err := newRunner(s, ui).Run(context.Background(), "Two Questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ui.shown != 1 || !strings.Contains(ui.summary, "Score: 0 / 0") {
		t.Errorf("expected result to be shown, got %q", ui.summary)
	}
	if res.ExamTitle != "Two Questions" {
		t.Errorf("expected title to be kept, got %q", res.ExamTitle)
	}
	if len(s.results) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestRun_SaveFailureIsNotFatal(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)
	s.saveErr = errors.New("disk full")
	ui := &fakeFrontend{student: ada(), answers: []int{1, 0}}

	res, err := newRunner(s, ui).Run(context.Background(), "Two Questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 3 || ui.shown != 1 {
		t.Errorf("expected shown result with score 3, got score=%d shown=%d", res.Score, ui.shown)
	}
}

func TestRun_FrontendErrors(t *testing.T) {
	s := newFakeStore()
	seedTwoQuestions(t, s)

	ui := &fakeFrontend{studentErr: errInputClosed}
	if _, err := newRunner(s, ui).Run(context.Background(), "Two Questions"); !errors.Is(err, errInputClosed) {
		t.Errorf("expected errInputClosed from AskStudent, got %v", err)
	}

	ui = &fakeFrontend{student: ada(), answers: []int{1}}
	if _, err := newRunner(s, ui).Run(context.Background(), "Two Questions"); !errors.Is(err, errInputClosed) {
		t.Errorf("expected errInputClosed from AskAnswer, got %v", err)
	}
	if ui.shown != 0 {
		t.Error("expected no result for an abandoned session")
	}
}
