// internal/service/runner.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	examsession "github.com/examdesk/quiz/internal/domain/exam_session"
	"github.com/examdesk/quiz/internal/domain/result"
	"github.com/examdesk/quiz/internal/domain/student"
)

// MsgSelectAnswer is shown when the student advances without a choice.
const MsgSelectAnswer = "Please select an answer!"

// Frontend is the presentation surface a session is driven through.
// Implementations may be a terminal, a web form or a native window.
type Frontend interface {
	// AskStudent prompts until a valid student is entered. It fails only
	// when input is no longer available.
	AskStudent(ctx context.Context) (student.Student, error)
	// AskAnswer renders a question and returns the chosen option index,
	// or examsession.NoSelection when none was chosen.
	AskAnswer(ctx context.Context, q examsession.QuestionView) (int, error)
	Reject(message string)
	Notify(message string)
	ShowResult(summary string, previousAttempts int)
}

// Runner drives one student through one exam attempt.
type Runner struct {
	exams   *ExamService
	results *ResultService
	ui      Frontend
	logger  *slog.Logger
}

func NewRunner(exams *ExamService, results *ResultService, ui Frontend, logger *slog.Logger) *Runner {
	return &Runner{
		exams:   exams,
		results: results,
		ui:      ui,
		logger:  logger,
	}
}

// Run collects the student, walks the exam titled title, then shows and
// saves the result. Errors come only from the frontend running out of input.
func (r *Runner) Run(ctx context.Context, title string) (result.Result, error) {
	st, err := r.ui.AskStudent(ctx)
	if err != nil {
		return result.Result{}, fmt.Errorf("read student: %w", err)
	}

	e := r.exams.LoadExam(ctx, title)
	session := examsession.New(st, e)
	logger := r.logger.With("session_id", session.ID)
	logger.Info("session started",
		"student_id", st.ID,
		"exam", e.Title,
		"questions", e.Len(),
	)

	for session.State() == examsession.AwaitingAnswer {
		view, err := session.CurrentQuestion()
		if err != nil {
			return result.Result{}, err
		}

		choice, err := r.ui.AskAnswer(ctx, view)
		if err != nil {
			return result.Result{}, fmt.Errorf("read answer: %w", err)
		}

		correct, err := session.Submit(choice)
		if errors.Is(err, examsession.ErrNoSelection) || errors.Is(err, examsession.ErrInvalidSelection) {
			r.ui.Reject(MsgSelectAnswer)
			continue
		}
		if err != nil {
			return result.Result{}, err
		}

		logger.Debug("answer scored",
			"question", view.Number,
			"correct", correct,
			"score", session.Score(),
		)
	}

	out, err := session.Outcome()
	if err != nil {
		return result.Result{}, err
	}

	res := r.results.Finalize(out.Student, out.Exam, out.Score)
	logger.Info("session completed",
		"score", res.Score,
		"total_marks", res.TotalMarks,
	)

	previous := r.results.PreviousAttempts(ctx, st.ID)
	r.ui.ShowResult(r.results.Present(res), previous)
	r.results.Persist(ctx, res)

	return res, nil
}
