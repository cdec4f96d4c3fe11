// internal/service/result.go
package service

import (
	"context"
	"log/slog"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/result"
	"github.com/examdesk/quiz/internal/domain/student"
	"github.com/examdesk/quiz/internal/store"
)

// ResultService finalizes, formats and records session results.
type ResultService struct {
	store  store.Store
	logger *slog.Logger
}

func NewResultService(s store.Store, logger *slog.Logger) *ResultService {
	return &ResultService{
		store:  s,
		logger: logger,
	}
}

func (rs *ResultService) Finalize(s student.Student, e *exam.Exam, score int) result.Result {
	return result.New(s, e, score)
}

func (rs *ResultService) Present(r result.Result) string {
	return r.Summary()
}

// Persist saves the result. A failure is logged and otherwise ignored:
// the result already shown to the student stays valid.
func (rs *ResultService) Persist(ctx context.Context, r result.Result) {
	id, err := rs.store.SaveResult(ctx, r)
	if err != nil {
		rs.logger.Error("failed to save result",
			"student_id", r.StudentID,
			"exam", r.ExamTitle,
			"error", err,
		)
		return
	}
	rs.logger.Info("result saved",
		"result_id", id,
		"student_id", r.StudentID,
		"score", r.Score,
		"total_marks", r.TotalMarks,
	)
}

// PreviousAttempts counts stored results for a student. It returns 0 when
// history cannot be read.
func (rs *ResultService) PreviousAttempts(ctx context.Context, studentID int) int {
	results, err := rs.store.ListResults(ctx, studentID)
	if err != nil {
		rs.logger.Warn("failed to read result history",
			"student_id", studentID,
			"error", err,
		)
		return 0
	}
	return len(results)
}
