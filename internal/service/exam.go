// internal/service/exam.go
package service

import (
	"context"
	"log/slog"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/store"
)

// ExamService is the boundary between the store and the session flow:
// storage failures become log entries and never reach scoring.
type ExamService struct {
	store  store.Store
	logger *slog.Logger
}

func NewExamService(s store.Store, logger *slog.Logger) *ExamService {
	return &ExamService{
		store:  s,
		logger: logger,
	}
}

// LoadExam always returns an exam. When the store fails the exam is empty.
func (es *ExamService) LoadExam(ctx context.Context, title string) *exam.Exam {
	e, err := es.store.LoadExam(ctx, title)
	if err != nil {
		es.logger.Error("failed to load exam",
			"title", title,
			"error", err,
		)
		return exam.New(title)
	}
	if e.Len() == 0 {
		es.logger.Warn("exam has no questions", "title", title)
	}
	return e
}
