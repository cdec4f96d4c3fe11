package store

import (
	"context"
	"errors"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/result"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("store unavailable")
)

// StoredResult is a result row as persisted, with its server-assigned fields.
type StoredResult struct {
	ID int64
	result.Result
	RecordedAt string
}

// Store is the durable catalog of exams and historical results.
type Store interface {
	// Initialize creates the schema and seeds the sample exam when no exam exists.
	// It is safe to call on every start.
	Initialize(ctx context.Context) error
	CreateExam(ctx context.Context, e *exam.Exam) (int64, error)
	// LoadExam returns the exam with its questions in retrieval order.
	// An unknown title yields an exam with no questions.
	LoadExam(ctx context.Context, title string) (*exam.Exam, error)
	SaveResult(ctx context.Context, r result.Result) (int64, error)
	GetResult(ctx context.Context, id int64) (*StoredResult, error)
	ListResults(ctx context.Context, studentID int) ([]StoredResult, error)
	Close() error
}

var (
	_ Store = (*SQLStore)(nil)
	_ Store = Unavailable{}
)
