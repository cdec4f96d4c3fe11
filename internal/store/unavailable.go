package store

import (
	"context"
	"fmt"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/result"
)

// Unavailable stands in for a store that could not be opened.
// Every call fails with ErrUnavailable wrapping the original cause.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, u.Cause)
}

func (u Unavailable) Initialize(context.Context) error { return u.err() }

func (u Unavailable) CreateExam(context.Context, *exam.Exam) (int64, error) { return 0, u.err() }

func (u Unavailable) LoadExam(context.Context, string) (*exam.Exam, error) { return nil, u.err() }

func (u Unavailable) SaveResult(context.Context, result.Result) (int64, error) { return 0, u.err() }

func (u Unavailable) GetResult(context.Context, int64) (*StoredResult, error) { return nil, u.err() }

func (u Unavailable) ListResults(context.Context, int) ([]StoredResult, error) { return nil, u.err() }

func (u Unavailable) Close() error { return nil }
