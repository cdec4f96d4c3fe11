// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/examdesk/quiz/internal/domain/exam"
	"github.com/examdesk/quiz/internal/domain/result"
)

// SQLStore persists exams and results in SQLite or PostgreSQL.
// Placeholders are written as $N, which both drivers accept.
type SQLStore struct {
	db     *sql.DB
	driver Driver
	logger *slog.Logger
}

// NewSQL opens a handle for the given driver. No connection is made until
// Initialize or the first query.
func NewSQL(driver Driver, dsn string, logger *slog.Logger) (*SQLStore, error) {
	name, err := driver.sqlName()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer; also keeps ":memory:" databases on a single connection
		db.SetMaxOpenConns(1)
	}

	return &SQLStore{
		db:     db,
		driver: driver,
		logger: logger,
	}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Initialize(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := s.db.ExecContext(ctx, s.driver.schema()); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	s.logger.Info("database initialized", "driver", string(s.driver))

	return s.seed(ctx)
}

// ============================================================================
// Exams
// ============================================================================

// CreateExam inserts the exam, its questions and their options in one transaction.
func (s *SQLStore) CreateExam(ctx context.Context, e *exam.Exam) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var examID int64
	err = tx.QueryRowContext(ctx,
		"INSERT INTO exams (title) VALUES ($1) RETURNING exam_id", e.Title,
	).Scan(&examID)
	if err != nil {
		return 0, fmt.Errorf("insert exam: %w", err)
	}

	for _, q := range e.Questions {
		var questionID int64
		err = tx.QueryRowContext(ctx,
			"INSERT INTO questions (exam_id, question_text, correct_index, difficulty) VALUES ($1, $2, $3, $4) RETURNING question_id",
			examID, q.Prompt, q.CorrectIndex, q.Difficulty(),
		).Scan(&questionID)
		if err != nil {
			return 0, fmt.Errorf("insert question: %w", err)
		}

		for _, opt := range q.Options {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO options (question_id, option_text) VALUES ($1, $2)",
				questionID, opt,
			); err != nil {
				return 0, fmt.Errorf("insert option: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	e.ID = examID
	return examID, nil
}

type questionRow struct {
	id         int64
	text       string
	correct    int
	difficulty string
}

// LoadExam resolves title to the earliest exam stored under it. An unknown
// title yields an empty exam with ID 0.
func (s *SQLStore) LoadExam(ctx context.Context, title string) (*exam.Exam, error) {
	e := exam.New(title)

	err := s.db.QueryRowContext(ctx,
		"SELECT exam_id FROM exams WHERE title = $1 ORDER BY exam_id LIMIT 1", title,
	).Scan(&e.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return e, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, question_text, correct_index, difficulty
		FROM questions
		WHERE exam_id = $1
		ORDER BY question_id`, e.ID)
	if err != nil {
		return nil, err
	}

	var qrows []questionRow
	for rows.Next() {
		var r questionRow
		if err := rows.Scan(&r.id, &r.text, &r.correct, &r.difficulty); err != nil {
			rows.Close()
			return nil, err
		}
		qrows = append(qrows, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range qrows {
		options, err := s.loadOptions(ctx, r.id)
		if err != nil {
			return nil, err
		}

		q, err := exam.NewMCQ(r.text, options, r.correct, r.difficulty)
		if err != nil {
			s.logger.Warn("skipping invalid question",
				"question_id", r.id,
				"exam", title,
				"error", err,
			)
			continue
		}
		e.Questions = append(e.Questions, q)
	}

	return e, nil
}

func (s *SQLStore) loadOptions(ctx context.Context, questionID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT option_text FROM options WHERE question_id = $1 ORDER BY option_id", questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		options = append(options, text)
	}
	return options, rows.Err()
}

func (s *SQLStore) countExams(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exams").Scan(&n)
	return n, err
}

// ============================================================================
// Results
// ============================================================================

func (s *SQLStore) SaveResult(ctx context.Context, r result.Result) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO results (student_id, student_name, exam_title, score, total_marks, percentage)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		r.StudentID, r.StudentName, r.ExamTitle, r.Score, r.TotalMarks, r.Percentage,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

const resultColumns = `id, student_id, student_name, exam_title, score, total_marks, percentage, "timestamp"`

func (s *SQLStore) GetResult(ctx context.Context, id int64) (*StoredResult, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+resultColumns+" FROM results WHERE id = $1", id)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListResults returns every result recorded for a student, oldest first.
func (s *SQLStore) ListResults(ctx context.Context, studentID int) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+resultColumns+" FROM results WHERE student_id = $1 ORDER BY id", studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*StoredResult, error) {
	var r StoredResult
	var recordedAt sql.NullString
	if err := row.Scan(
		&r.ID, &r.StudentID, &r.StudentName, &r.ExamTitle,
		&r.Score, &r.TotalMarks, &r.Percentage, &recordedAt,
	); err != nil {
		return nil, err
	}
	r.RecordedAt = recordedAt.String
	return &r, nil
}
