package store

import (
	"context"
	"fmt"

	"github.com/examdesk/quiz/internal/domain/exam"
)

// SampleExamTitle is the exam seeded into an empty database.
const SampleExamTitle = "Java Programming Exam"

type sampleQuestion struct {
	prompt     string
	difficulty string
	correct    int
	options    []string
}

var sampleQuestions = []sampleQuestion{
	{"Which of these is NOT a Java keyword?", exam.DifficultyEasy, 1,
		[]string{"static", "Boolean", "void", "class"}},
	{"Which method is the entry point of a Java program?", exam.DifficultyEasy, 0,
		[]string{"main()", "start()", "run()", "init()"}},
	{"Which data type is used to store decimal numbers in Java?", exam.DifficultyMedium, 1,
		[]string{"int", "double", "char", "boolean"}},
	{"What is inheritance in Java?", exam.DifficultyMedium, 1,
		[]string{
			"Ability of an object to take many forms",
			"Process where one class acquires properties of another",
			"Hiding data from other classes",
			"A loop structure",
		}},
	{"Which of these is used to handle exceptions in Java?", exam.DifficultyHard, 0,
		[]string{"try-catch", "if-else", "for-loop", "switch"}},
}

// SampleExam builds the default exam shipped with a fresh database.
func SampleExam() (*exam.Exam, error) {
	e := exam.New(SampleExamTitle)
	for _, sq := range sampleQuestions {
		q, err := exam.NewMCQ(sq.prompt, sq.options, sq.correct, sq.difficulty)
		if err != nil {
			return nil, err
		}
		if err := e.AddQuestion(q); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// seed inserts the sample exam only when the exams table is empty.
func (s *SQLStore) seed(ctx context.Context) error {
	n, err := s.countExams(ctx)
	if err != nil {
		return fmt.Errorf("count exams: %w", err)
	}
	if n > 0 {
		return nil
	}

	e, err := SampleExam()
	if err != nil {
		return err
	}
	if _, err := s.CreateExam(ctx, e); err != nil {
		return fmt.Errorf("seed sample exam: %w", err)
	}

	s.logger.Info("sample exam seeded", "title", e.Title, "questions", e.Len())
	return nil
}
