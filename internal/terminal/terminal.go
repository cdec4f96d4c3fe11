package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/examdesk/quiz/internal/domain/exam"
	examsession "github.com/examdesk/quiz/internal/domain/exam_session"
	"github.com/examdesk/quiz/internal/domain/student"
)

const (
	promptName = "Enter your name:"
	promptID   = "Enter your ID (numbers only):"

	msgNameRequired = "Name is required!"
	msgIDRequired   = "Student ID is required!"
	msgInvalidID    = "Please enter a valid numeric ID!"
)

// maxLineLen bounds a single input line. Longer lines are consumed and
// treated as blank input.
const maxLineLen = 4096

// Terminal is a line-oriented frontend over any reader/writer pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine prints prompt and returns the next line, or io.EOF once input ends.
func (t *Terminal) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(t.out, prompt+" ")
	return t.nextLine()
}

// nextLine returns the next line without its terminator. A line longer than
// maxLineLen is drained and returned as "".
func (t *Terminal) nextLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := t.in.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineLen {
				tooLong, buf = true, nil
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", nil
	}
	return string(buf), nil
}

func (t *Terminal) AskStudent(ctx context.Context) (student.Student, error) {
	var name string
	for {
		line, err := t.readLine(ctx, promptName)
		if err != nil {
			return student.Student{}, err
		}
		if strings.TrimSpace(line) != "" {
			name = line
			break
		}
		fmt.Fprintln(t.out, msgNameRequired)
	}

	for {
		line, err := t.readLine(ctx, promptID)
		if err != nil {
			return student.Student{}, err
		}
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(t.out, msgIDRequired)
			continue
		}
		id, err := student.ParseID(line)
		if err != nil {
			fmt.Fprintln(t.out, msgInvalidID)
			continue
		}
		return student.New(id, name)
	}
}

func (t *Terminal) AskAnswer(ctx context.Context, q examsession.QuestionView) (int, error) {
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "Difficulty: %s | Marks: %d\n", q.Difficulty, q.Mark)
	fmt.Fprintf(t.out, "%d. %s\n", q.Number, q.Prompt)

	shown := len(q.Options)
	if shown > exam.MaxOptions {
		shown = exam.MaxOptions
	}
	for i := 0; i < shown; i++ {
		fmt.Fprintf(t.out, "  (%d) %s\n", i+1, q.Options[i])
	}

	action := "Next"
	if q.Last() {
		action = "Finish"
	}
	line, err := t.readLine(ctx, fmt.Sprintf("Choose 1-%d, then Enter for %s:", shown, action))
	if err != nil {
		return examsession.NoSelection, err
	}
	return parseChoice(line, shown), nil
}

// parseChoice maps a 1-based entry to an option index. Anything that is not
// one of the shown options counts as no selection.
func parseChoice(line string, shown int) int {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > shown {
		return examsession.NoSelection
	}
	return n - 1
}

func (t *Terminal) Reject(message string) {
	fmt.Fprintln(t.out, message)
}

// Notify shows an operator notice and waits for Enter.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
	fmt.Fprint(t.out, "Press Enter to continue... ")
	// closed input is reported by the next prompt
	_, _ = t.nextLine()
	fmt.Fprintln(t.out)
}

func (t *Terminal) ShowResult(summary string, previousAttempts int) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, summary)
	if previousAttempts > 0 {
		fmt.Fprintf(t.out, "Previous attempts: %d\n", previousAttempts)
	}
}
