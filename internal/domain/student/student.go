package student

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidID    = errors.New("student id must be numeric")
)

var validate = validator.New()

// Student is the person taking an exam. The ID is supplied by the student
// and is not checked for uniqueness.
type Student struct {
	ID   int
	Name string `validate:"required"`
}

func New(id int, name string) (Student, error) {
	s := Student{ID: id, Name: strings.TrimSpace(name)}
	if err := validate.Struct(s); err != nil {
		return Student{}, ErrNameRequired
	}
	return s, nil
}

// ParseID reads a numeric student ID from free-form input.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
