package dto

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidationError carries every problem found in a request body, joined for display.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

type checker struct {
	problems []string
}

func (c *checker) add(msg string) {
	c.problems = append(c.problems, msg)
}

func (c *checker) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n < min && min == 1:
		c.add(field + " is required")
	case n < min:
		c.add(field + " must be at least " + strconv.Itoa(min) + " characters")
	case max > 0 && n > max:
		c.add(field + " must be at most " + strconv.Itoa(max) + " characters")
	}
}

func (c *checker) email(value string) {
	if value == "" {
		c.add("email is required")
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		c.add("email must be a valid email")
	}
}

// bcrypt refuses inputs longer than 72 bytes.
func (c *checker) password(value string) {
	switch {
	case utf8.RuneCountInString(value) < 6:
		c.add("password must be at least 6 characters")
	case len(value) > 72:
		c.add("password must be at most 72 bytes")
	}
}

func (c *checker) id(field string, value uuid.UUID) {
	if value == uuid.Nil {
		c.add(field + " must be a valid UUID")
	}
}

func (c *checker) atLeastOne(set ...bool) {
	for _, ok := range set {
		if ok {
			return
		}
	}
	c.add("at least one field must be provided")
}

func (c *checker) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: c.problems}
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
