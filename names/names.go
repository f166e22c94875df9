// Package names validates full names typed by a user.
package names

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is wrapped by every validation error.
	ErrInvalidName = errors.New("invalid name")
	// ErrTooFewParts means the name has no space.
	ErrTooFewParts = fmt.Errorf("%w: first and last name are required", ErrInvalidName)
	// ErrTooManyParts means the name has more than two spaces.
	ErrTooManyParts = fmt.Errorf("%w: at most first, middle and last name", ErrInvalidName)
)

// FullName is a name that passed Parse.
type FullName string

// String returns the name as typed.
func (n FullName) String() string {
	return string(n)
}

// Parse accepts input holding exactly one or two space characters, as in
// "Ada Lovelace" or "Ada King Lovelace". The input is kept as is.
func Parse(input string) (FullName, error) {
	switch spaces := strings.Count(input, " "); {
	case spaces == 0:
		return "", ErrTooFewParts
	case spaces > 2:
		return "", fmt.Errorf("%w (found %d spaces)", ErrTooManyParts, spaces)
	}
	return FullName(input), nil
}

// Validate is Parse without the value, suitable as a prompt validator.
func Validate(input string) error {
	_, err := Parse(input)
	return err
}
