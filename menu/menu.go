// Package menu runs the interactive Greeting / Statistics / Quit loop.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	logger "github.com/metal3d/namesort/log"
)

// Choice is a menu entry. Users type it 1-based.
type Choice int

const (
	Greeting Choice = iota
	Statistics
	Quit
)

// Choices lists the valid entries in display order.
var Choices = []Choice{Greeting, Statistics, Quit}

// String returns the label shown in the menu.
func (c Choice) String() string {
	switch c {
	case Greeting:
		return "Greeting"
	case Statistics:
		return "Statistics"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Valid reports whether c is one of Choices.
func (c Choice) Valid() bool {
	return c >= Greeting && c <= Quit
}

// InputError is returned by a Chooser for input that is not a number.
type InputError struct {
	Text string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%q is not a number", e.Text)
}

// Chooser asks the user for the next choice. It returns io.EOF when the user
// is gone.
type Chooser interface {
	Choose() (Choice, error)
}

// Menu loops on a Chooser until Quit or end of input.
type Menu struct {
	Chooser Chooser
	Out     io.Writer
	Logger  *slog.Logger
}

// Run loops until the user quits. End of input stops the loop without error.
func (m *Menu) Run() error {
	log := logger.Or(m.Logger)
	for {
		choice, err := m.Chooser.Choose()
		var inputErr *InputError
		switch {
		case errors.Is(err, io.EOF):
			log.Debug("menu input closed")
			return nil
		case errors.As(err, &inputErr):
			fmt.Fprintf(m.Out, "\nI'm sorry, %s is not a valid command.\n\n", inputErr.Text)
			continue
		case err != nil:
			return err
		}

		log.Debug("menu choice", "choice", choice)
		switch choice {
		case Greeting:
			fmt.Fprint(m.Out, "\nHello!\n\n")
		case Statistics:
			fmt.Fprint(m.Out, "\nMathematical!\n\n")
		case Quit:
			fmt.Fprint(m.Out, "\nGoodbye!\n\n")
			return nil
		default:
			fmt.Fprintf(m.Out, "\nI'm sorry, %d is not a valid command.\n\n", int(choice)+1)
		}
	}
}
