package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

const header = "Please select an option:"

// ScanChooser reads one number per line, the way a plain terminal or a pipe
// would provide them.
type ScanChooser struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanChooser prints the menu to out before each read from in.
func NewScanChooser(in io.Reader, out io.Writer) *ScanChooser {
	return &ScanChooser{scanner: bufio.NewScanner(in), out: out}
}

// Choose prints the menu and reads the next non empty line.
func (s *ScanChooser) Choose() (Choice, error) {
	fmt.Fprintln(s.out, header)
	fmt.Fprintln(s.out, strings.Repeat("-", len(header)))
	for i, c := range Choices {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, c)
	}
	fmt.Fprint(s.out, "\n> ")

	for s.scanner.Scan() {
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, &InputError{Text: text}
		}
		return Choice(n - 1), nil
	}
	if err := s.scanner.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// PromptChooser shows an arrow-key selection list on a terminal.
type PromptChooser struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Choose runs the selection. Ctrl-C and Ctrl-D are reported as io.EOF.
func (p *PromptChooser) Choose() (Choice, error) {
	items := make([]string, len(Choices))
	for i, c := range Choices {
		items[i] = c.String()
	}
	sel := &promptui.Select{
		Label:  header,
		Items:  items,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	idx, _, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	return Choices[idx], nil
}
