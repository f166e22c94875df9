package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	logger "github.com/metal3d/namesort/log"
	"github.com/metal3d/namesort/loader"
	"github.com/metal3d/namesort/menu"
	"github.com/metal3d/namesort/names"
	"github.com/metal3d/namesort/ordering"
	"github.com/spf13/cobra"
)

func configureLogging(cmd *cobra.Command, config *SortConfig) {
	logger.Configure(logger.Options{
		JSON:     config.JSONLogs,
		MinLevel: slog.LevelDebug,
		Output:   cmd.ErrOrStderr(),
	})
	logger.SetVerbose(config.Verbose)
}

// stdinIsPiped reports whether the command reads the process stdin and that
// stdin is not a terminal.
func stdinIsPiped(cmd *cobra.Command) bool {
	if cmd.InOrStdin() != os.Stdin {
		return false
	}
	stat, err := os.Stdin.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) == 0
}

// interactive reports whether prompts can take over the terminal.
func interactive(cmd *cobra.Command) bool {
	if cmd.InOrStdin() != os.Stdin || cmd.OutOrStdout() != os.Stdout {
		return false
	}
	stat, err := os.Stdin.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

func runSort(cmd *cobra.Command, config *SortConfig, args ...string) error {
	log := logger.GetLogger()
	l := &loader.Loader{Encoding: config.Encoding, Logger: log}
	lines := make([]string, config.Max)

	var (
		count int
		err   error
	)
	switch {
	case len(args) > 0 && args[0] == "-", len(args) == 0 && stdinIsPiped(cmd):
		log.Debug("reading stdin")
		count, err = l.LoadFrom(cmd.InOrStdin(), config.Max, lines)
	default:
		filename := config.File
		if len(args) > 0 {
			filename = args[0]
		}
		log.Debug("reading file", "file", filename)
		count, err = l.Load(filename, config.Max, lines)
		if errors.Is(err, loader.ErrNotFound) && config.AllowMissing {
			log.Debug("missing file treated as empty", "file", filename)
			err = nil
		}
	}
	if err != nil {
		return err
	}

	sorter := ordering.Sorter{Compare: ordering.Ordinal}
	if config.Natural {
		sorter.Compare = ordering.Natural
	}
	stats := sorter.Sort(lines, count)
	log.Debug("lines sorted", "count", count, "passes", stats.Passes, "swaps", stats.Swaps)

	return printSorted(cmd.OutOrStdout(), lines[:count], sorter.Compare)
}

// printSorted writes 1 when the first line still sorts after the second, 0
// otherwise, then the lines.
func printSorted(out io.Writer, lines []string, less ordering.Less) error {
	outOfOrder := 0
	if len(lines) >= 2 && less(lines[1], lines[0]) {
		outOfOrder = 1
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, outOfOrder)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func runMenu(cmd *cobra.Command) error {
	m := &menu.Menu{Out: cmd.OutOrStdout(), Logger: logger.GetLogger()}
	if interactive(cmd) {
		m.Chooser = &menu.PromptChooser{Stdin: os.Stdin, Stdout: os.Stdout}
	} else {
		m.Chooser = menu.NewScanChooser(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return m.Run()
}

func runGreet(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	input, err := readName(cmd)
	if err != nil {
		return err
	}

	name, err := names.Parse(input)
	if err != nil {
		logger.GetLogger().Debug("name rejected", "input", input, "reason", err)
		fmt.Fprint(out, "\nInvalid Name!\n")
		return nil
	}
	fmt.Fprintf(out, "\nHello, %s!\n", name)
	return nil
}

func readName(cmd *cobra.Command) (string, error) {
	if interactive(cmd) {
		prompt := promptui.Prompt{
			Label:    "Enter your name",
			Validate: names.Validate,
			Stdin:    os.Stdin,
			Stdout:   os.Stdout,
		}
		return prompt.Run()
	}

	fmt.Fprint(cmd.OutOrStdout(), "Enter your name: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && line == "" {
		return "", errors.New("no name given")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
