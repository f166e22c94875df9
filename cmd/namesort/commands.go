package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// completionGenerators writes the completion script of root for each shell.
var completionGenerators = map[string]func(root *cobra.Command, out io.Writer, withDoc, bashv1 bool) error{
	"bash": func(root *cobra.Command, out io.Writer, withDoc, bashv1 bool) error {
		if bashv1 {
			return root.GenBashCompletion(out)
		}
		return root.GenBashCompletionV2(out, withDoc)
	},
	"zsh": func(root *cobra.Command, out io.Writer, withDoc, _ bool) error {
		if withDoc {
			return root.GenZshCompletion(out)
		}
		return root.GenZshCompletionNoDesc(out)
	},
	"fish": func(root *cobra.Command, out io.Writer, withDoc, _ bool) error {
		return root.GenFishCompletion(out, withDoc)
	},
	"powershell": func(root *cobra.Command, out io.Writer, withDoc, _ bool) error {
		if withDoc {
			return root.GenPowerShellCompletionWithDesc(out)
		}
		return root.GenPowerShellCompletion(out)
	},
}

func buildCompletionCommand() *cobra.Command {
	noDocumentation := false
	bashv1Completion := false
	completionCmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Short:     "Generates completion scripts",
		Long: `Generates completion scripts. The sort command completes text files,
--encoding completes common charset labels.`,
		Example: fmt.Sprintf(strings.Join(completionExamples, "\n"), filepath.Base(os.Args[0])),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := completionGenerators[args[0]]
			return gen(cmd.Root(), cmd.OutOrStdout(), !noDocumentation, bashv1Completion)
		},
	}
	completionCmd.Flags().BoolVar(
		&noDocumentation,
		"no-documentation", noDocumentation,
		"Do not include documentation")
	completionCmd.Flags().BoolVar(
		&bashv1Completion,
		"bashv1", bashv1Completion,
		"Use bash version 1 completion")

	return completionCmd
}

// completeInputFile offers text files, and "-" for stdin.
func completeInputFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"txt", "lst", "csv"}, cobra.ShellCompDirectiveFilterFileExt
}

// encodingLabels are the labels most often needed for old name lists.
var encodingLabels = []string{"utf-8", "latin1", "windows-1252", "iso-8859-15", "utf-16le", "utf-16be"}

func buildMainCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:     "namesort [command]",
		Short:   "namesort bubble sorts the lines of a text file.",
		Example: fmt.Sprintf(strings.Join(examples, "\n"), filepath.Base(os.Args[0])),
		Long:    fmt.Sprintf(usage, filepath.Base(os.Args[0])),
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeViper(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("You need to specify a command or an option")
		},
	}

	config := defaultConfig()
	sortCommand := buildSortCommand(config)
	cmd.AddCommand(sortCommand)
	cmd.AddCommand(buildPrintConfigCommand(config, sortCommand))
	cmd.AddCommand(buildMenuCommand())
	cmd.AddCommand(buildGreetCommand())
	cmd.AddCommand(buildCompletionCommand())
	return &cmd
}

func buildPrintConfigCommand(config *SortConfig, sortCommand *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "print-config",
		Short: "Print the configuration of the sort command as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeViper(sortCommand); err != nil {
				return err
			}
			return printConfigFile(config, cmd.OutOrStdout())
		},
	}
}

func buildSortCommand(config *SortConfig) *cobra.Command {
	sortCommand := &cobra.Command{
		Use:   "sort [flags] [file|-]",
		Short: "Load at most --max lines of a file and print them sorted.",
		Long: `Load at most --max lines of a file and print them sorted. The file is
the positional argument, or --file (names.txt by default). "-" reads stdin.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeInputFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Max < 0 {
				return fmt.Errorf("--max must not be negative, got %d", config.Max)
			}
			configureLogging(cmd, config)
			return runSort(cmd, config, args...)
		},
	}

	sortCommand.Flags().StringVarP(
		&config.File,
		"file", "f", config.File,
		"File to sort when no argument is given")
	sortCommand.Flags().IntVarP(
		&config.Max,
		"max", "m", config.Max,
		"Maximum number of lines to load, the rest of the file is ignored")
	sortCommand.Flags().BoolVarP(
		&config.Natural,
		"natural", "n", config.Natural,
		"Compare digit runs by numeric value instead of byte by byte")
	sortCommand.Flags().StringVarP(
		&config.Encoding,
		"encoding", "e", config.Encoding,
		"Charset of the input (latin1, windows-1252...), detected when not valid UTF-8")
	sortCommand.RegisterFlagCompletionFunc("file", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeInputFile(cmd, nil, toComplete)
	})
	sortCommand.RegisterFlagCompletionFunc("encoding", cobra.FixedCompletions(encodingLabels, cobra.ShellCompDirectiveNoFileComp))
	sortCommand.Flags().BoolVar(
		&config.AllowMissing,
		"allow-missing", config.AllowMissing,
		"Treat a missing file as an empty one")
	sortCommand.Flags().BoolVarP(
		&config.Verbose,
		"verbose", "v", config.Verbose,
		"Verbose output")
	sortCommand.Flags().BoolVar(
		&config.JSONLogs,
		"json-logs", config.JSONLogs,
		"Write verbose logs as JSON")
	return sortCommand
}

func buildMenuCommand() *cobra.Command {
	verbose := false
	menuCommand := &cobra.Command{
		Use:   "menu",
		Short: "Run the Greeting / Statistics / Quit menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd, &SortConfig{Verbose: verbose})
			return runMenu(cmd)
		},
	}
	menuCommand.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")
	return menuCommand
}

func buildGreetCommand() *cobra.Command {
	verbose := false
	greetCommand := &cobra.Command{
		Use:   "greet",
		Short: "Ask for a full name and greet it",
		Long: `Ask for a full name and greet it. A full name has one or two spaces:
first and last name, or first, middle and last name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd, &SortConfig{Verbose: verbose})
			return runGreet(cmd)
		},
	}
	greetCommand.Flags().BoolVarP(&verbose, "verbose", "v", verbose, "Verbose output")
	return greetCommand
}
