package main

import (
	"os"
)

const (
	usage = `%[1]s loads the lines of a text file, at most --max of them, and
prints them bubble sorted. The first printed line is 1 when the first entry
still sorts after the second one, 0 otherwise.

Options can be set in a .namesort.yaml file in the current directory, or with
NAMESORT_* environment variables (NAMESORT_MAX=50).`
)

var (
	version  = "master" // changed at compilation time
	examples = []string{
		"$ %[1]s sort names.txt",
		"$ %[1]s sort --max 100 --natural files.txt",
		"$ cat names.txt | %[1]s sort -",
		"$ %[1]s sort --encoding latin1 old-names.txt",
		"$ %[1]s greet",
		"$ %[1]s menu",
	}
	completionExamples = []string{
		"$ %[1]s completion bash",
		"$ %[1]s completion bash --no-documentation",
		"$ %[1]s completion zsh",
		"$ %[1]s completion fish",
		"$ %[1]s completion powershell",
	}
)

func main() {
	if err := buildMainCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
