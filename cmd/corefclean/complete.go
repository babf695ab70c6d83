package main

import (
	"fmt"
	"strings"
)

var commands = []string{
	"clean",
	"balance",
	"shell",
	"stat",
	"export",
	"version",
	"bash",
	"help",
}

// commandFlags are the flags offered when a word after the command starts
// with a dash. Aliases are left out.
var commandFlags = map[string][]string{
	"clean":   {"-output", "-config", "-workers", "-zero-mentions", "-verbose", "-no-progress", "-report"},
	"balance": {"-no-color"},
	"shell":   {"-no-color"},
	"stat":    {"-run"},
	"export":  {"-from", "-to", "-run"},
}

// completeCommand prints one completion per line for the words typed so far.
// An empty answer lets the bash script complete file names.
func completeCommand(args []string, ui UI) error {
	for _, c := range getCompletions(args) {
		_, _ = fmt.Fprintln(ui.Out, c)
	}
	return nil
}

// getCompletions receives COMP_WORDS: the binary name, the command and the
// words after it, the last one being the word under the cursor.
func getCompletions(args []string) []string {
	if len(args) < 2 {
		return nil
	}

	cmd, cur := args[1], args[len(args)-1]

	switch {
	case len(args) == 2:
		return withPrefix(commands, cur)
	case cmd == "help" && len(args) == 3:
		return withPrefix(commands, cur)
	case strings.HasPrefix(cur, "-"):
		return withPrefix(commandFlags[cmd], cur)
	}

	return nil
}

func withPrefix(words []string, prefix string) []string {
	var matches []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	return matches
}
