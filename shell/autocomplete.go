package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"new": {
		Options: []string{"-color", "-difficulty"},
	},
	"hint": {
		Options: []string{"-depth"},
	},
	"autoplay": {
		Options: []string{"-games", "-threads", "-a", "-b", "-logfile", "-seeds"},
		Args:    []string{"analyze"},
	},
	"help": {
		Args: []string{"new", "play", "undo", "difficulty", "autoplay"},
	},
}

var commandNames = []string{
	"help", "new", "show", "moves", "play", "pass", "aiplay", "hint", "eval",
	"undo", "list", "difficulty", "autoplay", "exit",
}

var colorValues = []string{"black", "white"}

func (c *ShellCompleter) difficultyTags() []string {
	if c.sc == nil {
		return nil
	}
	return c.sc.presets.Tags()
}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// Unbalanced quotes while typing.
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		if strings.HasPrefix(lastCompleteField, "-") {
			switch strings.TrimPrefix(lastCompleteField, "-") {
			case "color":
				completions = colorValues
			case "difficulty", "a", "b":
				completions = c.difficultyTags()
			}
		}
		if completions == nil && cmdName == "difficulty" {
			completions = c.difficultyTags()
		}
		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
