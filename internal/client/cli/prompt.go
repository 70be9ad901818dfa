package cli

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// nowFn is a test seam for the "empty date means now" rule.
var nowFn = time.Now

// outcome is the state a prompt step ends in.
type outcome int

const (
	retry outcome = iota
	resolved
	cancelled
)

// ask prompts until step resolves or cancels; ok is false on cancel. step
// interprets one answer and reports its own complaint before returning retry.
func ask[T any](t Terminal, text string, step func(answer string) (T, outcome)) (T, bool, error) {
	for {
		answer, err := t.Prompt(text)
		if err != nil {
			var zero T
			return zero, false, err
		}
		v, o := step(answer)
		switch o {
		case resolved:
			return v, true, nil
		case cancelled:
			return v, false, nil
		}
	}
}

// askNonEmpty re-prompts until a non-blank answer is given.
func askNonEmpty(t Terminal, text string) (string, error) {
	v, _, err := ask(t, text, func(answer string) (string, outcome) {
		if answer == "" {
			t.DisplayMessage("This value cannot be empty.", SeverityError)
			return "", retry
		}
		return answer, resolved
	})
	return v, err
}

// askDate reads a "YYYY-MM-DD HH:MM" local time. An empty answer means now.
func askDate(t Terminal, text string) (time.Time, error) {
	v, _, err := ask(t, text, func(answer string) (time.Time, outcome) {
		if answer == "" {
			return nowFn(), resolved
		}
		at, err := models.ParseInputTime(answer, time.Local)
		if err != nil {
			t.DisplayMessage("Invalid format. Use YYYY-MM-DD HH:MM.", SeverityError)
			return time.Time{}, retry
		}
		return at, resolved
	})
	return v, err
}

// askMultiline collects lines until a blank one. Indentation inside the text
// is kept. The result may be empty.
func askMultiline(t Terminal, text string) (string, error) {
	t.DisplayMessage(text+" (finish with an empty line)", SeverityInfo)

	var lines []string
	for {
		line, err := t.PromptRaw("")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
}

// confirm asks a y/n question until it gets one of the two.
func confirm(t Terminal, question string) (bool, error) {
	v, _, err := ask(t, question+" [y/n]", func(answer string) (bool, outcome) {
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, resolved
		case "n", "no":
			return false, resolved
		}
		t.DisplayMessage("Please answer y or n.", SeverityError)
		return false, retry
	})
	return v, err
}
