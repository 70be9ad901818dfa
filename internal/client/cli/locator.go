package cli

import (
	"strconv"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Criterion is how the Locator narrows a task list.
type Criterion int

const (
	ByPosition Criterion = iota + 1
	ByTitle
	ByDate
)

// Locator turns a user's vague description of a task into concrete matches by
// asking a short series of questions.
//
// An empty answer at any step cancels. The result is nil when the user
// cancelled or nothing matched; both have already been reported. Otherwise
// every match carries the task's index in the full list.
//
// With forMutation set, a title or date search that found candidates asks
// which one to use and returns exactly one match. Position searches already
// name a single task.
type Locator struct {
	term Terminal
}

func NewLocator(t Terminal) *Locator {
	return &Locator{term: t}
}

func (l *Locator) Locate(tasks []models.Task, forMutation bool) ([]models.Match, error) {
	criterion, ok, err := l.criterion()
	if err != nil || !ok {
		return nil, err
	}

	var matches []models.Match
	switch criterion {
	case ByPosition:
		matches, ok, err = l.byPosition(tasks)
	case ByTitle:
		matches, ok, err = l.byText(tasks, "Title contains", models.FindByTitle)
	case ByDate:
		matches, ok, err = l.byText(tasks, "Date (YYYY-MM-DD[ HH:MM])", models.FindByDatePrefix)
	}
	if err != nil || !ok {
		return nil, err
	}

	if len(matches) == 0 {
		l.term.DisplayMessage("No tasks found.", SeverityWarn)
		return nil, nil
	}

	rows := make([][]string, 0, len(matches))
	for i, m := range matches {
		rows = append(rows, m.Task.Row(i+1))
	}
	l.term.DisplayTable(models.TaskColumns, rows)

	if !forMutation || criterion == ByPosition {
		return matches, nil
	}
	return l.pick(matches)
}

func (l *Locator) criterion() (Criterion, bool, error) {
	return askOrCancel(l.term, "Search by: (1) position (2) title (3) date (empty to cancel)", func(answer string) (Criterion, outcome) {
		switch answer {
		case "1":
			return ByPosition, resolved
		case "2":
			return ByTitle, resolved
		case "3":
			return ByDate, resolved
		}
		l.term.DisplayMessage("Invalid choice, try again.", SeverityError)
		return 0, retry
	})
}

// byPosition does not retry: a bad number ends the search.
func (l *Locator) byPosition(tasks []models.Task) ([]models.Match, bool, error) {
	return askOrCancel(l.term, "Task number", func(answer string) ([]models.Match, outcome) {
		n, err := strconv.Atoi(answer)
		if err != nil {
			l.term.DisplayMessage("Task number must be a number.", SeverityError)
			return nil, cancelled
		}
		m := models.FindByPosition(tasks, n)
		if m == nil {
			l.term.DisplayMessage("Task number out of range.", SeverityError)
			return nil, cancelled
		}
		return m, resolved
	})
}

func (l *Locator) byText(tasks []models.Task, text string, find func([]models.Task, string) []models.Match) ([]models.Match, bool, error) {
	return askOrCancel(l.term, text, func(answer string) ([]models.Match, outcome) {
		return find(tasks, answer), resolved
	})
}

func (l *Locator) pick(matches []models.Match) ([]models.Match, error) {
	m, ok, err := askOrCancel(l.term, "Enter the ID to confirm the row (empty to cancel)", func(answer string) ([]models.Match, outcome) {
		n, err := strconv.Atoi(answer)
		if err != nil {
			l.term.DisplayMessage("ID must be a number.", SeverityError)
			return nil, retry
		}
		if n < 1 || n > len(matches) {
			l.term.DisplayMessage("Invalid ID.", SeverityError)
			return nil, retry
		}
		return matches[n-1 : n], resolved
	})
	if err != nil || !ok {
		return nil, err
	}
	return m, nil
}

// askOrCancel is ask where an empty answer cancels with a notice.
func askOrCancel[T any](t Terminal, text string, step func(answer string) (T, outcome)) (T, bool, error) {
	return ask(t, text, func(answer string) (T, outcome) {
		if answer == "" {
			t.DisplayMessage("Cancelled.", SeverityWarn)
			var zero T
			return zero, cancelled
		}
		return step(answer)
	})
}
