package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TimeLayout is how created_at is stored and displayed.
	TimeLayout = "2006-01-02 15:04:05"
	// InputTimeLayout is what users type when supplying a date.
	InputTimeLayout = "2006-01-02 15:04"

	// NoDescription replaces an empty description.
	NoDescription = "[No description]"

	StatusDone    = "done"
	StatusPending = "pending"
)

// Task is a single to-do item. Tasks have no identifier of their own: they are
// addressed by their position in the owner's list.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	CreatedAt   string `json:"created_at"`
}

// NewTask builds a pending task, substituting the placeholder for an empty
// description.
func NewTask(title, description string, createdAt time.Time) Task {
	if strings.TrimSpace(description) == "" {
		description = NoDescription
	}
	return Task{
		Title:       title,
		Description: description,
		CreatedAt:   createdAt.Format(TimeLayout),
	}
}

// Status is the human label for Done.
func (t Task) Status() string {
	if t.Done {
		return StatusDone
	}
	return StatusPending
}

// Row renders the task as table cells under the given 1-based id.
func (t Task) Row(id int) []string {
	return []string{fmt.Sprint(id), t.Title, t.Description, t.CreatedAt, t.Status()}
}

// TaskColumns are the headers matching Task.Row.
var TaskColumns = []string{"ID", "Title", "Description", "Date", "Status"}

// ParseInputTime parses a user supplied "YYYY-MM-DD HH:MM" value in loc.
func ParseInputTime(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(InputTimeLayout, strings.TrimSpace(s), loc)
}

// Match pairs a task with its absolute index in the owner's full list.
type Match struct {
	Task  Task
	Index int
}

// FindByPosition returns the task at 1-based position, or nil when position
// is outside [1, len(tasks)].
func FindByPosition(tasks []Task, position int) []Match {
	if position < 1 || position > len(tasks) {
		return nil
	}
	return []Match{{Task: tasks[position-1], Index: position - 1}}
}

// FindByTitle returns every task whose title contains query, ignoring case,
// in list order.
func FindByTitle(tasks []Task, query string) []Match {
	q := strings.ToLower(query)
	var out []Match
	for i, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, Match{Task: t, Index: i})
		}
	}
	return out
}

// FindByDatePrefix returns every task whose created_at starts with prefix
// (case-sensitive), in list order. "2024-05-01" matches all times that day.
func FindByDatePrefix(tasks []Task, prefix string) []Match {
	var out []Match
	for i, t := range tasks {
		if strings.HasPrefix(t.CreatedAt, prefix) {
			out = append(out, Match{Task: t, Index: i})
		}
	}
	return out
}
