package tasklist

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes plain tasks from time-bound ones
type Kind int

const (
	Plain Kind = iota
	Timed
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Timed:
		return "timed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// displayTimeLayout matches the "Jan 02 2024 15:04" style shown to users
const displayTimeLayout = "Jan 02 2006 15:04"

// Task represents one to-do entry. Timed tasks also carry a timestamp.
type Task struct {
	name string
	done bool
	kind Kind
	at   time.Time
}

// NewPlainTask creates a task without a timestamp
func NewPlainTask(name string, done bool) (*Task, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Task{name: name, done: done, kind: Plain}, nil
}

// NewTimedTask creates a time-bound task
func NewTimedTask(name string, done bool, at time.Time) (*Task, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if at.IsZero() {
		return nil, fmt.Errorf("%w: timed task %q has no time", ErrInvalidArgument, name)
	}
	return &Task{name: name, done: done, kind: Timed, at: at}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: task name must not be empty", ErrInvalidArgument)
	}
	return nil
}

func (t *Task) Name() string { return t.name }
func (t *Task) Done() bool   { return t.done }
func (t *Task) Kind() Kind   { return t.kind }
func (t *Task) IsTimed() bool {
	return t.kind == Timed
}

// Time returns the task's timestamp; ok is false for plain tasks
func (t *Task) Time() (at time.Time, ok bool) {
	if t.kind != Timed {
		return time.Time{}, false
	}
	return t.at, true
}

// SetDone marks the task as completed or not
func (t *Task) SetDone(done bool) {
	t.done = done
}

// Render returns "[X] name" for done tasks and "[ ] name" otherwise
func (t *Task) Render() string {
	status := ' '
	if t.done {
		status = 'X'
	}
	return fmt.Sprintf("[%c] %s", status, t.name)
}

func (t *Task) String() string {
	return t.Render()
}

// Serialize encodes the task as "<0|1>|<name>".
// Backslashes, pipes and line breaks inside the name are escaped so the encoding
// stays on one line and splittable.
func (t *Task) Serialize() string {
	flag := "0"
	if t.done {
		flag = "1"
	}
	return flag + fieldSep + escapeField(t.name)
}

// FormatTime formats a timestamp for display
func FormatTime(at time.Time) string {
	return at.Format(displayTimeLayout)
}
