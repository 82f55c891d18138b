package tasklist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	ErrInvalidIndex    = errors.New("invalid task index")
	ErrInvalidArgument = errors.New("invalid argument")
)

// SortOrder is the direction applied by Sort
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseSortOrder accepts asc, ascending, desc or descending in any case
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: unknown sort order %q", ErrInvalidArgument, s)
	}
}

// TaskList is an ordered collection of tasks. It is not safe for concurrent use.
type TaskList struct {
	tasks []*Task
}

// New creates a TaskList holding a copy of tasks. A nil slice yields an empty list.
func New(tasks []*Task) (*TaskList, error) {
	owned := make([]*Task, 0, len(tasks))
	for i, t := range tasks {
		if t == nil {
			return nil, fmt.Errorf("%w: task at position %d is nil", ErrInvalidArgument, i)
		}
		owned = append(owned, t)
	}
	return &TaskList{tasks: owned}, nil
}

// Len returns the number of tasks
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// All yields every task in order. Tasks are copies, changing them does not affect the list.
func (l *TaskList) All() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range l.tasks {
			if !yield(i, *t) {
				return
			}
		}
	}
}

func (l *TaskList) checkIndex(idx int) error {
	if idx < 0 || idx >= len(l.tasks) {
		return fmt.Errorf("%w: %d is outside [0, %d)", ErrInvalidIndex, idx, len(l.tasks))
	}
	return nil
}

// Get returns the task at idx
func (l *TaskList) Get(idx int) (*Task, error) {
	if err := l.checkIndex(idx); err != nil {
		return nil, err
	}
	return l.tasks[idx], nil
}

// ListAll renders every task, numbered from 1
func (l *TaskList) ListAll() string {
	var sb strings.Builder
	sb.WriteString("Here are the tasks in your list:\n")
	for i, t := range l.tasks {
		writeEntry(&sb, i, t)
	}
	return sb.String()
}

// Mark sets the done flag of the task at idx
func (l *TaskList) Mark(idx int, done bool) (string, error) {
	task, err := l.Get(idx)
	if err != nil {
		return "", err
	}
	task.SetDone(done)

	var sb strings.Builder
	if done {
		sb.WriteString("Nice! I've marked this task as done:\n")
	} else {
		sb.WriteString("Ok, I've marked this task as not done yet:\n")
	}
	sb.WriteString(task.Render() + "\n")
	return sb.String(), nil
}

// Remove deletes the task at idx and hands it back to the caller
func (l *TaskList) Remove(idx int) (*Task, string, error) {
	if err := l.checkIndex(idx); err != nil {
		return nil, "", err
	}
	removed := l.tasks[idx]
	l.tasks = slices.Delete(l.tasks, idx, idx+1)

	var sb strings.Builder
	sb.WriteString("Got it. I've removed this task:\n")
	sb.WriteString(removed.Render() + "\n")
	fmt.Fprintf(&sb, "Now you have %d tasks in the list\n", len(l.tasks))
	return removed, sb.String(), nil
}

// Add appends a task to the end of the list. task must not be nil;
// a nil task panics before the list is touched.
func (l *TaskList) Add(task *Task) string {
	rendered := task.Render()
	l.tasks = append(l.tasks, task)

	var sb strings.Builder
	sb.WriteString("Got it. I've added this task:\n")
	sb.WriteString(rendered + "\n")
	fmt.Fprintf(&sb, "Now you have %d tasks in the list\n", len(l.tasks))
	return sb.String()
}

// Find renders the tasks whose name contains query, ignoring case.
// Entries keep their position in the full list as their number.
func (l *TaskList) Find(query string) string {
	needle := strings.ToLower(query)

	var sb strings.Builder
	sb.WriteString("Here are the tasks matching your query:\n")
	for i, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.name), needle) {
			writeEntry(&sb, i, t)
		}
	}
	return sb.String()
}

// Sort reorders the list in place. Timed tasks are ordered by time in the requested
// direction and always placed after plain tasks, whichever direction is requested.
// Ties keep their relative order.
func (l *TaskList) Sort(order SortOrder) string {
	slices.SortStableFunc(l.tasks, func(a, b *Task) int {
		return compareTasks(a, b, order)
	})
	return fmt.Sprintf("List has been sorted in %s order!", order)
}

func compareTasks(a, b *Task, order SortOrder) int {
	switch {
	case a.kind == Timed && b.kind == Timed:
		c := a.at.Compare(b.at)
		if order == Descending {
			c = -c
		}
		return c
	case a.kind == Timed:
		return 1
	case b.kind == Timed:
		return -1
	default:
		return 0
	}
}

func writeEntry(sb *strings.Builder, idx int, t *Task) {
	fmt.Fprintf(sb, "%d. %s\n", idx+1, t.Render())
}
