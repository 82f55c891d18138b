package tasklist

// Command is a single request from the dispatch layer
type Command interface {
	// Apply runs the command against the list and returns the confirmation message
	Apply(l *TaskList) (string, error)
	// Changes reports whether a successful Apply modifies the list
	Changes() bool
}

// AddTask appends Task
type AddTask struct {
	Task *Task
}

func (c AddTask) Apply(l *TaskList) (string, error) {
	if c.Task == nil {
		return "", ErrInvalidArgument
	}
	return l.Add(c.Task), nil
}

func (c AddTask) Changes() bool { return true }

// ListTasks renders the whole list
type ListTasks struct{}

func (ListTasks) Apply(l *TaskList) (string, error) { return l.ListAll(), nil }
func (ListTasks) Changes() bool                      { return false }

// MarkTask sets the done flag of the task at Index
type MarkTask struct {
	Index int
	Done  bool
}

func (c MarkTask) Apply(l *TaskList) (string, error) {
	return l.Mark(c.Index, c.Done)
}

func (c MarkTask) Changes() bool { return true }

// RemoveTask deletes the task at Index
type RemoveTask struct {
	Index int
}

func (c RemoveTask) Apply(l *TaskList) (string, error) {
	_, msg, err := l.Remove(c.Index)
	return msg, err
}

func (c RemoveTask) Changes() bool { return true }

// FindTasks searches task names for Query
type FindTasks struct {
	Query string
}

func (c FindTasks) Apply(l *TaskList) (string, error) { return l.Find(c.Query), nil }
func (c FindTasks) Changes() bool                      { return false }

// SortTasks reorders the list
type SortTasks struct {
	Order SortOrder
}

func (c SortTasks) Apply(l *TaskList) (string, error) { return l.Sort(c.Order), nil }
func (c SortTasks) Changes() bool                      { return true }

// Process is the single entrypoint for the dispatch layer
func (l *TaskList) Process(cmd Command) (string, error) {
	if cmd == nil {
		return "", ErrInvalidArgument
	}
	return cmd.Apply(l)
}
