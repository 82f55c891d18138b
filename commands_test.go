package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessJourney walks one list through every command the dispatch layer can send.
func TestProcessJourney(t *testing.T) {
	l := newList(t)

	msg, err := l.Process(AddTask{Task: timed(t, "dentist", day(5))})
	require.NoError(t, err)
	assert.Contains(t, msg, "Now you have 1 tasks in the list")

	_, err = l.Process(AddTask{Task: plain(t, "buy milk")})
	require.NoError(t, err)
	_, err = l.Process(AddTask{Task: timed(t, "standup", day(1))})
	require.NoError(t, err)

	msg, err = l.Process(MarkTask{Index: 1, Done: true})
	require.NoError(t, err)
	assert.Equal(t, "Nice! I've marked this task as done:\n[X] buy milk\n", msg)

	msg, err = l.Process(SortTasks{Order: Ascending})
	require.NoError(t, err)
	assert.Equal(t, "List has been sorted in ascending order!", msg)

	msg, err = l.Process(ListTasks{})
	require.NoError(t, err)
	assert.Equal(t, "Here are the tasks in your list:\n"+
		"1. [X] buy milk\n"+
		"2. [ ] standup\n"+
		"3. [ ] dentist\n", msg)

	msg, err = l.Process(FindTasks{Query: "DENT"})
	require.NoError(t, err)
	assert.Equal(t, "Here are the tasks matching your query:\n3. [ ] dentist\n", msg)

	msg, err = l.Process(RemoveTask{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "Got it. I've removed this task:\n[X] buy milk\nNow you have 2 tasks in the list\n", msg)

	_, err = l.Process(RemoveTask{Index: 5})
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, 2, l.Len())
}

func TestProcess_RejectsNil(t *testing.T) {
	l := newList(t)

	_, err := l.Process(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = l.Process(AddTask{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, l.Len())
}

func TestCommandChanges(t *testing.T) {
	assert.True(t, AddTask{}.Changes())
	assert.True(t, MarkTask{}.Changes())
	assert.True(t, RemoveTask{}.Changes())
	assert.True(t, SortTasks{}.Changes())
	assert.False(t, ListTasks{}.Changes())
	assert.False(t, FindTasks{}.Changes())
}
