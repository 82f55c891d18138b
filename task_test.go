package tasklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainTask_RejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		task, err := NewPlainTask(name, false)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, task)
	}
}

func TestNewTimedTask_Validation(t *testing.T) {
	_, err := NewTimedTask("", false, time.Now())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTimedTask("meeting", false, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	at := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	task, err := NewTimedTask("meeting", true, at)
	require.NoError(t, err)
	assert.True(t, task.IsTimed())
	assert.Equal(t, Timed, task.Kind())

	got, ok := task.Time()
	assert.True(t, ok)
	assert.True(t, got.Equal(at))
}

func TestPlainTask_HasNoTime(t *testing.T) {
	task, err := NewPlainTask("read book", false)
	require.NoError(t, err)

	_, ok := task.Time()
	assert.False(t, ok)
	assert.False(t, task.IsTimed())
	assert.Equal(t, "plain", task.Kind().String())
}

func TestRender(t *testing.T) {
	task, err := NewPlainTask("read book", false)
	require.NoError(t, err)
	assert.Equal(t, "[ ] read book", task.Render())

	task.SetDone(true)
	assert.Equal(t, "[X] read book", task.Render())
	assert.Equal(t, task.Render(), task.String())

	task.SetDone(false)
	assert.Equal(t, "[ ] read book", task.Render())
}

func TestSerialize(t *testing.T) {
	task, err := NewPlainTask("read book", false)
	require.NoError(t, err)
	assert.Equal(t, "0|read book", task.Serialize())

	task.SetDone(true)
	assert.Equal(t, "1|read book", task.Serialize())
}

func TestSerialize_EscapesDelimiter(t *testing.T) {
	task, err := NewPlainTask(`a|b\c`, false)
	require.NoError(t, err)
	assert.Equal(t, `0|a\|b\\c`, task.Serialize())
}

func TestFormatTime(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 05 2024 14:07", FormatTime(at))
}
