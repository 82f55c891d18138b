package tasklist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

var ErrCorruptRecord = errors.New("corrupt task record")

const (
	fieldSep   = "|"
	plainTag   = "P"
	timedTag   = "T"
	storageDir = ".tasklist"
)

// FileStorage keeps a task list in a line-based text file.
// No caching: every call reads or writes the file under an exclusive lock.
type FileStorage struct {
	filePath string
}

// NewFileStorage creates storage at <workspaceDir>/.tasklist/<fileName>
func NewFileStorage(workspaceDir, fileName string) (*FileStorage, error) {
	filePath := filepath.Join(workspaceDir, storageDir, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", storageDir, err)
	}

	return &FileStorage{
		filePath: filePath,
	}, nil
}

// Path returns the data file location
func (s *FileStorage) Path() string {
	return s.filePath
}

// Load reads the task list. A missing or empty file yields an empty list.
// Lines that cannot be decoded are skipped with a warning.
func (s *FileStorage) Load() (*TaskList, error) {
	var list *TaskList

	err := s.withFileLock(func(file *os.File) error {
		var err error
		list, err = s.readTasks(file)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Save replaces the file contents with the given list
// Lock → Encode → Truncate → Write → Unlock
func (s *FileStorage) Save(list *TaskList) error {
	return s.withFileLock(func(file *os.File) error {
		return writeTasks(file, list)
	})
}

// Update runs a read-modify-write cycle under a single lock.
// The list is written back only when fn reports a change and returns no error.
// Lock → Read → fn → Write → Unlock
func (s *FileStorage) Update(fn func(*TaskList) (changed bool, err error)) error {
	return s.withFileLock(func(file *os.File) error {
		list, err := s.readTasks(file)
		if err != nil {
			return err
		}

		changed, err := fn(list)
		if err != nil || !changed {
			return err
		}
		return writeTasks(file, list)
	})
}

// readTasks decodes every line of an already locked file
func (s *FileStorage) readTasks(file *os.File) (*TaskList, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek: %w", err)
	}

	var tasks []*Task
	reader := bufio.NewReader(file)
	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read file: %w", readErr)
		}
		if line != "" {
			lineNo++
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) != "" {
				task, err := DecodeTask(line)
				if err != nil {
					log.Printf("warning: skipping line %d of %s: %v", lineNo, s.filePath, err)
				} else {
					tasks = append(tasks, task)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	return New(tasks)
}

// writeTasks replaces the contents of an already locked file
func writeTasks(file *os.File, list *TaskList) error {
	var buf bytes.Buffer
	for _, task := range list.All() {
		buf.WriteString(EncodeTask(&task))
		buf.WriteByte('\n')
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// withFileLock executes a function with the file locked
func (s *FileStorage) withFileLock(fn func(*os.File) error) error {
	file, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}

// EncodeTask produces one storage line: "P|<serialized>" or "T|<serialized>|<RFC3339 time>"
func EncodeTask(t *Task) string {
	if at, ok := t.Time(); ok {
		return timedTag + fieldSep + t.Serialize() + fieldSep + at.Format(time.RFC3339)
	}
	return plainTag + fieldSep + t.Serialize()
}

// DecodeTask parses a line written by EncodeTask
func DecodeTask(line string) (*Task, error) {
	fields, err := splitFields(line)
	if err != nil {
		return nil, err
	}
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrCorruptRecord, len(fields))
	}

	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return nil, fmt.Errorf("%w: done flag %q", ErrCorruptRecord, fields[1])
	}

	switch fields[0] {
	case plainTag:
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: plain task has %d fields", ErrCorruptRecord, len(fields))
		}
		return NewPlainTask(fields[2], done)
	case timedTag:
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: timed task has %d fields", ErrCorruptRecord, len(fields))
		}
		at, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		return NewTimedTask(fields[2], done, at)
	default:
		return nil, fmt.Errorf("%w: unknown task type %q", ErrCorruptRecord, fields[0])
	}
}

// escapeField backslash-escapes the separator, backslashes and line breaks
func escapeField(s string) string {
	if !strings.ContainsAny(s, "\\|\n\r") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '|':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// splitFields splits on unescaped pipes and unescapes each field.
// It works on bytes so names that are not valid UTF-8 survive unchanged.
func splitFields(line string) ([]string, error) {
	var fields []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			switch c {
			case 'n':
				cur.WriteByte('\n')
			case 'r':
				cur.WriteByte('\r')
			default:
				cur.WriteByte(c)
			}
			escaped = false
		case c == '\\':
			escaped = true
		case c == '|':
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: dangling escape", ErrCorruptRecord)
	}
	return append(fields, cur.String()), nil
}
