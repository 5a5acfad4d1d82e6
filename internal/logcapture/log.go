package logcapture

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Log is a file receiving gnuplot's stdout and stderr.
type Log struct {
	log      *slog.Logger
	file     *os.File
	implicit bool
	settle   time.Duration
	sleep    func(time.Duration)
}

// Create opens the log destination. An empty path allocates an implicit
// temporary file that Close removes; an explicit path is created or
// truncated and kept.
func Create(log *slog.Logger, path string, settle time.Duration) (*Log, error) {
	l := &Log{
		log:    log.With("component", "log_capture"),
		settle: settle,
		sleep:  time.Sleep,
	}

	var err error

	if path == "" {
		l.implicit = true
		l.file, err = os.CreateTemp("", "gnuplot-*.log")
	} else {
		l.file, err = os.Create(path)
	}

	if err != nil {
		return nil, fmt.Errorf("create gnuplot log: %w", err)
	}

	l.log.Debug("Created gnuplot log", "path", l.file.Name(), "implicit", l.implicit)

	return l, nil
}

// File returns the file handed to the process as stdout and stderr.
func (l *Log) File() *os.File {
	return l.file
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.file.Name()
}

// Read waits for the settle delay, then returns the whole log when lines
// is zero or negative, or its last lines lines otherwise.
func (l *Log) Read(lines int) (string, error) {
	if l.settle > 0 {
		l.sleep(l.settle)
	}

	data, err := os.ReadFile(l.file.Name())
	if err != nil {
		return "", fmt.Errorf("read gnuplot log: %w", err)
	}

	l.log.Debug("Read gnuplot log", "bytes", len(data), "lines", lines)

	return Tail(string(data), lines), nil
}

// Close closes the file and removes it when it was allocated implicitly.
func (l *Log) Close() error {
	err := l.file.Close()

	if l.implicit {
		if rmErr := os.Remove(l.file.Name()); rmErr != nil && !stderrors.Is(rmErr, os.ErrNotExist) {
			err = stderrors.Join(err, fmt.Errorf("remove gnuplot log: %w", rmErr))
		}
	}

	return err
}

// Tail returns the last n lines of text, keeping their line endings.
// A final line without a newline counts as a line. n <= 0 returns text.
func Tail(text string, n int) string {
	if n <= 0 {
		return text
	}

	end := len(text)
	if strings.HasSuffix(text, "\n") {
		end--
	}

	for i := end - 1; i >= 0; i-- {
		if text[i] != '\n' {
			continue
		}

		n--
		if n == 0 {
			return text[i+1:]
		}
	}

	return text
}
