package process

import (
	"bytes"
)

// maxLineSize caps a single buffered stderr line. Longer lines are split.
const maxLineSize = 64 * 1024

// lineWriter splits gnuplot's stderr into lines for a callback.
// It is only written by the exec copy goroutine and flushed after Wait.
type lineWriter struct {
	fn  func(string)
	buf []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	if len(w.buf) >= maxLineSize {
		w.emit(w.buf)
		w.buf = w.buf[:0]
	}

	return len(p), nil
}

func (w *lineWriter) flush() {
	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
}

func (w *lineWriter) emit(line []byte) {
	w.fn(string(bytes.TrimRight(line, "\r")))
}
