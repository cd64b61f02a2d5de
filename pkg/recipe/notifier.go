package recipe

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Notifier receives the one line description of every executed step.
type Notifier interface {
	Notify(msg string) error
}

// WriterNotifier writes each notification as a line to an io.Writer.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Stdout creates a notifier writing to the standard output.
func Stdout() *WriterNotifier {
	return NewWriterNotifier(os.Stdout)
}

// Notify writes msg followed by a new line. Concurrent calls never interleave within a line.
func (wn *WriterNotifier) Notify(msg string) error {
	wn.mu.Lock()
	defer wn.mu.Unlock()

	_, err := io.WriteString(wn.w, msg+"\n")
	if err != nil {
		return errors.Wrap(err, "unable to write notification")
	}

	return nil
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Notify records msg.
func (r *Recorder) Notify(msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)

	return nil
}

// Messages returns a copy of the recorded notifications in arrival order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]string, len(r.messages))
	copy(res, r.messages)

	return res
}

// Reset drops the recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
}

var (
	_ Notifier = (*WriterNotifier)(nil)
	_ Notifier = (*Recorder)(nil)
)
