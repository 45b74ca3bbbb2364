package log

import (
	"io"
	"sync"
)

// Output defines the interface for log outputs.
type Output interface {
	Write(entry *Entry, formatted []byte) error
	Close() error
}

// WriterOutput writes formatted entries to an io.Writer.
type WriterOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput creates an Output backed by the given writer.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// Write writes the formatted entry.
func (o *WriterOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close is a no-op for writer-backed outputs.
func (o *WriterOutput) Close() error { return nil }

// TestOutput captures entries for assertions in tests.
type TestOutput struct {
	mu      sync.Mutex
	Entries []Entry
}

// Write records the entry.
func (o *TestOutput) Write(entry *Entry, _ []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Entries = append(o.Entries, *entry)
	return nil
}

// Close is a no-op.
func (o *TestOutput) Close() error { return nil }
