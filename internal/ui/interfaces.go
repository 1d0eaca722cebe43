package ui

import (
	"fmt"
	"io"
	"os"
)

// Reporter defines interface for console output
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Failure(msg string)
	Block(lines ...string)
}

// DefaultReporter writes plain lines to Out, or stdout when Out is nil
type DefaultReporter struct {
	Out io.Writer
}

func (r *DefaultReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Info prints a plain message
func (r *DefaultReporter) Info(msg string) {
	fmt.Fprintln(r.out(), msg)
}

// Warn prints a warning
func (r *DefaultReporter) Warn(msg string) {
	fmt.Fprintf(r.out(), "Warning: %s\n", msg)
}

// Success prints a passing verdict
func (r *DefaultReporter) Success(msg string) {
	fmt.Fprintf(r.out(), "✓ %s\n", msg)
}

// Failure prints a failing verdict
func (r *DefaultReporter) Failure(msg string) {
	fmt.Fprintf(r.out(), "✗ %s\n", msg)
}

// Block prints lines inside a frame
func (r *DefaultReporter) Block(lines ...string) {
	for _, line := range Frame(lines) {
		fmt.Fprintln(r.out(), line)
	}
}

// MockReporter for testing
type MockReporter struct {
	Infos     []string
	Warnings  []string
	Successes []string
	Failures  []string
	Blocks    [][]string
}

// Info records the message
func (m *MockReporter) Info(msg string) {
	m.Infos = append(m.Infos, msg)
}

// Warn records the warning
func (m *MockReporter) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// Success records the message
func (m *MockReporter) Success(msg string) {
	m.Successes = append(m.Successes, msg)
}

// Failure records the message
func (m *MockReporter) Failure(msg string) {
	m.Failures = append(m.Failures, msg)
}

// Block records the lines
func (m *MockReporter) Block(lines ...string) {
	m.Blocks = append(m.Blocks, lines)
}
