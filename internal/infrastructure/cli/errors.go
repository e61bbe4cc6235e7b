package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/prdlens/pkg/domain"
	"github.com/felixgeelhaar/prdlens/pkg/domain/analysis"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, analysis.ErrEmptyDocument):
		return NewCLIError("document is empty", "Provide a document with at least some text to analyze", err)
	case errors.Is(err, domain.ErrNotInitialized):
		return NewCLIError("workspace not initialized", "Run 'prdlens init' to create the .prdlens directory", err)
	case errors.Is(err, os.ErrNotExist):
		return NewCLIError("no stored report found", "Run 'prdlens analyze <file>' to generate one", err)
	}

	return err
}
