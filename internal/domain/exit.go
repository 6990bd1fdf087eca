// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "fmt"

// Exit codes following Unix conventions.
const (
	ExitSuccess       = 0  // Completed successfully
	ExitGeneralError  = 1  // Application error
	ExitUsageError    = 2  // Invalid arguments/usage
	ExitNotFoundError = 5  // Package manager not found
	ExitSystemError   = 12 // Lock or filesystem issues
)

// ExitError provides specific exit codes for different failure modes.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }
