package application

import (
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// Sentinel errors for common conditions
var (
	ErrTargetNotFound = errors.New("target not found")
	ErrBusy           = errors.New("resource busy")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsBusy reports whether err indicates the file is open or locked by another
// process. Matches both errno values and the message strings surfaced by the
// platform deletion primitives.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBusy) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == syscall.EBUSY || errno == syscall.ETXTBSY) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "resource busy") ||
		strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "device or resource busy")
}
