package docintel

import (
	"fmt"
	"strings"
)

// CredentialError signals missing or unusable service configuration. It is
// raised before any network attempt and is never retried.
type CredentialError struct {
	Reason string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("document intelligence credentials: %s", e.Reason)
}

// TransientError records the failure of a single extraction tier. The
// gateway moves on to the next tier instead of propagating it.
type TransientError struct {
	Method     Method
	APIVersion string
	Reason     string
}

func (e *TransientError) Error() string {
	if e.APIVersion == "" {
		return fmt.Sprintf("%s: %s", e.Method, e.Reason)
	}
	return fmt.Sprintf("%s (api-version %s): %s", e.Method, e.APIVersion, e.Reason)
}

// TimeoutError signals that the polling attempt budget was exhausted before
// the analysis finished.
type TimeoutError struct {
	Attempts   int
	LastStatus string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("analysis did not finish within %d poll attempts (last status %q)", e.Attempts, e.LastStatus)
}

// ExtractionError aggregates the failures of every attempted tier. It is
// returned only when no tier produced a result.
type ExtractionError struct {
	Failures []*TransientError
}

func (e *ExtractionError) Error() string {
	if len(e.Failures) == 0 {
		return "extraction failed: no methods attempted"
	}

	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.Error())
	}

	return "all extraction methods failed: " + strings.Join(parts, "; ")
}
