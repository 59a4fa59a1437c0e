package frame

import "fmt"

// IfEmpty selects the behavior when an assembled frame has no rows.
type IfEmpty string

const (
	// IfEmptyWarn logs a warning and continues with the empty frame.
	IfEmptyWarn IfEmpty = "warn"

	// IfEmptyFail raises ErrEmptyResult.
	IfEmptyFail IfEmpty = "fail"

	// IfEmptySkip silently yields an empty frame.
	IfEmptySkip IfEmpty = "skip"
)

// Validate checks the policy is one of the closed set.
func (p IfEmpty) Validate() error {
	switch p {
	case IfEmptyWarn, IfEmptyFail, IfEmptySkip, "":
		return nil
	default:
		return fmt.Errorf("unknown empty-result policy %q", string(p))
	}
}
