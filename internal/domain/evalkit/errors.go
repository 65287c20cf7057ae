package evalkit

import (
	"errors"
	"fmt"
)

var ErrRoleNotFound = errors.New("role not found")

// ValidationError reports a rejected input. Scoring never clamps or
// silently repairs bad answers; callers get the first offending field in
// deterministic question order.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
