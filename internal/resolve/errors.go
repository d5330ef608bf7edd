package resolve

import (
	"errors"
	"fmt"

	"github.com/tapcraft-io/kdbg/pkg/types"
)

var (
	ErrNotFound  = errors.New("no pods found")
	ErrAmbiguous = errors.New("multiple pods found")
)

// NotFoundError reports a pattern that matched no pod name
type NotFoundError struct {
	Pattern   string
	Namespace string
	// Suggestions are names close to the pattern. They are hints only.
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("no pods found matching '%s'", e.Pattern)
	}
	return fmt.Sprintf("no pods found matching '%s' in namespace %s", e.Pattern, e.Namespace)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AmbiguousError reports a pattern that matched more than one pod name.
// Candidates keep the order of the query response.
type AmbiguousError struct {
	Pattern    string
	Candidates []types.Target
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d pods match '%s', please be more specific", len(e.Candidates), e.Pattern)
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}
