// Where: cli-rt/internal/domain/template/errors.go
// What: Template lookup failures.
// Why: Let callers tell a missing template tree apart from other copy errors.
package template

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound matches any TemplateNotFoundError via errors.Is.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateNotFoundError reports a template directory that is missing or unreadable.
type TemplateNotFoundError struct {
	ID  string
	Dir string
	Err error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found at %s: %v", e.ID, e.Dir, e.Err)
}

func (e *TemplateNotFoundError) Unwrap() error { return e.Err }

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
