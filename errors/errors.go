// Package errors accumulates several failures into one error value. It is used
// where a check should report every problem it finds instead of stopping at the
// first one, such as the sorted map's invariant validation.
package errors

import (
	"errors"
	"fmt"
)

// Collection gathers errors. The zero value is ready to use. It is not safe for
// concurrent use.
type Collection struct {
	errors []error
}

// Add records err. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf records a new error that wraps base with a formatted detail message,
// so that errors.Is(c.GetError(), base) holds.
func (c *Collection) Addf(base error, format string, args ...any) {
	c.errors = append(c.errors, fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...)))
}

// Len returns the number of recorded errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError reports whether anything was recorded.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil, the single recorded error, or all of them joined.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
