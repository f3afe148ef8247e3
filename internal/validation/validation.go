// Package validation holds the field checks shared by the request
// validators. Each check appends to a Collector so a handler can report every
// violated field at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "garmentsync/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s has the local-part@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseDate accepts an RFC3339 timestamp or a plain YYYY-MM-DD date and
// returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t.UTC(), nil
}

type Collector struct {
	details []apperrors.ValidationDetail
}

func (c *Collector) Add(field, message string) {
	c.details = append(c.details, apperrors.ValidationDetail{
		Field:   field,
		Message: message,
	})
}

func (c *Collector) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		c.Add(field, field+" is required")
		return false
	}
	return true
}

func (c *Collector) MaxLength(field, value string, max int) {
	if len(value) > max {
		c.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

func (c *Collector) Email(field, value string) {
	if !c.Required(field, value) {
		return
	}
	if !IsEmail(strings.TrimSpace(value)) {
		c.Add(field, field+" must be a valid email address")
	}
}

func (c *Collector) Positive(field string, value int) {
	if value <= 0 {
		c.Add(field, field+" must be a positive integer")
	}
}

// OneOf checks value against allowed. Empty values pass when optional is set.
func (c *Collector) OneOf(field, value string, optional bool, allowed ...string) {
	if value == "" {
		if !optional {
			c.Add(field, field+" is required")
		}
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.Add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

// Date parses value and records a violation when it is missing or malformed.
func (c *Collector) Date(field, value string) time.Time {
	if !c.Required(field, value) {
		return time.Time{}
	}
	t, err := ParseDate(value)
	if err != nil {
		c.Add(field, field+" must be an ISO-8601 date")
		return time.Time{}
	}
	return t
}

func (c *Collector) Details() []apperrors.ValidationDetail {
	return c.details
}

// Err returns a ValidationError listing every recorded violation, or nil.
func (c *Collector) Err() error {
	if len(c.details) == 0 {
		return nil
	}
	return apperrors.NewValidationError("validation failed", c.details...)
}
