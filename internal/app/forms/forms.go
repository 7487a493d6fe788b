// Package forms holds the draft state behind the dashboard's editor forms.
// A form is loaded from an existing record or starts blank, collects field
// edits, and on submit produces the entity for either a create or an update
// depending on how it was opened. Destructive actions go through a
// confirmation gate that refuses to run unconfirmed.
package forms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormInvalid wraps field validation failures raised on submit.
var ErrFormInvalid = errors.New("form validation failed")

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrFormInvalid, name)
	}
	return nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
