package items

import (
	"errors"
	"fmt"
)

// ErrTemplateMissing indicates an item has no template for the scheme.
var ErrTemplateMissing = errors.New("template missing")

// TemplateError reports the item and directory that lacked a template.
type TemplateError struct {
	Item   string
	Scheme string
	Dir    string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("Template missing for item %q: no %s.* in %s", e.Item, e.Scheme, e.Dir)
}

func (e *TemplateError) Unwrap() error {
	return ErrTemplateMissing
}
