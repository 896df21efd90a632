package service

import (
	"fmt"
	"strings"
)

// SchemaError reports a BOM file that could not be turned into a forest.
type SchemaError struct {
	Path string
	Errs []error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid bom file: %s", e.Path, strings.Join(e.Messages(), "; "))
}

// Messages returns the individual schema problems.
func (e *SchemaError) Messages() []string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return msgs
}
