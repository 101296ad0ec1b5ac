// Package query implements the name/wildcard path traversal used to
// locate Scanners inside a tree for tests and introspection.
package query

import (
	"fmt"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

// NotFoundError is raised when a path or name lookup has no match.
type NotFoundError struct {
	Path  []string
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scanner not found in path %v at segment %d (%q)", e.Path, e.Index, e.Path[e.Index])
}

// FindByName returns every Scanner in scanners whose Name equals name,
// or scanners verbatim when name is the wildcard "*". It returns
// *NotFoundError when name is not "*" and nothing matches.
func FindByName(scanners []alpacalert.Scanner, name string) ([]alpacalert.Scanner, error) {
	if name == "*" {
		return scanners, nil
	}

	var found []alpacalert.Scanner
	for _, s := range scanners {
		if s.Name() == name {
			found = append(found, s)
		}
	}
	if len(found) == 0 {
		return nil, &NotFoundError{Path: []string{name}, Index: 0}
	}
	return found, nil
}

// FindByPath folds FindByName over path, starting from roots and
// descending into Children() at each segment. A wildcard segment
// propagates the entire current level. It returns *NotFoundError
// naming the first segment with no match.
func FindByPath(roots []alpacalert.Scanner, path []string) ([]alpacalert.Scanner, error) {
	current := roots
	var matched []alpacalert.Scanner

	for i, segment := range path {
		found, err := FindByName(current, segment)
		if err != nil {
			return nil, &NotFoundError{Path: path, Index: i}
		}
		matched = found

		var next []alpacalert.Scanner
		for _, m := range matched {
			next = append(next, m.Children()...)
		}
		current = next
	}

	return matched, nil
}
