package snapshot

import (
	"fmt"
	"strings"
)

// MissingReferenceError reports that a required singleton entity (the
// synthetic payee or the inflow category) is absent or ambiguous.
type MissingReferenceError struct {
	Kind  string
	Name  string
	Count int
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("expected exactly one %s named %q, found %d", e.Kind, e.Name, e.Count)
}

// UnknownAccountError reports account names that do not exist in the
// snapshot. All unresolved names are collected before failing.
type UnknownAccountError struct {
	Names []string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("no such account(s): %s", strings.Join(e.Names, ", "))
}

// ConflictingScopeError reports that both an account include-list and an
// account exclude-list were supplied.
type ConflictingScopeError struct{}

func (e *ConflictingScopeError) Error() string {
	return "account include-list and exclude-list are mutually exclusive"
}

// IncompleteSnapshotError reports required collections absent from the
// snapshot.
type IncompleteSnapshotError struct {
	Missing []string
}

func (e *IncompleteSnapshotError) Error() string {
	return fmt.Sprintf("snapshot is missing required collections: %s", strings.Join(e.Missing, ", "))
}
