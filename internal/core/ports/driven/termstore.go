package driven

import "github.com/texpilot/texpilot/internal/core/domain"

// TermStore holds the process-wide canonical term table. It is the only
// shared mutable state in the system: implementations must serialise
// Replace/Snapshot/Reset internally so that concurrent cache updates
// cannot interleave and silently lose a table.
type TermStore interface {
	// Replace overwrites the stored table with the given one.
	// This is a full overwrite, never a merge.
	Replace(table domain.TermTable) error

	// Snapshot returns an independent copy of the stored table.
	Snapshot() (domain.TermTable, error)

	// Reset clears the stored table.
	Reset() error

	// Close releases any underlying resources.
	Close() error
}
