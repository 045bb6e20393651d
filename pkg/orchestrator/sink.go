package orchestrator

import (
	"fmt"
	"os"
)

// Sink persists a finished export. Implementations are only handed complete
// text: the orchestrator never writes mid-traversal, so a failed export
// leaves no partial destination behind.
type Sink interface {
	Write(name string, data []byte) error
}

// FileSink writes exports to the local filesystem, creating the destination
// or overwriting it in full.
type FileSink struct{}

// Write stores data at the given path.
func (FileSink) Write(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("orchestrator: write %s: %w", name, err)
	}
	return nil
}
