// Package ports defines the interfaces (driven and driving ports)
// between the gitcoach core and external infrastructure, following the
// hexagonal layout: the services depend on these contracts, the
// adapters implement them.
package ports

import (
	"context"

	"github.com/xvierd/gitcoach/internal/domain"
)

// CommandRunner executes one external command and reports what happened.
// Implementations must be fail-safe: a missing executable, a non-zero
// exit, or garbled output all come back as a populated ExecutionResult,
// never as a panic or an escaping error. The run is bounded; on timeout
// the child process is terminated and TimedOut is set.
type CommandRunner interface {
	Run(ctx context.Context, spec domain.CommandSpec) domain.ExecutionResult
}
