package ports

import (
	"context"

	"github.com/xvierd/gitcoach/internal/domain"
)

// EnvProber takes a fresh snapshot of the environment before a lesson
// step runs. Checks are side-effect-free with respect to the repository
// and fail-safe: an execution fault reads as "check failed", never as an
// error the caller has to handle.
type EnvProber interface {
	Probe(ctx context.Context, workingDir string) domain.ProbeResult
}
