package ports

import (
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
)

// ArtifactStore persists built bundles on disk. It is an accessory to the
// in-memory cache; its cleanup policy is a plain age sweep and plays no part
// in invalidation correctness.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactStore interface {
	// Store writes the bundle output and returns the artifact path.
	Store(fingerprint string, kind domain.TargetKind, output string) (string, error)

	// Sweep deletes artifacts older than maxAge and returns how many were
	// removed.
	Sweep(maxAge time.Duration) (int, error)
}
