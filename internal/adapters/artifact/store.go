// Package artifact persists built bundles on disk with an age-based sweep.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore on the local disk.
type Store struct {
	dir string
}

// NewStore creates an artifact store rooted at dir.
func NewStore(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create artifact directory")
	}
	return &Store{dir: cleanDir}, nil
}

// Store writes the bundle output under a content-addressed name. The same
// fingerprint with identical content lands on the same file, so repeated
// builds are idempotent on disk.
func (s *Store) Store(fingerprint string, kind domain.TargetKind, output string) (string, error) {
	digest := fmt.Sprintf("%016x", xxhash.Sum64String(output))
	name := fingerprint[:16] + "-" + digest + s.extension(kind)
	path := filepath.Join(s.dir, name)

	//nolint:gosec // Path is built from hashes inside the store directory
	if err := os.WriteFile(path, []byte(output), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	return path, nil
}

// Sweep deletes artifacts older than maxAge and returns how many were removed.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to read artifact directory")
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !s.isArtifact(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}

func (s *Store) extension(kind domain.TargetKind) string {
	if kind == domain.KindScript {
		return ".js"
	}
	return ".css"
}

func (s *Store) isArtifact(name string) bool {
	return strings.HasSuffix(name, ".css") || strings.HasSuffix(name, ".js")
}
