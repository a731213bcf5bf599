package domain

// Dependency is one (identity, modification token) pair a cached output
// depends on.
type Dependency struct {
	// Identity is the absolute file path or remote URL.
	Identity string
	// Token is the modification token recorded when the output was built.
	Token int64
	// Remote marks dependencies with no reliable change signal; they are
	// revalidated by cache max-age only, never by token comparison.
	Remote bool
}

// DependencySet tracks every resource a compiled output depends on, including
// files discovered transitively by preprocessors. It must be complete: any
// file capable of altering the output has to be present or invalidation
// correctness is violated.
type DependencySet struct {
	deps  []Dependency
	index map[string]int
}

// NewDependencySet creates an empty DependencySet.
func NewDependencySet() *DependencySet {
	return &DependencySet{index: make(map[string]int)}
}

// Add records a dependency. Re-adding an identity keeps the first token:
// the token observed when the content actually entered the output.
func (s *DependencySet) Add(identity string, token int64, remote bool) {
	if _, ok := s.index[identity]; ok {
		return
	}
	s.index[identity] = len(s.deps)
	s.deps = append(s.deps, Dependency{Identity: identity, Token: token, Remote: remote})
}

// AddResource records a resolved resource as a dependency.
func (s *DependencySet) AddResource(r ResolvedResource) {
	if r.IsRemote() {
		s.Add(r.Origin, r.Token, true)
		return
	}
	s.Add(r.Path, r.Token, false)
}

// Merge folds another set's dependencies into this one.
func (s *DependencySet) Merge(other *DependencySet) {
	if other == nil {
		return
	}
	for _, d := range other.deps {
		s.Add(d.Identity, d.Token, d.Remote)
	}
}

// Contains reports whether the identity is part of the set.
func (s *DependencySet) Contains(identity string) bool {
	_, ok := s.index[identity]
	return ok
}

// Len returns the number of tracked dependencies.
func (s *DependencySet) Len() int {
	return len(s.deps)
}

// All returns a copy of the tracked dependencies.
func (s *DependencySet) All() []Dependency {
	out := make([]Dependency, len(s.deps))
	copy(out, s.deps)
	return out
}

// LocalPaths returns the identities of all local dependencies.
func (s *DependencySet) LocalPaths() []string {
	var paths []string
	for _, d := range s.deps {
		if !d.Remote {
			paths = append(paths, d.Identity)
		}
	}
	return paths
}
