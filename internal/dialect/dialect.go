// Package dialect is a named, semver-gated registry of TokenSet presets.
// It lets a caller ask for "the orizon keyword set as of v1.x" without
// reaching into tokenize.TokenSet internals, mirroring the constraint
// resolution style of the Orizon package manager's dependency resolver.
package dialect

import (
	"fmt"
	"sort"

	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/tokenize"
)

// Builder constructs a fresh TokenSet for one dialect version. A fresh
// TokenSet is returned on every call since TokenSet registration is not
// safe to share across independent tokenization runs that might still be
// registering matchers.
type Builder func() *tokenize.TokenSet

// entry is one published (version, builder) pair for a named dialect.
type entry struct {
	version *semver.Version
	build   Builder
}

// Registry holds every registered version of every named dialect.
type Registry struct {
	dialects map[string][]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{dialects: make(map[string][]entry)}
}

// Register publishes a dialect version. version must be valid semver
// (e.g. "1.0.0"); build must not be nil.
func (r *Registry) Register(name, version string, build Builder) error {
	sv, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("dialect: invalid version %q for %q: %w", version, name, err)
	}
	if build == nil {
		return fmt.Errorf("dialect: nil builder for %q %q", name, version)
	}

	r.dialects[name] = append(r.dialects[name], entry{version: sv, build: build})
	return nil
}

// NoMatchingVersionError reports that no published version of a dialect
// satisfies a requested constraint.
type NoMatchingVersionError struct {
	Dialect    string
	Constraint string
}

func (e *NoMatchingVersionError) Error() string {
	return fmt.Sprintf("dialect %q: no published version satisfies %q", e.Dialect, e.Constraint)
}

// UnknownDialectError reports a dialect name with no published versions.
type UnknownDialectError struct {
	Dialect string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("dialect %q: unknown", e.Dialect)
}

// Resolve picks the highest published version of name satisfying
// constraint (a semver constraint expression, e.g. ">=1.0.0, <2.0.0"), and
// builds a fresh TokenSet from it.
func (r *Registry) Resolve(name, constraint string) (*tokenize.TokenSet, *semver.Version, error) {
	candidates, ok := r.dialects[name]
	if !ok || len(candidates) == 0 {
		return nil, nil, &UnknownDialectError{Dialect: name}
	}

	con, err := parseConstraint(constraint)
	if err != nil {
		return nil, nil, fmt.Errorf("dialect: invalid constraint %q: %w", constraint, err)
	}

	sorted := make([]entry, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].version.GreaterThan(sorted[j].version)
	})

	for _, cand := range sorted {
		if con.Check(cand.version) {
			return cand.build(), cand.version, nil
		}
	}

	return nil, nil, &NoMatchingVersionError{Dialect: name, Constraint: constraint}
}

// Names returns the registered dialect names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseConstraint(expr string) (*semver.Constraints, error) {
	if expr == "" {
		return semver.NewConstraint(">=0.0.0")
	}
	return semver.NewConstraint(expr)
}
