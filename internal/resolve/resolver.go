// Package resolve turns a partial pod name into exactly one pod.
//
// Matching is plain substring containment on the pod name, case-sensitive and
// unanchored. Anything other than exactly one match is an error; the resolver
// never picks among several candidates.
package resolve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/tapcraft-io/kdbg/internal/logging"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// maxSuggestions caps the did-you-mean hints attached to a NotFoundError
const maxSuggestions = 5

// Lister returns the pods of a namespace, or of all namespaces when empty
type Lister interface {
	List(ctx context.Context, namespace string) ([]types.PodRecord, error)
}

// Resolver resolves pod name patterns against a fresh listing
type Resolver struct {
	lister Lister
	logger *slog.Logger
}

// NewResolver creates a resolver backed by lister
func NewResolver(lister Lister, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{
		lister: lister,
		logger: logging.WithOperation(logger, "resolve"),
	}
}

// Resolve lists pods once and returns the single pod whose name contains
// pattern. Listing errors are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, pattern, namespace string) (types.Target, error) {
	pods, err := r.lister.List(ctx, namespace)
	if err != nil {
		return types.Target{}, err
	}

	matches := Match(pods, pattern)

	switch len(matches) {
	case 0:
		r.logger.Debug("no match", slog.String("pattern", pattern), logging.Namespace(namespace))
		return types.Target{}, &NotFoundError{
			Pattern:     pattern,
			Namespace:   namespace,
			Suggestions: Suggest(pods, pattern, maxSuggestions),
		}
	case 1:
		target := matches[0].Target()
		r.logger.Debug("resolved", slog.String("pattern", pattern), logging.Pod(target.Name), logging.Namespace(target.Namespace))
		return target, nil
	default:
		candidates := make([]types.Target, len(matches))
		for i, m := range matches {
			candidates[i] = m.Target()
		}
		r.logger.Debug("ambiguous", slog.String("pattern", pattern), slog.Int("candidates", len(candidates)))
		return types.Target{}, &AmbiguousError{Pattern: pattern, Candidates: candidates}
	}
}

// Match keeps the pods whose name contains pattern, preserving order
func Match(pods []types.PodRecord, pattern string) []types.PodRecord {
	var matches []types.PodRecord
	for _, pod := range pods {
		if strings.Contains(pod.Name, pattern) {
			matches = append(matches, pod)
		}
	}
	return matches
}

// Suggest returns up to limit distinct pod names that fuzzily match pattern,
// best first
func Suggest(pods []types.PodRecord, pattern string, limit int) []string {
	if pattern == "" || len(pods) == 0 || limit <= 0 {
		return nil
	}

	names := make([]string, len(pods))
	for i, pod := range pods {
		names[i] = pod.Name
	}

	seen := make(map[string]bool)
	var out []string
	for _, match := range fuzzy.Find(pattern, names) {
		if seen[match.Str] {
			continue
		}
		seen[match.Str] = true
		out = append(out, match.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
