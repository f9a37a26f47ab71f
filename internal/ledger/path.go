package ledger

import (
	"fmt"
	"strings"
)

// PathSeparator joins account names in a hierarchical path, most ancestral first.
const PathSeparator = "."

// AncestorLink is one row of the ancestor/descendant closure.
type AncestorLink struct {
	Ancestor   string
	Descendant string
}

// ParseAccountPath splits "Assets.Bank.Checking" into its segments.
// Empty paths, blank segments (leading, trailing or doubled dots) and a name
// appearing twice in the same path are rejected.
func ParseAccountPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrMalformedPath)
	}
	segments := strings.Split(path, PathSeparator)
	seen := make(map[string]int, len(segments))
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment at position %d", ErrMalformedPath, path, i)
		}
		if first, ok := seen[segment]; ok {
			return nil, fmt.Errorf("%w: %q repeats %q at positions %d and %d", ErrMalformedPath, path, segment, first, i)
		}
		seen[segment] = i
	}
	return segments, nil
}

// ClosureLinks returns every (ancestor, descendant) pair implied by the ordered
// segments: each segment is an ancestor of every segment to its right, so n
// segments yield n*(n-1)/2 links. Links are ordered by ancestor position, then
// descendant position.
func ClosureLinks(segments []string) []AncestorLink {
	if len(segments) < 2 {
		return nil
	}
	links := make([]AncestorLink, 0, len(segments)*(len(segments)-1)/2)
	for i, ancestor := range segments {
		for _, descendant := range segments[i+1:] {
			links = append(links, AncestorLink{Ancestor: ancestor, Descendant: descendant})
		}
	}
	return links
}
