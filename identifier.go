package outline

import (
	"fmt"

	"github.com/google/uuid"
)

// identifierScope tracks the identifiers in use within one owning scope:
// a contour for its points, a glyph for its contours, anchors, components
// and guidelines. Identifiers are generated lazily and once an identifier
// has been seen in a scope it is never handed out again, even after the
// owning object is removed. That keeps external references (kerning
// classes, linked metrics) from silently re-binding to a new object.
type identifierScope struct {
	seen map[string]struct{}
}

func newIdentifierScope() *identifierScope {
	return &identifierScope{seen: make(map[string]struct{})}
}

// generate returns a fresh identifier unique within the scope. Tokens
// are random; collisions are checked against everything the scope has
// ever issued and retried.
func (s *identifierScope) generate() string {
	for {
		id := uuid.NewString()
		if _, taken := s.seen[id]; taken {
			continue
		}
		s.seen[id] = struct{}{}
		return id
	}
}

// claim registers an explicitly supplied identifier. The value must pass
// NormalizeIdentifier and must not collide with any identifier the scope
// has ever held, live or retired.
func (s *identifierScope) claim(value string) (string, error) {
	value, err := NormalizeIdentifier(value)
	if err != nil {
		return "", err
	}
	if _, taken := s.seen[value]; taken {
		return "", fmt.Errorf("%w: %q is already used in this scope", ErrDuplicateIdentifier, value)
	}
	s.seen[value] = struct{}{}
	return value, nil
}

// adopt registers an identifier read from a backing store without the
// duplicate check failing the load; the first occurrence wins and later
// duplicates are reported.
func (s *identifierScope) adopt(value string) error {
	_, err := s.claim(value)
	return err
}
