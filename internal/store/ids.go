package store

import (
	"fmt"
	"strconv"
)

// NextTextID returns T<counter> and post-increments the counter.
func (s *Store) NextTextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("T%d", s.nextText)
	s.nextText++
	return id
}

// NextAnnotationID returns A<counter> and post-increments the counter.
func (s *Store) NextAnnotationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("A%d", s.nextAnnotation)
	s.nextAnnotation++
	return id
}

// idSuffix extracts the numeric part of a T<n>/A<n> id. Ids that are too
// short or carry a non-numeric suffix count as 0, which never advances a
// counter.
func idSuffix(id string) int {
	if len(id) < 2 {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}

// lessID orders ids by numeric suffix so T2 sorts before T10. Ties and
// unparseable ids fall back to plain string order.
func lessID(a, b string) bool {
	na, nb := idSuffix(a), idSuffix(b)
	if na != nb {
		return na < nb
	}
	return a < b
}
