package outline

// PointStore is the persistence seam between a contour and whatever
// technology backs it. The core mutates outlines exclusively through
// this interface; a backing store persists whatever point list and
// identifiers the core hands it. The in-memory implementation below is
// the one required implementation; read-only sources (see the opentype
// package) load into it.
//
// A store is owned by exactly one contour. Concurrent external mutation
// of a store while its contour is live is undefined behavior.
type PointStore interface {
	// Len returns the number of stored points.
	Len() int
	// At returns the point at index i. The index is trusted; the
	// contour validates before calling.
	At(i int) *Point
	// Insert places p at index i, shifting later points up.
	Insert(i int, p *Point)
	// Remove deletes and returns the point at index i.
	Remove(i int) *Point
	// Replace swaps the entire point list.
	Replace(points []*Point)
	// All returns the stored points in order. The returned slice is a
	// copy; mutate through Insert/Remove/Replace.
	All() []*Point
	// BoundsHint returns precomputed bounds when the backing store has
	// them, e.g. from a font table. The core recomputes when ok is
	// false or a mutation has occurred since load.
	BoundsHint() (Rect, bool)
}

// memStore is the in-memory PointStore.
type memStore struct {
	points []*Point
}

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) Len() int        { return len(s.points) }
func (s *memStore) At(i int) *Point { return s.points[i] }

func (s *memStore) Insert(i int, p *Point) {
	s.points = append(s.points, nil)
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p
}

func (s *memStore) Remove(i int) *Point {
	p := s.points[i]
	s.points = append(s.points[:i], s.points[i+1:]...)
	return p
}

func (s *memStore) Replace(points []*Point) {
	s.points = points
}

func (s *memStore) All() []*Point {
	out := make([]*Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *memStore) BoundsHint() (Rect, bool) { return Rect{}, false }
