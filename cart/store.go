package cart

import (
	"sync"

	"nexus-storefront/models"
)

// Product is the descriptor copied into a cart line on add. The ID is an
// opaque key; name and image are display-only and never used for identity.
type Product struct {
	ID       string
	Name     string
	Price    models.Cents
	ImageRef string
}

// Line is one product's presence in the cart. Quantity is always >= 1; a
// line that would reach 0 is removed instead.
type Line struct {
	ProductID string
	Name      string
	Price     models.Cents
	ImageRef  string
	Quantity  int
}

// Snapshot is an immutable copy of the cart handed to observers and readers.
type Snapshot struct {
	Lines      []Line
	TotalItems int
	TotalPrice models.Cents
	Version    uint64
}

// Store is the single source of truth for one session's cart. Every mutation
// bumps the version and notifies subscribers synchronously with the snapshot
// taken at commit, so no reader can observe a stale total after a mutation
// returns. Mutations hold the lock; observers are invoked outside it.
type Store struct {
	mu          sync.Mutex
	lines       map[string]*Line
	order       []string // insertion order of product IDs
	version     uint64
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

func NewStore() *Store {
	return &Store{
		lines:       make(map[string]*Line),
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Subscribe registers an observer called after every mutation. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// AddItem merges the product into the cart: an existing line with the same ID
// has its quantity incremented by delta, otherwise a new line is appended.
// Deltas < 1 are treated as 1.
func (s *Store) AddItem(p Product, delta int) {
	if delta < 1 {
		delta = 1
	}
	s.mutate(func() {
		if line, ok := s.lines[p.ID]; ok {
			line.Quantity += delta
			return
		}
		s.lines[p.ID] = &Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageRef:  p.ImageRef,
			Quantity:  delta,
		}
		s.order = append(s.order, p.ID)
	})
}

// IncreaseQuantity bumps the line for id by one. Absent id is a no-op.
func (s *Store) IncreaseQuantity(id string) {
	s.mutate(func() {
		if line, ok := s.lines[id]; ok {
			line.Quantity++
		}
	})
}

// DecreaseQuantity lowers the line for id by one, removing the line entirely
// when the quantity would drop below 1. Absent id is a no-op.
func (s *Store) DecreaseQuantity(id string) {
	s.mutate(func() {
		line, ok := s.lines[id]
		if !ok {
			return
		}
		line.Quantity--
		if line.Quantity <= 0 {
			s.removeLocked(id)
		}
	})
}

// RemoveItem deletes the line for id unconditionally. Absent id is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mutate(func() {
		s.removeLocked(id)
	})
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mutate(func() {
		s.lines = make(map[string]*Line)
		s.order = s.order[:0]
	})
}

// Replace swaps the whole cart contents, used when hydrating a persisted
// session. Lines with non-positive quantities are dropped.
func (s *Store) Replace(lines []Line) {
	s.mutate(func() {
		s.lines = make(map[string]*Line)
		s.order = s.order[:0]
		for _, l := range lines {
			if l.Quantity < 1 {
				continue
			}
			if _, ok := s.lines[l.ProductID]; ok {
				s.lines[l.ProductID].Quantity += l.Quantity
				continue
			}
			cp := l
			s.lines[l.ProductID] = &cp
			s.order = append(s.order, l.ProductID)
		}
	})
}

// TotalItems returns the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItemsLocked()
}

// TotalPrice returns the sum of price*quantity across lines, in minor units.
func (s *Store) TotalPrice() models.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

// Lines returns the cart lines in insertion order. The slice and its
// elements are copies.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked()
}

// Snapshot returns the full current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) mutate(apply func()) {
	s.mu.Lock()
	apply()
	s.version++
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) removeLocked(id string) {
	if _, ok := s.lines[id]; !ok {
		return
	}
	delete(s.lines, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) linesLocked() []Line {
	out := make([]Line, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.lines[id])
	}
	return out
}

func (s *Store) totalItemsLocked() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

func (s *Store) totalPriceLocked() models.Cents {
	var total models.Cents
	for _, line := range s.lines {
		total += line.Price * models.Cents(line.Quantity)
	}
	return total
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Lines:      s.linesLocked(),
		TotalItems: s.totalItemsLocked(),
		TotalPrice: s.totalPriceLocked(),
		Version:    s.version,
	}
}
