package catalog

import "context"

// Store is the read side of the catalog used by HTTP handlers and checkout.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	Detail(ctx context.Context, id string) (Detail, bool, error)
}

// MemStore serves a fixed product list. The list is never mutated after
// construction, so reads need no locking; callers always receive copies.
type MemStore struct {
	list  []Product
	index map[string]int
}

func NewMemStore(products []Product) *MemStore {
	s := &MemStore{
		list:  append([]Product(nil), products...),
		index: make(map[string]int, len(products)),
	}
	for i, p := range s.list {
		if _, dup := s.index[p.ID]; !dup {
			s.index[p.ID] = i
		}
	}
	return s
}

// NewStore returns the seeded storefront catalog.
func NewStore() *MemStore {
	return NewMemStore(Seed())
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), s.list...), nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	i, ok := s.index[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.list[i], true, nil
}

func (s *MemStore) Detail(ctx context.Context, id string) (Detail, bool, error) {
	p, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		return Detail{}, ok, err
	}
	return detailFor(p), true, nil
}

func (s *MemStore) Len() int { return len(s.list) }
