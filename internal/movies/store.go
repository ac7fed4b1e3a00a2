package movies

import "fmt"

// Store is the ordered list of records. Insertion order is display order and
// duplicates are allowed.
//
// Every method that changes the list returns a new Store backed by a fresh
// slice, so a Store held by a caller never changes underneath it.
type Store struct {
	movies []Movie
}

// NewStore creates a store holding a copy of the given records.
func NewStore(records []Movie) Store {
	return Store{movies: append([]Movie(nil), records...)}
}

// Len returns the number of records.
func (s Store) Len() int {
	return len(s.movies)
}

// Movies returns a copy of the records in display order.
func (s Store) Movies() []Movie {
	return append([]Movie(nil), s.movies...)
}

// At returns the record at position i.
func (s Store) At(i int) (Movie, error) {
	if err := s.checkIndex(i); err != nil {
		return Movie{}, err
	}
	return s.movies[i], nil
}

// IndexOf returns the position of the record with the given ID, or -1.
func (s Store) IndexOf(id string) int {
	for i, m := range s.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Append adds a record at the end.
func (s Store) Append(m Movie) Store {
	next := make([]Movie, len(s.movies), len(s.movies)+1)
	copy(next, s.movies)
	return Store{movies: append(next, m)}
}

// ReplaceAt overwrites the record at position i.
func (s Store) ReplaceAt(i int, m Movie) (Store, error) {
	if err := s.checkIndex(i); err != nil {
		return s, err
	}
	next := s.Movies()
	next[i] = m
	return Store{movies: next}, nil
}

// RemoveAt drops the record at position i. Later records shift down by one.
func (s Store) RemoveAt(i int) (Store, error) {
	if err := s.checkIndex(i); err != nil {
		return s, err
	}
	next := make([]Movie, 0, len(s.movies)-1)
	for j, m := range s.movies {
		if j != i {
			next = append(next, m)
		}
	}
	return Store{movies: next}, nil
}

func (s Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.movies) {
		return fmt.Errorf("%w: %d (have %d records)", ErrIndexOutOfRange, i, len(s.movies))
	}
	return nil
}
