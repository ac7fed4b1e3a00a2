package movies

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreAppend(t *testing.T) {
	s := NewStore([]Movie{{ID: "a", Title: "A"}})
	next := s.Append(Movie{ID: "b", Title: "B"})

	if s.Len() != 1 {
		t.Errorf("original store changed: Len() = %d, want 1", s.Len())
	}
	want := []Movie{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	if diff := cmp.Diff(want, next.Movies()); diff != "" {
		t.Errorf("Append() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreReplaceAt(t *testing.T) {
	s := NewStore([]Movie{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})

	next, err := s.ReplaceAt(1, Movie{ID: "b", Title: "Bee"})
	if err != nil {
		t.Fatalf("ReplaceAt() error = %v", err)
	}
	if got := next.Movies()[1].Title; got != "Bee" {
		t.Errorf("ReplaceAt() title = %q, want %q", got, "Bee")
	}
	if got := s.Movies()[1].Title; got != "B" {
		t.Errorf("original store changed: title = %q, want %q", got, "B")
	}
}

func TestStoreRemoveAt(t *testing.T) {
	s := NewStore([]Movie{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}})

	next, err := s.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt() error = %v", err)
	}
	want := []Movie{{ID: "a"}, {ID: "c"}, {ID: "d"}}
	if diff := cmp.Diff(want, next.Movies()); diff != "" {
		t.Errorf("RemoveAt() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 4 {
		t.Errorf("original store changed: Len() = %d, want 4", s.Len())
	}
}

func TestStoreIndexErrors(t *testing.T) {
	s := NewStore([]Movie{{ID: "a"}})

	tests := []struct {
		name string
		call func() error
	}{
		{"At negative", func() error { _, err := s.At(-1); return err }},
		{"At past end", func() error { _, err := s.At(1); return err }},
		{"ReplaceAt past end", func() error { _, err := s.ReplaceAt(5, Movie{}); return err }},
		{"RemoveAt negative", func() error { _, err := s.RemoveAt(-3); return err }},
		{"RemoveAt empty", func() error { _, err := NewStore(nil).RemoveAt(0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("error = %v, want ErrIndexOutOfRange", err)
			}
		})
	}
}

func TestStoreIndexOf(t *testing.T) {
	s := NewStore([]Movie{{ID: "a"}, {ID: "b"}})

	if got := s.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := s.IndexOf("zzz"); got != -1 {
		t.Errorf("IndexOf(zzz) = %d, want -1", got)
	}
}

func TestStoreMoviesIsCopy(t *testing.T) {
	s := NewStore([]Movie{{ID: "a", Title: "A"}})
	got := s.Movies()
	got[0].Title = "changed"

	if s.Movies()[0].Title != "A" {
		t.Error("Movies() returned a slice aliasing the store")
	}
}

func TestSeed(t *testing.T) {
	want := []string{
		"Hero (2012) Rating: 201",
		"Hello (1956) Rating: 109",
		"Good Bye (2021) Rating: 902",
		"Hello Sir! (1987) Rating: 89",
		"Mr Charles (2011) Rating: 321",
		"Combat One (2023) Rating: 78",
	}

	seed := Seed()
	got := make([]string, len(seed))
	for i, m := range seed {
		got[i] = m.String()
		if m.ID != "" {
			t.Errorf("seed record %d has ID %q before entering a store", i, m.ID)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Seed() mismatch (-want +got):\n%s", diff)
	}

	seed[0].Title = "changed"
	if Seed()[0].Title != "Hero" {
		t.Error("Seed() must return a fresh slice")
	}
}
