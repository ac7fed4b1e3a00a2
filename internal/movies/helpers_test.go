package movies

import (
	"fmt"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestState(t *testing.T, opts ...Option) State {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}
	return New(Seed(), append(base, opts...)...)
}

func mustApply(t *testing.T, s State, actions ...Action) State {
	t.Helper()
	for _, a := range actions {
		var err error
		s, err = s.Apply(a)
		if err != nil {
			t.Fatalf("Apply(%s) error = %v", a.Name(), err)
		}
	}
	return s
}

func titles(s State) []string {
	out := make([]string, 0, s.Len())
	for _, m := range s.Movies() {
		out = append(out, m.Title)
	}
	return out
}
