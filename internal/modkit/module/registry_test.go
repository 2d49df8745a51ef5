package module

import (
	"sync"
	"testing"

	kit "worthit/internal/platform/testkit"
)

type evaluator interface{ Evaluate(a, m float64, r int) bool }

type fakeWorth struct{}

func (fakeWorth) Evaluate(a, m float64, r int) bool { return a <= m*float64(r) }

func TestRegistry_RegisterLookupReset(t *testing.T) {
	var r Registry
	if _, ok := r.Lookup("worth"); ok {
		t.Fatal("zero registry should be empty")
	}

	r.Register("worth", "first")
	r.Register("worth", "second")
	if v, ok := r.Lookup("worth"); !ok || v != "second" {
		t.Fatalf("Lookup = %v %v, want the latest registration", v, ok)
	}

	r.Reset()
	if _, ok := r.Lookup("worth"); ok {
		t.Fatal("Reset should forget registrations")
	}
}

func TestPortsAs(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register("worth", fakeWorth{})

	ev, ok := PortsAs[evaluator]("worth")
	if !ok || !ev.Evaluate(60, 5, 50) {
		t.Fatalf("PortsAs[evaluator] = %v %v", ev, ok)
	}
	if _, ok := PortsAs[int]("worth"); ok {
		t.Fatal("wrong type must not match")
	}
	if got, ok := PortsAs[evaluator]("meta"); ok || got != nil {
		t.Fatalf("missing name = %v %v, want zero and false", got, ok)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	var (
		r  Registry
		wg sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Register("worth", i)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("worth")
		}()
	}
	wg.Wait()
	if _, ok := r.Lookup("worth"); !ok {
		t.Fatal("expected a registration after concurrent writes")
	}
}
