package flip

import "testing"

func TestNewStartsOnFirst(t *testing.T) {
	f := New("a", "b")
	if got := *f.Get(); got != "a" {
		t.Errorf("Get() after New = %q, want %q", got, "a")
	}
}

func TestFlipToggles(t *testing.T) {
	f := New(1, 2)

	f.Flip()
	if got := *f.Get(); got != 2 {
		t.Errorf("Get() after one Flip = %d, want 2", got)
	}

	f.Flip()
	if got := *f.Get(); got != 1 {
		t.Errorf("Get() after two Flips = %d, want 1", got)
	}
}

func TestGetReturnsStablePointer(t *testing.T) {
	type pipeline struct{ program uint32 }

	f := New(pipeline{1}, pipeline{2})
	p := f.Get()
	if p.program != 1 {
		t.Errorf("active program = %d, want 1", p.program)
	}

	// Mutation through the pointer must stick across toggles.
	p.program = 7
	f.Flip()
	f.Flip()
	if got := f.Get().program; got != 7 {
		t.Errorf("active program after mutation = %d, want 7", got)
	}
}
