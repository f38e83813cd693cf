package outcome

import "testing"

func TestPresent(t *testing.T) {
	t.Parallel()
	m := Present(5)

	if !m.IsPresent() || m.IsAbsent() {
		t.Fatalf("expected present variant, got: present=%v", m.IsPresent())
	}
	if m.Value() != 5 {
		t.Fatalf("expected value 5, got %v", m.Value())
	}
	if m.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be stamped")
	}
}

func TestAbsent(t *testing.T) {
	t.Parallel()
	m := Absent[int]()

	if m.IsPresent() || !m.IsAbsent() {
		t.Fatalf("expected absent variant, got: present=%v", m.IsPresent())
	}
	if m.Value() != 0 {
		t.Fatalf("expected zero payload, got %v", m.Value())
	}
}

func TestMaybeZeroValueIsAbsent(t *testing.T) {
	t.Parallel()
	var m Maybe[int]
	if !m.IsAbsent() {
		t.Fatalf("zero value must be absent")
	}
}

func TestMaybeGet(t *testing.T) {
	t.Parallel()
	if v, ok := Present("hi").Get(); !ok || v != "hi" {
		t.Fatalf("expected ('hi', true), got (%v, %v)", v, ok)
	}
	if v, ok := Absent[string]().Get(); ok || v != "" {
		t.Fatalf("expected ('', false), got (%v, %v)", v, ok)
	}
}

func TestMaybeUnwrapOr(t *testing.T) {
	t.Parallel()
	if got := Present(5).UnwrapOr(-1); got != 5 {
		t.Fatalf("expected 5 regardless of default, got %d", got)
	}
	if got := Absent[int]().UnwrapOr(-1); got != -1 {
		t.Fatalf("expected exactly the default -1, got %d", got)
	}
}

func TestMaybeString(t *testing.T) {
	t.Parallel()
	if s := Present(5).String(); s != "5" {
		t.Fatalf("expected bare payload rendering, got %q", s)
	}
	if s := Absent[int]().String(); s != "<absent>" {
		t.Fatalf("expected absent marker, got %q", s)
	}
}

func TestMapMaybe(t *testing.T) {
	t.Parallel()
	m := MapMaybe(Present(5), func(v int) int { return v * 2 })
	if !m.IsPresent() || m.Value() != 10 {
		t.Fatalf("expected Present(10), got %v", m)
	}

	in := Absent[int]()
	out := MapMaybe(in, func(v int) int { return v * 2 })
	if !out.IsAbsent() {
		t.Fatalf("expected absent to pass through, got %v", out)
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected identity to carry through the absent branch")
	}
}
