package coord

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2}, Position{1, 2}, 0},
		{"earlier line", Position{0, 9}, Position{1, 0}, -1},
		{"later line", Position{2, 0}, Position{1, 9}, 1},
		{"earlier offset", Position{1, 1}, Position{1, 2}, -1},
		{"later offset", Position{1, 3}, Position{1, 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPositionBeforeAfter(t *testing.T) {
	a := Position{Line: 0, Offset: 5}
	b := Position{Line: 1, Offset: 0}

	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if !b.After(a) {
		t.Error("expected b after a")
	}
	if a.After(a) || a.Before(a) {
		t.Error("position should be neither before nor after itself")
	}
}

func TestPositionIsZero(t *testing.T) {
	if !(Position{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if (Position{Offset: 1}).IsZero() {
		t.Error("(0:1) should not be zero")
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 3, Offset: 7}).String(); got != "(3:7)" {
		t.Errorf("String() = %q, want %q", got, "(3:7)")
	}
}

func TestNewRangeOrdersEndpoints(t *testing.T) {
	a := Position{Line: 2, Offset: 1}
	b := Position{Line: 0, Offset: 4}

	r := NewRange(a, b)
	if r.Start != b || r.End != a {
		t.Errorf("NewRange(%s, %s) = %s, want start %s", a, b, r, b)
	}
	if !r.IsValid() {
		t.Error("range from NewRange should be valid")
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(Position{0, 2}, Position{1, 3})

	tests := []struct {
		p    Position
		want bool
	}{
		{Position{0, 1}, false},
		{Position{0, 2}, true},
		{Position{0, 99}, true},
		{Position{1, 2}, true},
		{Position{1, 3}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s.Contains(%s) = %v, want %v", r, tt.p, got, tt.want)
		}
	}
}

func TestRangeShape(t *testing.T) {
	empty := NewRange(Position{1, 1}, Position{1, 1})
	if !empty.IsEmpty() {
		t.Error("expected empty range")
	}
	if !empty.IsSingleLine() {
		t.Error("expected single-line range")
	}

	multi := Range{Start: Position{0, 0}, End: Position{2, 0}}
	if multi.IsSingleLine() {
		t.Error("expected multi-line range")
	}

	invalid := Range{Start: Position{2, 0}, End: Position{0, 0}}
	if invalid.IsValid() {
		t.Error("expected invalid range")
	}
}
