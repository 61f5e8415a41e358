package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"simple position", Position{Line: 1, Column: 5}, "1:5"},
		{"larger numbers", Position{Line: 123, Column: 456}, "123:456"},
		{"zero position", Position{Line: 0, Column: 0}, "0:0"},
		{"with offset", Position{Line: 10, Column: 20, Offset: 100}, "10:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"valid position", Position{Line: 1, Column: 1}, true},
		{"valid with offset", Position{Line: 10, Column: 5, Offset: 50}, true},
		{"zero line invalid", Position{Line: 0, Column: 1}, false},
		{"negative line invalid", Position{Line: -1, Column: 1}, false},
		{"zero column but valid line", Position{Line: 1, Column: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.expected {
				t.Errorf("Position.IsValid() = %v, want %v (pos: %+v)", got, tt.expected, tt.pos)
			}
		})
	}
}

func TestSpanText(t *testing.T) {
	source := "int x = 42;"

	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{"identifier", Span{Start: 4, Length: 1}, "x"},
		{"keyword", Span{Start: 0, Length: 3}, "int"},
		{"zero length", Span{Start: 4, Length: 0}, ""},
		{"negative start", Span{Start: -1, Length: 2}, ""},
		{"past end of source", Span{Start: 100, Length: 2}, ""},
		{"overruns source", Span{Start: 8, Length: 100}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Text(source); got != tt.expected {
				t.Errorf("Span.Text(%q) = %q, want %q", source, got, tt.expected)
			}
		})
	}
}

func TestSpanEqual(t *testing.T) {
	source := "foo foo bar"
	first := Span{Start: 0, Length: 3}  // "foo"
	second := Span{Start: 4, Length: 3} // "foo"
	third := Span{Start: 8, Length: 3}  // "bar"

	if !first.Equal(second, source) {
		t.Error("two spans naming the same text should be Equal")
	}
	if first.Equal(third, source) {
		t.Error("spans naming different text should not be Equal")
	}
}
