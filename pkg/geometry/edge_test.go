package geometry

import "testing"

func TestFromPoints(t *testing.T) {
	tests := []struct {
		name    string
		x1, y1  float64
		x2, y2  float64
		want    Orientation
		wantOK  bool
	}{
		{
			name: "horizontal",
			x1:   0, y1: 10, x2: 200, y2: 10,
			want: Horizontal, wantOK: true,
		},
		{
			name: "vertical",
			x1:   50, y1: 0, x2: 50, y2: 150,
			want: Vertical, wantOK: true,
		},
		{
			name: "reversed direction still horizontal",
			x1:   200, y1: 10, x2: 0, y2: 10,
			want: Horizontal, wantOK: true,
		},
		{
			name: "zero length dropped",
			x1:   5, y1: 5, x2: 5, y2: 5,
			wantOK: false,
		},
		{
			name: "diagonal dropped",
			x1:   0, y1: 0, x2: 100, y2: 100,
			wantOK: false,
		},
		{
			name: "float noise within tolerance",
			x1:   0, y1: 10.005, x2: 80, y2: 10,
			want: Horizontal, wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := FromPoints(tt.x1, tt.y1, tt.x2, tt.y2, "test")
			if ok != tt.wantOK {
				t.Fatalf("FromPoints() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && e.Orientation != tt.want {
				t.Errorf("Orientation = %v, want %v", e.Orientation, tt.want)
			}
		})
	}
}

func TestEdgeKeyDirectionIndependent(t *testing.T) {
	a := Edge{X1: 0, Y1: 0, X2: 100, Y2: 0, Orientation: Horizontal}
	b := Edge{X1: 100, Y1: 0, X2: 0, Y2: 0, Orientation: Horizontal}

	if a.Key() != b.Key() {
		t.Errorf("keys differ for reversed edges: %v vs %v", a.Key(), b.Key())
	}
}

func TestEdgeKeyRounding(t *testing.T) {
	a := Edge{X1: 0.001, Y1: 0, X2: 99.999, Y2: 0, Orientation: Horizontal}
	b := Edge{X1: 0, Y1: 0.004, X2: 100.001, Y2: 0, Orientation: Horizontal}

	if a.Key() != b.Key() {
		t.Errorf("keys differ despite sub-centiunit noise: %v vs %v", a.Key(), b.Key())
	}
}

func TestEdgeSpan(t *testing.T) {
	e := Edge{X1: 120, Y1: 40, X2: 20, Y2: 40, Orientation: Horizontal}
	start, end := e.Span()
	if start != 20 || end != 120 {
		t.Errorf("Span() = (%v, %v), want (20, 120)", start, end)
	}

	v := Edge{X1: 10, Y1: 90, X2: 10, Y2: 30, Orientation: Vertical}
	start, end = v.Span()
	if start != 30 || end != 90 {
		t.Errorf("Span() = (%v, %v), want (30, 90)", start, end)
	}
}

func TestEdgeLength(t *testing.T) {
	e := Edge{X1: 0, Y1: 0, X2: 200, Y2: 0, Orientation: Horizontal}
	if got := e.Length(); got != 200 {
		t.Errorf("Length() = %v, want 200", got)
	}
}
