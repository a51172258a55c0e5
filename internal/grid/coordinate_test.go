package grid

import "testing"

func TestCoordinate_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want bool
	}{
		{"same cell", Coord(1, 2), Coord(1, 2), true},
		{"different row", Coord(1, 2), Coord(2, 2), false},
		{"different col", Coord(1, 2), Coord(1, 3), false},
		{"row header ignored", Coord(1, 2), RowHeaderCoord(1, 2), true},
		{"header vs data", HeaderCoord(2), Coordinate{Row: HeaderRow, Col: 2}, false},
		{"header cells", HeaderCoord(2), HeaderCoord(2), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: %v.Equal(%v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
		if tt.a.Equal(tt.b) != tt.b.Equal(tt.a) {
			t.Errorf("%s: equality must be symmetric", tt.name)
		}
	}
}

func TestCoordinate_Constructors(t *testing.T) {
	h := HeaderCoord(3)
	if h.Row != HeaderRow || !h.ColumnHeader {
		t.Errorf("HeaderCoord(3) = %+v, want header row with ColumnHeader set", h)
	}
	r := RowHeaderCoord(2, 0)
	if !r.RowHeader || r.ColumnHeader {
		t.Errorf("RowHeaderCoord(2,0) = %+v, want RowHeader set only", r)
	}
}
