package grid_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/PanoramicPanda/gridkit/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_RaggedIsMalformed checks the error taxonomy: ragged rows are malformed input.
func TestNew_RaggedIsMalformed(t *testing.T) {
	_, err := grid.New([][]rune{[]rune("ab"), []rune("c")})
	if !errors.Is(err, grid.ErrMalformedInput) {
		t.Fatalf("error = %v; want ErrMalformedInput", err)
	}
}

// TestNew_DeepCopy ensures mutating the source rows does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	g, err := grid.New(rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	rows[0][0] = 99
	if v, _ := g.At(grid.Coordinate{}); v != 1 {
		t.Errorf("At(0,0) = %d after source mutation; want 1", v)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if h, w := g.Dimensions(); h != 2 || w != 3 {
		t.Fatalf("Dimensions() = (%d,%d); want (2,3)", h, w)
	}

	valid := []grid.Coordinate{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	invalid := []grid.Coordinate{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// At / Set / Get
//----------------------------------------------------------------------------//

// TestAtSet_OutOfBounds verifies At and Set fail with ErrOutOfBounds off-grid.
func TestAtSet_OutOfBounds(t *testing.T) {
	g, _ := grid.Filled(2, 2, '.')
	off := grid.Coordinate{Row: 2, Col: 0}

	if _, err := g.At(off); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("At(%v) error = %v; want ErrOutOfBounds", off, err)
	}
	if err := g.Set(off, '#'); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("Set(%v) error = %v; want ErrOutOfBounds", off, err)
	}
	if _, ok := g.Get(off); ok {
		t.Errorf("Get(%v) ok = true; want false", off)
	}
}

// TestSet_InPlace checks Set mutates exactly one cell and Clone is independent.
func TestSet_InPlace(t *testing.T) {
	g, _ := grid.Filled(2, 3, '.')
	snapshot := g.Clone()
	c := grid.Coordinate{Row: 1, Col: 2}
	if err := g.Set(c, '#'); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if v, _ := g.At(c); v != '#' {
		t.Errorf("At(%v) = %q; want '#'", c, v)
	}
	if v, _ := snapshot.At(c); v != '.' {
		t.Errorf("clone At(%v) = %q; want '.'", c, v)
	}
	if got := grid.Render(g); got != "...\n..#" {
		t.Errorf("Render = %q", got)
	}
}

// TestIndexRoundTrip checks Index and Coordinate are inverses.
func TestIndexRoundTrip(t *testing.T) {
	g, _ := grid.Filled(3, 4, 0)
	for c := range g.Coordinates() {
		if back := g.Coordinate(g.Index(c)); back != c {
			t.Errorf("Coordinate(Index(%v)) = %v", c, back)
		}
	}
}

// TestFind_RowMajor checks Find returns the first match in row-major order.
func TestFind_RowMajor(t *testing.T) {
	g, err := grid.ParseString("..x\nx..")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	c, ok := g.Find('x')
	if !ok || c != (grid.Coordinate{Row: 0, Col: 2}) {
		t.Errorf("Find('x') = %v,%v; want [0,2],true", c, ok)
	}
	if _, ok := g.Find('q'); ok {
		t.Error("Find('q') ok = true; want false")
	}
}

//----------------------------------------------------------------------------//
// Parsing
//----------------------------------------------------------------------------//

// TestParse_TrimAndSkip verifies whitespace trimming and blank-line skipping.
func TestParse_TrimAndSkip(t *testing.T) {
	g, err := grid.Parse([]string{"", "   ab.  ", "\t", "c#d", ""})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, want := grid.Render(g), "ab.\nc#d"; got != want {
		t.Errorf("Render = %q; want %q", got, want)
	}
}

// TestParseDigits covers digits, impassable cells and rejected glyphs.
func TestParseDigits(t *testing.T) {
	g, err := grid.ParseDigits([]string{"0.9", "123"})
	if err != nil {
		t.Fatalf("ParseDigits error: %v", err)
	}
	want := [][]int{{0, grid.Impassable, 9}, {1, 2, 3}}
	rows := g.Rows()
	for r := range want {
		if !slices.Equal(rows[r], want[r]) {
			t.Errorf("row %d = %v; want %v", r, rows[r], want[r])
		}
	}

	if _, err := grid.ParseDigits([]string{"01x"}); !errors.Is(err, grid.ErrMalformedInput) {
		t.Errorf("ParseDigits(01x) error = %v; want ErrMalformedInput", err)
	}
	if _, err := grid.ParseDigits([]string{"012", "3"}); !errors.Is(err, grid.ErrNonRectangular) {
		t.Errorf("ParseDigits ragged error = %v; want ErrNonRectangular", err)
	}
}
