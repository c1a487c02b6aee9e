package layout

import (
	"math"
	"sort"
	"strings"
)

// Grids finds ruled tables on the page. Rules that touch each other form one
// table; their distinct edges become the cell boundaries. Each table is
// returned top row first, with empty rows removed.
func Grids(page Page, opts Options) [][][]string {
	clusters := clusterRules(page.Rules, opts.RuleTolerance)

	type grid struct {
		top, left float64
		rows      [][]string
	}
	var grids []grid
	for _, rules := range clusters {
		var xs, ys []float64
		for _, r := range rules {
			xs = append(xs, r.X0, r.X1)
			ys = append(ys, r.Y0, r.Y1)
		}
		xs = snap(xs, opts.RuleTolerance)
		ys = snap(ys, opts.RuleTolerance)
		if len(xs) < 2 || len(ys) < 2 {
			continue
		}
		// Top of the page first.
		sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

		rows := fillGrid(page.Glyphs, xs, ys, opts)
		if len(rows) == 0 {
			continue
		}
		grids = append(grids, grid{top: ys[0], left: xs[0], rows: rows})
	}

	sort.SliceStable(grids, func(i, j int) bool {
		if math.Abs(grids[i].top-grids[j].top) > opts.RuleTolerance {
			return grids[i].top > grids[j].top
		}
		return grids[i].left < grids[j].left
	})

	out := make([][][]string, len(grids))
	for i, g := range grids {
		out[i] = g.rows
	}
	return out
}

func fillGrid(glyphs []Glyph, xs, ys []float64, opts Options) [][]string {
	nRows, nCols := len(ys)-1, len(xs)-1
	buckets := make([][]Glyph, nRows*nCols)

	for _, g := range glyphs {
		x := g.X + g.W/2
		y := g.Y + g.Size*0.25
		col := sort.SearchFloat64s(xs, x) - 1
		if x == xs[0] {
			col = 0
		}
		if col < 0 || col >= nCols {
			continue
		}
		row := -1
		for j := 0; j < nRows; j++ {
			if y <= ys[j] && y > ys[j+1] {
				row = j
				break
			}
		}
		if row < 0 {
			continue
		}
		buckets[row*nCols+col] = append(buckets[row*nCols+col], g)
	}

	var rows [][]string
	for r := 0; r < nRows; r++ {
		cells := make([]string, nCols)
		empty := true
		for c := 0; c < nCols; c++ {
			var parts []string
			for _, l := range Lines(buckets[r*nCols+c], opts) {
				parts = append(parts, l.Text())
			}
			cells[c] = strings.Join(parts, " ")
			if cells[c] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, cells)
		}
	}
	return rows
}

// clusterRules groups rules whose boxes touch within tol.
func clusterRules(rules []Rule, tol float64) [][]Rule {
	parent := make([]int, len(rules))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if touches(rules[i], rules[j], tol) {
				parent[find(i)] = find(j)
			}
		}
	}

	groups := make(map[int][]Rule)
	var order []int
	for i, r := range rules {
		root := find(i)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], r)
	}

	out := make([][]Rule, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}

func touches(a, b Rule, tol float64) bool {
	return a.X0 <= b.X1+tol && b.X0 <= a.X1+tol &&
		a.Y0 <= b.Y1+tol && b.Y0 <= a.Y1+tol
}

// snap sorts values and collapses those within tol of the previous kept value.
func snap(values []float64, tol float64) []float64 {
	sort.Float64s(values)
	var out []float64
	for _, v := range values {
		if len(out) > 0 && v-out[len(out)-1] <= tol {
			continue
		}
		out = append(out, v)
	}
	return out
}
