package maze_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/mazewalk/maze"
)

func ids(nodes []*maze.Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID())
	}
	return out
}

// TestNeighbors_Order checks the south, north, east, west order and the
// boundary rules on a 3×3 grid.
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNeighbors_Order(t *testing.T) {
	m, _ := maze.New(3, 3)
	cases := []struct {
		id   int
		want []int
	}{
		{0, []int{3, 1}},
		{2, []int{5, 1}},
		{3, []int{6, 0, 4}},
		{4, []int{7, 1, 5, 3}},
		{5, []int{8, 2, 4}},
		{6, []int{3, 7}},
		{8, []int{5, 7}},
	}
	for _, tc := range cases {
		if got := ids(m.Neighbors(tc.id)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Neighbors(%d) = %v; want %v", tc.id, got, tc.want)
		}
	}
}

// TestNeighbors_NorthOfFirstRow verifies that id == columns has a north neighbor
// (id 0), which the row boundary must not drop.
func TestNeighbors_NorthOfFirstRow(t *testing.T) {
	m, _ := maze.New(2, 3)
	if got := ids(m.Neighbors(3)); !reflect.DeepEqual(got, []int{0, 4}) {
		t.Errorf("Neighbors(3) = %v; want [0 4]", got)
	}
}

// TestNeighbors_SingleRow covers the 1×5 corridor.
func TestNeighbors_SingleRow(t *testing.T) {
	m, _ := maze.New(1, 5)
	want := map[int][]int{0: {1}, 1: {2, 0}, 4: {3}}
	for id, w := range want {
		if got := ids(m.Neighbors(id)); !reflect.DeepEqual(got, w) {
			t.Errorf("Neighbors(%d) = %v; want %v", id, got, w)
		}
	}
}

// TestNeighbors_SingleColumn covers a 4×1 corridor, where east/west never exist.
func TestNeighbors_SingleColumn(t *testing.T) {
	m, _ := maze.New(4, 1)
	if got := ids(m.Neighbors(1)); !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("Neighbors(1) = %v; want [2 0]", got)
	}
	if got := ids(m.Neighbors(3)); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Neighbors(3) = %v; want [2]", got)
	}
}

// TestNeighbors_FiltersWallsAndVisited ensures closed cells are skipped.
func TestNeighbors_FiltersWallsAndVisited(t *testing.T) {
	m, _ := maze.New(3, 3)
	_ = m.SetWall(7)
	n1, _ := m.Node(1)
	n1.SetVisited(true)
	if got := ids(m.Neighbors(4)); !reflect.DeepEqual(got, []int{5, 3}) {
		t.Errorf("Neighbors(4) = %v; want [5 3]", got)
	}
	if got := m.Neighbors(9); got != nil {
		t.Errorf("Neighbors(9) = %v; want nil", got)
	}
}
