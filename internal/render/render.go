// Package render draws a maze and its search state onto a terminal.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/mazewalk/maze"
)

// Mode selects how cells are drawn.
type Mode int

const (
	// Plain draws one ASCII glyph per cell.
	Plain Mode = iota
	// Color draws two-column background blocks.
	Color
)

// Cell kinds in precedence order.
type kind int

const (
	open kind = iota
	visited
	active
	onPath
	entrance
	exit
	wall
)

var glyphs = map[kind]byte{
	open:     '.',
	visited:  'x',
	active:   'o',
	onPath:   '*',
	entrance: 'S',
	exit:     'E',
	wall:     '#',
}

var palette = map[kind]string{
	open:     "#ffffff",
	visited:  "#ff0000",
	active:   "#ffff00",
	onPath:   "#00ff00",
	entrance: "#ffff00",
	exit:     "#0000ff",
	wall:     "#000000",
}

// Renderer writes frames to an io.Writer.
type Renderer struct {
	out    *termenv.Output
	mode   Mode
	frames int
}

// New returns a Renderer for w. In Color mode the profile is detected from w;
// use NewWithProfile to force one.
func New(w io.Writer, mode Mode) *Renderer {
	return &Renderer{out: termenv.NewOutput(w), mode: mode}
}

// NewWithProfile is New with an explicit color profile.
func NewWithProfile(w io.Writer, mode Mode, p termenv.Profile) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(p)), mode: mode}
}

// DetectMode picks Color when f is a terminal that supports colors.
func DetectMode(f *os.File) Mode {
	if !IsTerminal(f) {
		return Plain
	}
	if termenv.NewOutput(f).Profile == termenv.Ascii {
		return Plain
	}
	return Color
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a maze with the given column count fits the width of f.
// Non-terminals always fit.
func Fits(f *os.File, mode Mode, columns int) bool {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true
	}
	if mode == Color {
		columns *= 2
	}
	return columns <= width
}

// Frame renders m with path highlighted. path may be nil.
func (r *Renderer) Frame(m *maze.Maze, path []int) string {
	marked := make(map[int]struct{}, len(path))
	for _, id := range path {
		marked[id] = struct{}{}
	}

	var sb strings.Builder
	cols := m.Columns()
	for id := 0; id < m.Len(); id++ {
		n, _ := m.Node(id)
		_, inPath := marked[id]
		k := classify(n, inPath)
		if r.mode == Color {
			sb.WriteString(r.out.String("  ").Background(r.out.Color(palette[k])).String())
		} else {
			sb.WriteByte(glyphs[k])
		}
		if (id+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Draw writes a frame. From the second frame on, Color mode redraws in place.
func (r *Renderer) Draw(m *maze.Maze, path []int) error {
	if r.mode == Color {
		if r.frames == 0 {
			r.out.ClearScreen()
		} else {
			r.out.MoveCursor(1, 1)
		}
	}
	r.frames++
	_, err := io.WriteString(r.out, r.Frame(m, path))
	return err
}

func classify(n *maze.Node, inPath bool) kind {
	switch {
	case n.IsWall():
		return wall
	case n.IsExit():
		return exit
	case n.IsEntrance():
		return entrance
	case inPath:
		return onPath
	case n.IsActive():
		return active
	case n.IsVisited():
		return visited
	default:
		return open
	}
}
