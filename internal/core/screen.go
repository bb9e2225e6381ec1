package core

import "strings"

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is the character buffer a skin draws a frame into. Cells are
// stored row-major in one slice. The platform turns it into terminal
// output, so games never see escape codes.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the buffer.
// Every frame is redrawn from a snapshot, so old content is not kept.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	s.width, s.height = width, height
	if n := width * height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set places an uncolored rune. Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune. Out-of-bounds writes are dropped.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawText writes uncolored text from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text from (x, y), one rune per cell, clipped at
// the screen edges.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawRect fills r with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawHLine(r.X, y, r.W, fill, c)
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─', c)
	s.DrawHLine(r.X+1, bottom, r.W-2, '─', c)
	for y := r.Y + 1; y < bottom; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(right, y, '│', c)
	}

	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(right, r.Y, '┐', c)
	s.SetColored(r.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// DrawHLine draws length copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// Row returns row y as plain text, all spaces when out of bounds.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the frame as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
