package render

import "strings"

// BoxStyle is the character set DrawBox uses for a box's border.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

var (
	asciiStyle = BoxStyle{
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
	}
	unicodeStyle = BoxStyle{
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	}
)

// canvas is a character buffer a layout tree is drawn onto before being
// flushed to the terminal.
type canvas struct {
	width  int
	height int
	buffer [][]rune
	style  BoxStyle
}

func newCanvas(width, height int, useUnicode bool) *canvas {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}
	style := asciiStyle
	if useUnicode {
		style = unicodeStyle
	}
	return &canvas{width: width, height: height, buffer: buffer, style: style}
}

func (c *canvas) setCell(x, y int, r rune) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.buffer[y][x] = r
	}
}

// drawBox outlines a leaf's rect; boxes smaller than 2x2 cells are skipped
// rather than drawn corrupted.
func (c *canvas) drawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	c.setCell(x, y, c.style.TopLeft)
	c.setCell(x+width-1, y, c.style.TopRight)
	c.setCell(x, y+height-1, c.style.BottomLeft)
	c.setCell(x+width-1, y+height-1, c.style.BottomRight)
	for i := 1; i < width-1; i++ {
		c.setCell(x+i, y, c.style.Horizontal)
		c.setCell(x+i, y+height-1, c.style.Horizontal)
	}
	for i := 1; i < height-1; i++ {
		c.setCell(x, y+i, c.style.Vertical)
		c.setCell(x+width-1, y+i, c.style.Vertical)
	}
}

func (c *canvas) drawText(x, y int, text string) {
	for i, r := range text {
		c.setCell(x+i, y, r)
	}
}

// drawTextCentered centers text within width, truncating text that doesn't fit.
func (c *canvas) drawTextCentered(x, y, width int, text string) {
	if len(text) >= width {
		if width > 0 {
			c.drawText(x, y, text[:width])
		}
		return
	}
	padding := (width - len(text)) / 2
	c.drawText(x+padding, y, text)
}

func (c *canvas) String() string {
	var sb strings.Builder
	for i, row := range c.buffer {
		for _, cell := range row {
			sb.WriteRune(cell)
		}
		if i < len(c.buffer)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
