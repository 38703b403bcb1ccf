package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block
// characters. It scales from logical coordinates to actual terminal pixels and
// implements Renderer.
type Canvas struct {
	termWidth      int           // Actual terminal columns
	termHeight     int           // Actual terminal rows
	subPixelHeight int           // termHeight * 2
	pixels         []color.NRGBA // Flat slice: [y * termWidth + x]; A == 0 means empty

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.NRGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
// Translucent colors are darkened towards black, the terminal background.
func (c *Canvas) setPixel(x, y int, clr color.NRGBA) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight || clr.A == 0 {
		return
	}
	if clr.A < 255 {
		a := uint16(clr.A)
		clr = color.NRGBA{
			R: uint8(uint16(clr.R) * a / 255),
			G: uint8(uint16(clr.G) * a / 255),
			B: uint8(uint16(clr.B) * a / 255),
			A: 255,
		}
	}
	c.pixels[y*c.termWidth+x] = clr
}

// At returns the pixel at terminal sub-pixel coordinates. Empty pixels have A == 0.
func (c *Canvas) At(x, y int) color.NRGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.NRGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// Line draws a line using Bresenham's algorithm. Terminal lines are always one
// sub-pixel wide.
func (c *Canvas) Line(p1, p2 Point, clr color.NRGBA, _ float64) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, clr)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed polygon outline, filling it first when width <= 0.
func (c *Canvas) Polygon(points []Point, clr color.NRGBA, width float64) {
	if len(points) < 3 {
		return
	}

	if width <= 0 {
		c.fillPolygon(points, clr)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n], clr, width)
	}
}

// Circle fills a disk. Circles smaller than a sub-pixel collapse to one pixel.
func (c *Canvas) Circle(center Point, radius float64, clr color.NRGBA) {
	cx := center.X * c.scaleX
	cy := center.Y * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx < 1 && ry < 1 {
		c.setPixel(int(math.Round(cx)), int(math.Round(cy)), clr)
		return
	}

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			if nx*nx+ny*ny <= 1 {
				c.setPixel(x, y, clr)
			}
		}
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, clr color.NRGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, clr)
			}
		}
	}
}

// Render outputs the canvas to the writer using colored half-block characters.
// The top sub-pixel is the foreground of '▀' and the bottom one its background.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top.A != 0 && bottom.A != 0:
				c.moveTo(col, row)
				if top == bottom {
					c.fg(top)
					c.renderBuf.WriteRune(BlockFull)
				} else {
					c.fg(top)
					c.bg(bottom)
					c.renderBuf.WriteRune(BlockUpperHalf)
					c.renderBuf.WriteString("\033[49m")
				}
			case top.A != 0:
				c.moveTo(col, row)
				c.fg(top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case bottom.A != 0:
				c.moveTo(col, row)
				c.fg(bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
		}
	}
	c.renderBuf.WriteString("\033[0m")

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveTo(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) fg(clr color.NRGBA) {
	c.sgr("38", clr)
}

func (c *Canvas) bg(clr color.NRGBA) {
	c.sgr("48", clr)
}

// sgr appends a 24-bit color escape: ESC[<kind>;2;r;g;bm.
func (c *Canvas) sgr(kind string, clr color.NRGBA) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.WriteString(kind)
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.B), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	pos := func(row, col int) {
		buf.WriteString("\033[")
		buf.WriteString(strconv.Itoa(row))
		buf.WriteByte(';')
		buf.WriteString(strconv.Itoa(col))
		buf.WriteByte('H')
	}

	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			pos(top, left)
			buf.WriteString("┌" + bar + "┐")
			pos(bottom, left)
			buf.WriteString("└" + bar + "┘")
		} else {
			pos(top, c.offsetCol+1)
			buf.WriteString(bar)
			pos(bottom, c.offsetCol+1)
			buf.WriteString(bar)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			pos(row, left)
			buf.WriteString("│")
			pos(row, right)
			buf.WriteString("│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ Renderer = (*Canvas)(nil)
