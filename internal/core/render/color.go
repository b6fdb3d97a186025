package render

import "fmt"

// Color is an 8-bit RGB triple in screen space. Alpha is left to the
// backend; everything the game draws is opaque.
type Color struct {
	R uint8
	G uint8
	B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Default palette, matching the classic look: red/green toggle buttons,
// gray gates that light up white, dark wires that turn green when high.
var (
	ColorBackground = RGB(0, 0, 0)
	ColorButtonOff  = RGB(255, 0, 0)
	ColorButtonOn   = RGB(0, 255, 0)
	ColorGateOff    = RGB(128, 128, 128)
	ColorGateOn     = RGB(255, 255, 255)
	ColorLEDOff     = RGB(64, 64, 64)
	ColorLEDOn      = RGB(0, 255, 0)
	ColorWireOff    = RGB(64, 64, 64)
	ColorWireOn     = RGB(0, 255, 0)
	ColorText       = RGB(255, 255, 255)
	ColorMenuIdle   = RGB(70, 70, 90)
	ColorMenuHover  = RGB(100, 100, 130)
)
