package ui

import (
	"errors"
	"fmt"
	"strconv"
)

// Color represents a color that can be applied as a foreground or a
// background. Colors are comparable; two colors are equal if and only if
// they denote the same palette entry or the same RGB triplet.
type Color interface {
	fgSGR() string
	bgSGR() string
	String() string
}

// Builtin ANSI colors.
var (
	Black  Color = ansiColor(0)
	Red    Color = ansiColor(1)
	Green  Color = ansiColor(2)
	Yellow Color = ansiColor(3)
	Blue   Color = ansiColor(4)
	Purple Color = ansiColor(5)
	Cyan   Color = ansiColor(6)
	White  Color = ansiColor(7)
)

// TrueColor returns a 24-bit color from RGB channel values.
func TrueColor(r, g, b uint8) Color { return trueColor{r, g, b} }

type ansiColor uint8

var colorNames = []string{
	"black", "red", "green", "yellow", "blue", "purple", "cyan", "white",
}

func (c ansiColor) fgSGR() string  { return strconv.Itoa(30 + int(c)) }
func (c ansiColor) bgSGR() string  { return strconv.Itoa(40 + int(c)) }
func (c ansiColor) String() string { return colorNames[c] }

type trueColor struct{ R, G, B uint8 }

func (c trueColor) fgSGR() string { return "38;2;" + c.rgbSGR() }
func (c trueColor) bgSGR() string { return "48;2;" + c.rgbSGR() }

func (c trueColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c trueColor) rgbSGR() string {
	return fmt.Sprintf("%d;%d;%d", c.R, c.G, c.B)
}

// ErrColorTooShort is returned by DecodeHexColor when the input runs out
// before all three channels have been decoded.
var ErrColorTooShort = errors.New("color string too short")

// InvalidColorCharError is returned by DecodeHexColor when the input
// contains a byte that is not a lowercase hexadecimal digit.
type InvalidColorCharError struct{ Char byte }

func (e InvalidColorCharError) Error() string {
	return fmt.Sprintf("invalid character %d", e.Char)
}

// DecodeHexColor decodes a color written as three consecutive 2-digit
// hexadecimal groups, red first, into a true color. Only digits and
// lowercase a-f are accepted; uppercase digits fail with
// InvalidColorCharError. Bytes after the sixth are ignored.
func DecodeHexColor(s string) (Color, error) {
	var rgb [3]uint8
	for i := range rgb {
		v, err := decodeHexByte(s, 2*i)
		if err != nil {
			return nil, err
		}
		rgb[i] = v
	}
	return trueColor{rgb[0], rgb[1], rgb[2]}, nil
}

func decodeHexByte(s string, i int) (uint8, error) {
	if i+2 > len(s) {
		return 0, ErrColorTooShort
	}
	hi, err := hexNibble(s[i])
	if err != nil {
		return 0, err
	}
	lo, err := hexNibble(s[i+1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func hexNibble(b byte) (uint8, error) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', nil
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, nil
	}
	return 0, InvalidColorCharError{b}
}
