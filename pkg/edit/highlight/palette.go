// Package highlight maps classified spans of shell source to the styles
// the renderer applies to them. The flattener hands the editor a sequence
// of shaped spans; a Palette turns each of them into one or more styled
// spans, which the renderer then paints.
package highlight

import (
	"fmt"

	"src.nash.sh/pkg/parse"
	"src.nash.sh/pkg/ui"
)

// Palette resolves one classified span into the styled spans to render.
//
// The result is never empty, and the output spans always equal the input
// spans: every shape resolves to exactly one styled span covering the span
// it was paired with, except parse.Size, which resolves to two, its number
// sub-span followed by its unit sub-span.
//
// Palettes are read-only after construction and safe for concurrent use.
type Palette interface {
	StylesForShape(shape parse.Spanned[parse.Shape]) []parse.Spanned[ui.Style]
}

// DefaultPalette is a Palette with a fixed built-in color mapping. The
// zero value is ready to use.
type DefaultPalette struct{}

// StylesForShape implements Palette.
func (DefaultPalette) StylesForShape(shape parse.Spanned[parse.Shape]) []parse.Spanned[ui.Style] {
	switch sh := shape.Item.(type) {
	case parse.BareMember:
		return one(shape.Span, bold(ui.Yellow))
	case parse.CloseDelimiter:
		return one(shape.Span, normal(ui.White))
	case parse.Comment:
		return one(shape.Span, bold(ui.Green))
	case parse.Decimal:
		return one(shape.Span, bold(ui.Purple))
	case parse.Dot:
		return one(shape.Span, normal(ui.White))
	case parse.DotDot:
		return one(shape.Span, bold(ui.Yellow))
	case parse.DotDotLeftAngleBracket:
		return one(shape.Span, bold(ui.Yellow))
	case parse.ExternalCommand:
		return one(shape.Span, normal(ui.Cyan))
	case parse.ExternalWord:
		return one(shape.Span, bold(ui.Green))
	case parse.Flag:
		return one(shape.Span, bold(ui.Blue))
	case parse.Garbage:
		return one(shape.Span, ui.Style{Foreground: ui.White, Background: ui.Red})
	case parse.GlobPattern:
		return one(shape.Span, bold(ui.Cyan))
	case parse.Identifier:
		return one(shape.Span, normal(ui.Purple))
	case parse.Int:
		return one(shape.Span, bold(ui.Purple))
	case parse.InternalCommand:
		return one(shape.Span, bold(ui.Cyan))
	case parse.ItVariable:
		return one(shape.Span, bold(ui.Purple))
	case parse.Keyword:
		return one(shape.Span, bold(ui.Purple))
	case parse.OpenDelimiter:
		return one(shape.Span, normal(ui.White))
	case parse.Operator:
		return one(shape.Span, normal(ui.Yellow))
	case parse.Path:
		return one(shape.Span, normal(ui.Cyan))
	case parse.Pipe:
		return one(shape.Span, bold(ui.Purple))
	case parse.Separator:
		return one(shape.Span, normal(ui.White))
	case parse.ShorthandFlag:
		return one(shape.Span, bold(ui.Blue))
	case parse.Size:
		return []parse.Spanned[ui.Style]{
			{Span: sh.Number, Item: bold(ui.Purple)},
			{Span: sh.Unit, Item: bold(ui.Cyan)},
		}
	case parse.String:
		return one(shape.Span, normal(ui.Green))
	case parse.StringMember:
		return one(shape.Span, bold(ui.Yellow))
	case parse.Type:
		return one(shape.Span, bold(ui.Blue))
	case parse.Variable:
		return one(shape.Span, normal(ui.Purple))
	case parse.Whitespace:
		return one(shape.Span, normal(ui.White))
	case parse.Word:
		return one(shape.Span, normal(ui.Green))
	}
	panic(fmt.Sprintf("unhandled shape %T", shape.Item))
}

func one(span parse.Span, style ui.Style) []parse.Spanned[ui.Style] {
	return []parse.Spanned[ui.Style]{{Span: span, Item: style}}
}

func bold(c ui.Color) ui.Style { return ui.Style{Foreground: c, Bold: true} }

func normal(c ui.Color) ui.Style { return ui.Style{Foreground: c} }
