package highlight

import (
	"fmt"
	"io"

	"src.nash.sh/pkg/logutil"
	"src.nash.sh/pkg/parse"
	"src.nash.sh/pkg/ui"
)

var logger = logutil.GetLogger("[highlight] ")

// ThemedPalette is a Palette that takes its colors from a Theme. Whether a
// category renders bold is still fixed per category here, not in the
// Theme; see the note on Theme.
type ThemedPalette struct {
	theme Theme
}

// NewThemedPalette reads a theme document from r and returns a palette
// driven by it. A document that fails to decode yields a nil palette and a
// *ThemeError; no partial theme is ever used.
func NewThemedPalette(r io.Reader) (*ThemedPalette, error) {
	theme, err := DecodeTheme(r)
	if err != nil {
		logger.Println("cannot decode theme:", err)
		return nil, err
	}
	return &ThemedPalette{theme}, nil
}

// DefaultThemedPalette returns a palette driven by the built-in theme. It
// performs no I/O and always succeeds.
func DefaultThemedPalette() *ThemedPalette {
	return &ThemedPalette{DefaultTheme()}
}

// StylesForShape implements Palette.
func (p *ThemedPalette) StylesForShape(shape parse.Spanned[parse.Shape]) []parse.Spanned[ui.Style] {
	t := &p.theme
	switch sh := shape.Item.(type) {
	case parse.OpenDelimiter:
		return one(shape.Span, normal(t.OpenDelimiter.Color))
	case parse.CloseDelimiter:
		return one(shape.Span, normal(t.CloseDelimiter.Color))
	case parse.ItVariable:
		return one(shape.Span, bold(t.ItVariable.Color))
	case parse.Keyword:
		return one(shape.Span, bold(t.Keyword.Color))
	case parse.Variable:
		return one(shape.Span, normal(t.Variable.Color))
	case parse.Identifier:
		return one(shape.Span, normal(t.Identifier.Color))
	case parse.Type:
		return one(shape.Span, bold(t.Type.Color))
	case parse.Operator:
		return one(shape.Span, normal(t.Operator.Color))
	case parse.DotDotLeftAngleBracket:
		// Resolved through the dot_dot slot, like the original mapping;
		// the dot_dot_left_angle_bracket slot is decoded but not consulted.
		return one(shape.Span, bold(t.DotDot.Color))
	case parse.DotDot:
		return one(shape.Span, bold(t.DotDot.Color))
	case parse.Dot:
		return one(shape.Span, normal(t.Dot.Color))
	case parse.InternalCommand:
		return one(shape.Span, bold(t.InternalCommand.Color))
	case parse.ExternalCommand:
		return one(shape.Span, normal(t.ExternalCommand.Color))
	case parse.ExternalWord:
		return one(shape.Span, bold(t.ExternalWord.Color))
	case parse.BareMember:
		return one(shape.Span, bold(t.BareMember.Color))
	case parse.StringMember:
		return one(shape.Span, bold(t.StringMember.Color))
	case parse.String:
		return one(shape.Span, normal(t.String.Color))
	case parse.Path:
		return one(shape.Span, normal(t.Path.Color))
	case parse.GlobPattern:
		return one(shape.Span, bold(t.GlobPattern.Color))
	case parse.Word:
		return one(shape.Span, normal(t.Word.Color))
	case parse.Pipe:
		return one(shape.Span, bold(t.Pipe.Color))
	case parse.Flag:
		return one(shape.Span, bold(t.Flag.Color))
	case parse.ShorthandFlag:
		return one(shape.Span, bold(t.ShorthandFlag.Color))
	case parse.Int:
		return one(shape.Span, bold(t.Int.Color))
	case parse.Decimal:
		return one(shape.Span, bold(t.Decimal.Color))
	case parse.Whitespace:
		return one(shape.Span, normal(t.Whitespace.Color))
	case parse.Separator:
		return one(shape.Span, normal(t.Separator.Color))
	case parse.Comment:
		return one(shape.Span, bold(t.Comment.Color))
	case parse.Garbage:
		// The background is always the alert color, whatever the theme
		// says, so unparseable input stays recognizable.
		return one(shape.Span, ui.Style{Foreground: t.Garbage.Color, Background: ui.Red})
	case parse.Size:
		return []parse.Spanned[ui.Style]{
			{Span: sh.Number, Item: bold(t.SizeNumber.Color)},
			{Span: sh.Unit, Item: bold(t.SizeUnit.Color)},
		}
	}
	panic(fmt.Sprintf("unhandled shape %T", shape.Item))
}
