package highlight

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"src.nash.sh/pkg/ui"
)

// Theme assigns a color to every lexical shape, with parse.Size
// contributing two slots, one for its number and one for its unit. A theme
// is decoded once when the session starts and never mutated afterwards.
//
// A Theme stores colors only; whether a category renders bold is fixed in
// ThemedPalette's dispatch. These should really be styles and not colors,
// so that the weight policy lives in the theme too.
type Theme struct {
	BareMember             ThemeColor
	CloseDelimiter         ThemeColor
	Comment                ThemeColor
	Decimal                ThemeColor
	Dot                    ThemeColor
	DotDot                 ThemeColor
	DotDotLeftAngleBracket ThemeColor
	ExternalCommand        ThemeColor
	ExternalWord           ThemeColor
	Flag                   ThemeColor
	Garbage                ThemeColor
	GlobPattern            ThemeColor
	Identifier             ThemeColor
	Int                    ThemeColor
	InternalCommand        ThemeColor
	ItVariable             ThemeColor
	Keyword                ThemeColor
	OpenDelimiter          ThemeColor
	Operator               ThemeColor
	Path                   ThemeColor
	Pipe                   ThemeColor
	Separator              ThemeColor
	ShorthandFlag          ThemeColor
	SizeNumber             ThemeColor
	SizeUnit               ThemeColor
	String                 ThemeColor
	StringMember           ThemeColor
	Type                   ThemeColor
	Variable               ThemeColor
	Whitespace             ThemeColor
	Word                   ThemeColor
}

// ThemeColor is one color slot of a Theme.
type ThemeColor struct{ Color ui.Color }

// ThemeError is returned when a theme document fails to decode. The
// message is deliberately a single fixed diagnostic; the underlying
// structural or color decode failure is available through Unwrap.
type ThemeError struct{ Err error }

func (e *ThemeError) Error() string { return "failure to load theme" }

func (e *ThemeError) Unwrap() error { return e.Err }

// DecodeTheme decodes a theme document from r. The document is a
// key-value mapping (YAML, and therefore also JSON) from field names to
// 6-character lowercase hexadecimal colors. Every field listed in
// themeFields must be present; unknown keys are ignored. Any failure
// yields a *ThemeError and no partial Theme.
func DecodeTheme(r io.Reader) (Theme, error) {
	var doc map[string]string
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Theme{}, &ThemeError{err}
	}
	var t Theme
	for _, f := range themeFields(&t) {
		hex, ok := doc[f.name]
		if !ok {
			return Theme{}, &ThemeError{fmt.Errorf("missing field %q", f.name)}
		}
		color, err := ui.DecodeHexColor(hex)
		if err != nil {
			return Theme{}, &ThemeError{fmt.Errorf("field %q: %w", f.name, err)}
		}
		*f.slot = ThemeColor{color}
	}
	return t, nil
}

type themeField struct {
	name string
	slot *ThemeColor
}

func themeFields(t *Theme) []themeField {
	return []themeField{
		{"bare_member", &t.BareMember},
		{"close_delimiter", &t.CloseDelimiter},
		{"comment", &t.Comment},
		{"decimal", &t.Decimal},
		{"dot", &t.Dot},
		{"dot_dot", &t.DotDot},
		{"dot_dot_left_angle_bracket", &t.DotDotLeftAngleBracket},
		{"external_command", &t.ExternalCommand},
		{"external_word", &t.ExternalWord},
		{"flag", &t.Flag},
		{"garbage", &t.Garbage},
		{"glob_pattern", &t.GlobPattern},
		{"identifier", &t.Identifier},
		{"int", &t.Int},
		{"internal_command", &t.InternalCommand},
		{"it_variable", &t.ItVariable},
		{"keyword", &t.Keyword},
		{"open_delimiter", &t.OpenDelimiter},
		{"operator", &t.Operator},
		{"path", &t.Path},
		{"pipe", &t.Pipe},
		{"separator", &t.Separator},
		{"shorthand_flag", &t.ShorthandFlag},
		{"size_number", &t.SizeNumber},
		{"size_unit", &t.SizeUnit},
		{"string", &t.String},
		{"string_member", &t.StringMember},
		{"type", &t.Type},
		{"variable", &t.Variable},
		{"whitespace", &t.Whitespace},
		{"word", &t.Word},
	}
}

// DefaultTheme returns the built-in theme. It mirrors DefaultPalette's
// color assignments, except for the separator slot, which has always been
// red.
func DefaultTheme() Theme {
	return Theme{
		BareMember:             ThemeColor{ui.Yellow},
		CloseDelimiter:         ThemeColor{ui.White},
		Comment:                ThemeColor{ui.Green},
		Decimal:                ThemeColor{ui.Purple},
		Dot:                    ThemeColor{ui.White},
		DotDot:                 ThemeColor{ui.Yellow},
		DotDotLeftAngleBracket: ThemeColor{ui.Yellow},
		ExternalCommand:        ThemeColor{ui.Cyan},
		ExternalWord:           ThemeColor{ui.Green},
		Flag:                   ThemeColor{ui.Blue},
		Garbage:                ThemeColor{ui.White},
		GlobPattern:            ThemeColor{ui.Cyan},
		Identifier:             ThemeColor{ui.Purple},
		Int:                    ThemeColor{ui.Purple},
		InternalCommand:        ThemeColor{ui.Cyan},
		ItVariable:             ThemeColor{ui.Purple},
		Keyword:                ThemeColor{ui.Purple},
		OpenDelimiter:          ThemeColor{ui.White},
		Operator:               ThemeColor{ui.Yellow},
		Path:                   ThemeColor{ui.Cyan},
		Pipe:                   ThemeColor{ui.Purple},
		Separator:              ThemeColor{ui.Red},
		ShorthandFlag:          ThemeColor{ui.Blue},
		SizeNumber:             ThemeColor{ui.Purple},
		SizeUnit:               ThemeColor{ui.Cyan},
		String:                 ThemeColor{ui.Green},
		StringMember:           ThemeColor{ui.Yellow},
		Type:                   ThemeColor{ui.Blue},
		Variable:               ThemeColor{ui.Purple},
		Whitespace:             ThemeColor{ui.White},
		Word:                   ThemeColor{ui.Green},
	}
}
