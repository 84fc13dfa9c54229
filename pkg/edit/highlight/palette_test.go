package highlight

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.nash.sh/pkg/parse"
	"src.nash.sh/pkg/ui"
)

var testSpan = parse.Span{From: 4, To: 9}

// testSize splits testSpan into the "10" and "kb" halves of a size
// literal like "10kb".
var testSize = parse.Size{
	Number: parse.Span{From: 4, To: 6},
	Unit:   parse.Span{From: 6, To: 9},
}

// allShapes enumerates every shape variant. Tests iterate it to pin the
// totality of both palettes; extending the shape set without extending
// the palettes fails here.
var allShapes = []parse.Shape{
	parse.BareMember{},
	parse.CloseDelimiter{Kind: parse.Square},
	parse.Comment{},
	parse.Decimal{},
	parse.Dot{},
	parse.DotDot{},
	parse.DotDotLeftAngleBracket{},
	parse.ExternalCommand{},
	parse.ExternalWord{},
	parse.Flag{},
	parse.Garbage{},
	parse.GlobPattern{},
	parse.Identifier{},
	parse.Int{},
	parse.InternalCommand{},
	parse.ItVariable{},
	parse.Keyword{},
	parse.OpenDelimiter{Kind: parse.Paren},
	parse.Operator{},
	parse.Path{},
	parse.Pipe{},
	parse.Separator{},
	parse.ShorthandFlag{},
	testSize,
	parse.String{},
	parse.StringMember{},
	parse.Type{},
	parse.Variable{},
	parse.Whitespace{},
	parse.Word{},
}

func spanned(s parse.Shape) parse.Spanned[parse.Shape] {
	return parse.Spanned[parse.Shape]{Span: testSpan, Item: s}
}

func TestPalettesAreTotal(t *testing.T) {
	palettes := []struct {
		name string
		p    Palette
	}{
		{"DefaultPalette", DefaultPalette{}},
		{"ThemedPalette", DefaultThemedPalette()},
	}
	for _, palette := range palettes {
		for _, shape := range allShapes {
			styles := palette.p.StylesForShape(spanned(shape))
			if size, ok := shape.(parse.Size); ok {
				if len(styles) != 2 {
					t.Errorf("%s resolves %T to %d styles, want 2",
						palette.name, shape, len(styles))
					continue
				}
				if styles[0].Span != size.Number || styles[1].Span != size.Unit {
					t.Errorf("%s resolves %T to spans %v, %v, want %v, %v",
						palette.name, shape,
						styles[0].Span, styles[1].Span, size.Number, size.Unit)
				}
				continue
			}
			if len(styles) != 1 {
				t.Errorf("%s resolves %T to %d styles, want 1",
					palette.name, shape, len(styles))
				continue
			}
			if styles[0].Span != testSpan {
				t.Errorf("%s resolves %T to span %v, want %v",
					palette.name, shape, styles[0].Span, testSpan)
			}
		}
	}
}

var defaultPaletteTests = []struct {
	shape parse.Shape
	want  []parse.Spanned[ui.Style]
}{
	{parse.BareMember{}, one(testSpan, ui.Style{Foreground: ui.Yellow, Bold: true})},
	{parse.CloseDelimiter{Kind: parse.Brace}, one(testSpan, ui.Style{Foreground: ui.White})},
	{parse.Comment{}, one(testSpan, ui.Style{Foreground: ui.Green, Bold: true})},
	{parse.Decimal{}, one(testSpan, ui.Style{Foreground: ui.Purple, Bold: true})},
	{parse.Dot{}, one(testSpan, ui.Style{Foreground: ui.White})},
	{parse.DotDot{}, one(testSpan, ui.Style{Foreground: ui.Yellow, Bold: true})},
	{parse.DotDotLeftAngleBracket{}, one(testSpan, ui.Style{Foreground: ui.Yellow, Bold: true})},
	{parse.ExternalCommand{}, one(testSpan, ui.Style{Foreground: ui.Cyan})},
	{parse.ExternalWord{}, one(testSpan, ui.Style{Foreground: ui.Green, Bold: true})},
	{parse.Flag{}, one(testSpan, ui.Style{Foreground: ui.Blue, Bold: true})},
	{parse.Garbage{}, one(testSpan, ui.Style{Foreground: ui.White, Background: ui.Red})},
	{parse.GlobPattern{}, one(testSpan, ui.Style{Foreground: ui.Cyan, Bold: true})},
	{parse.Identifier{}, one(testSpan, ui.Style{Foreground: ui.Purple})},
	{parse.Int{}, one(testSpan, ui.Style{Foreground: ui.Purple, Bold: true})},
	{parse.InternalCommand{}, one(testSpan, ui.Style{Foreground: ui.Cyan, Bold: true})},
	{parse.ItVariable{}, one(testSpan, ui.Style{Foreground: ui.Purple, Bold: true})},
	{parse.Keyword{}, one(testSpan, ui.Style{Foreground: ui.Purple, Bold: true})},
	{parse.OpenDelimiter{Kind: parse.Paren}, one(testSpan, ui.Style{Foreground: ui.White})},
	{parse.Operator{}, one(testSpan, ui.Style{Foreground: ui.Yellow})},
	{parse.Path{}, one(testSpan, ui.Style{Foreground: ui.Cyan})},
	{parse.Pipe{}, one(testSpan, ui.Style{Foreground: ui.Purple, Bold: true})},
	{parse.Separator{}, one(testSpan, ui.Style{Foreground: ui.White})},
	{parse.ShorthandFlag{}, one(testSpan, ui.Style{Foreground: ui.Blue, Bold: true})},
	{testSize, []parse.Spanned[ui.Style]{
		{Span: testSize.Number, Item: ui.Style{Foreground: ui.Purple, Bold: true}},
		{Span: testSize.Unit, Item: ui.Style{Foreground: ui.Cyan, Bold: true}},
	}},
	{parse.String{}, one(testSpan, ui.Style{Foreground: ui.Green})},
	{parse.StringMember{}, one(testSpan, ui.Style{Foreground: ui.Yellow, Bold: true})},
	{parse.Type{}, one(testSpan, ui.Style{Foreground: ui.Blue, Bold: true})},
	{parse.Variable{}, one(testSpan, ui.Style{Foreground: ui.Purple})},
	{parse.Whitespace{}, one(testSpan, ui.Style{Foreground: ui.White})},
	{parse.Word{}, one(testSpan, ui.Style{Foreground: ui.Green})},
}

func TestDefaultPaletteStyles(t *testing.T) {
	for _, test := range defaultPaletteTests {
		got := DefaultPalette{}.StylesForShape(spanned(test.shape))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("DefaultPalette resolves %T (-want +got):\n%s",
				test.shape, diff)
		}
	}
}

func TestThemedPalette(t *testing.T) {
	p, err := NewThemedPalette(strings.NewReader(uniformThemeDoc))
	if err != nil {
		t.Fatalf("NewThemedPalette -> error %v", err)
	}
	got := p.StylesForShape(parse.Spanned[parse.Shape]{
		Span: parse.Span{From: 4, To: 9}, Item: parse.Type{},
	})
	want := []parse.Spanned[ui.Style]{{
		Span: parse.Span{From: 4, To: 9},
		Item: ui.Style{Foreground: ui.TrueColor(163, 89, 204), Bold: true},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("themed Type style (-want +got):\n%s", diff)
	}
}

func TestThemedPaletteForcesGarbageBackground(t *testing.T) {
	p, err := NewThemedPalette(strings.NewReader(uniformThemeDoc))
	if err != nil {
		t.Fatalf("NewThemedPalette -> error %v", err)
	}
	got := p.StylesForShape(spanned(parse.Garbage{}))
	want := one(testSpan, ui.Style{
		Foreground: ui.TrueColor(163, 89, 204),
		Background: ui.Red,
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("themed Garbage style (-want +got):\n%s", diff)
	}
}

func TestThemedPaletteSizeSlots(t *testing.T) {
	doc := themeDoc()
	doc["size_number"] = "ff0000"
	doc["size_unit"] = "0000ff"
	p, err := NewThemedPalette(strings.NewReader(marshalThemeDoc(doc)))
	if err != nil {
		t.Fatalf("NewThemedPalette -> error %v", err)
	}
	got := p.StylesForShape(spanned(testSize))
	want := []parse.Spanned[ui.Style]{
		{Span: testSize.Number, Item: ui.Style{Foreground: ui.TrueColor(255, 0, 0), Bold: true}},
		{Span: testSize.Unit, Item: ui.Style{Foreground: ui.TrueColor(0, 0, 255), Bold: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("themed Size styles (-want +got):\n%s", diff)
	}
}

func TestThemedPaletteDotDotLeftAngleBracket(t *testing.T) {
	// The "..<" shape reads the dot_dot slot, not its own.
	doc := themeDoc()
	doc["dot_dot"] = "00ff00"
	doc["dot_dot_left_angle_bracket"] = "ff0000"
	p, err := NewThemedPalette(strings.NewReader(marshalThemeDoc(doc)))
	if err != nil {
		t.Fatalf("NewThemedPalette -> error %v", err)
	}
	got := p.StylesForShape(spanned(parse.DotDotLeftAngleBracket{}))
	want := one(testSpan, ui.Style{Foreground: ui.TrueColor(0, 255, 0), Bold: true})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("themed ..< style (-want +got):\n%s", diff)
	}
}
