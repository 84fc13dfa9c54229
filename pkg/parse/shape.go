// Package parse defines the lexical vocabulary shared between the shell's
// flattener and its consumers: source spans and the shapes (token-level
// categories) assigned to them.
package parse

// Shape classifies one contiguous region of shell source. The set of shapes
// is closed; consumers dispatch on the concrete type and are expected to
// handle every variant.
//
// Every shape covers the single span it is paired with, except Size, which
// carries two sub-spans of its own (the numeric magnitude and the unit
// suffix, e.g. "10" and "kb" in "10kb").
type Shape interface{ shape() }

// Delimiter identifies the kind of a paired delimiter shape.
type Delimiter int

// Delimiter kinds.
const (
	Paren Delimiter = iota
	Brace
	Square
)

// The shape variants.
type (
	// BareMember is an unquoted member name in a path expression.
	BareMember struct{}
	// CloseDelimiter is the closing half of a paired delimiter.
	CloseDelimiter struct{ Kind Delimiter }
	// Comment is a comment, from its leading marker to end of line.
	Comment struct{}
	// Decimal is a decimal number literal.
	Decimal struct{}
	// Dot is a single path-separating dot.
	Dot struct{}
	// DotDot is the ".." range operator.
	DotDot struct{}
	// DotDotLeftAngleBracket is the "..<" half-open range operator.
	DotDotLeftAngleBracket struct{}
	// ExternalCommand is the name of an external command.
	ExternalCommand struct{}
	// ExternalWord is a bare word passed to an external command.
	ExternalWord struct{}
	// Flag is a long flag ("--flag").
	Flag struct{}
	// Garbage is input the flattener could not classify.
	Garbage struct{}
	// GlobPattern is a word containing glob metacharacters.
	GlobPattern struct{}
	// Identifier is an identifier in a binding position.
	Identifier struct{}
	// Int is an integer literal.
	Int struct{}
	// InternalCommand is the name of a builtin command.
	InternalCommand struct{}
	// ItVariable is the implicit "$it" variable.
	ItVariable struct{}
	// Keyword is a language keyword.
	Keyword struct{}
	// OpenDelimiter is the opening half of a paired delimiter.
	OpenDelimiter struct{ Kind Delimiter }
	// Operator is a binary or unary operator.
	Operator struct{}
	// Path is a filesystem path literal.
	Path struct{}
	// Pipe is the "|" connecting two pipeline stages.
	Pipe struct{}
	// Separator separates two pipelines (";" or newline).
	Separator struct{}
	// ShorthandFlag is a short flag ("-f").
	ShorthandFlag struct{}
	// Size is a size literal such as "10kb". Number and Unit span the
	// magnitude and the unit suffix respectively; both lie within the
	// span the Size shape is paired with.
	Size struct{ Number, Unit Span }
	// String is a quoted string literal.
	String struct{}
	// StringMember is a quoted member name in a path expression.
	StringMember struct{}
	// Type is a type name.
	Type struct{}
	// Variable is a variable reference.
	Variable struct{}
	// Whitespace is a run of insignificant whitespace.
	Whitespace struct{}
	// Word is a bare word.
	Word struct{}
)

func (BareMember) shape()             {}
func (CloseDelimiter) shape()         {}
func (Comment) shape()                {}
func (Decimal) shape()                {}
func (Dot) shape()                    {}
func (DotDot) shape()                 {}
func (DotDotLeftAngleBracket) shape() {}
func (ExternalCommand) shape()        {}
func (ExternalWord) shape()           {}
func (Flag) shape()                   {}
func (Garbage) shape()                {}
func (GlobPattern) shape()            {}
func (Identifier) shape()             {}
func (Int) shape()                    {}
func (InternalCommand) shape()        {}
func (ItVariable) shape()             {}
func (Keyword) shape()                {}
func (OpenDelimiter) shape()          {}
func (Operator) shape()               {}
func (Path) shape()                   {}
func (Pipe) shape()                   {}
func (Separator) shape()              {}
func (ShorthandFlag) shape()          {}
func (Size) shape()                   {}
func (String) shape()                 {}
func (StringMember) shape()           {}
func (Type) shape()                   {}
func (Variable) shape()               {}
func (Whitespace) shape()             {}
func (Word) shape()                   {}
