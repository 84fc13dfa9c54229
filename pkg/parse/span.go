package parse

// Span is a half-open byte range [From, To) into the original source text.
// Spans are produced by the flattener and passed through the highlighter
// unchanged; From <= To always holds.
type Span struct {
	From int
	To   int
}

// Spanned pairs a value with the span of source text it covers.
type Spanned[T any] struct {
	Span Span
	Item T
}
