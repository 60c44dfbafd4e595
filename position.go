package scarpet

import "fmt"

// Position is an immutable source coordinate. Offset counts UTF-16 code
// units from the start of the input; Row and Col are zero-based, with Col
// counted in code units from the most recent line feed.
type Position struct {
	Offset int
	Row    int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// Before reports whether p comes strictly before q in the source.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// Range is a half-open span [Start, End) of source positions.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Contains reports whether the offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start.Offset && offset < r.End.Offset
}
