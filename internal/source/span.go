package source

import (
	"fmt"
)

// Pos is a human-oriented position in a source file.
// Line is 1-based, Col is 0-based — the tokenizer's convention.
type Pos struct {
	Line uint32
	Col  uint32
}

// Before reports whether p precedes other in reading order.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// After reports whether p follows other in reading order.
func (p Pos) After(other Pos) bool {
	return other.Before(p)
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span describes the half-open extent [Start, End) of a token or delimiter.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Cover возвращает наименьший Span, покрывающий оба.
func (s Span) Cover(other Span) Span {
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if other.End.After(s.End) {
		s.End = other.End
	}
	return s
}
