package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexUnclosedDelimiter  Code = 1004
	LexUnmatchedCloser    Code = 1005
	LexUnterminatedBlock  Code = 1006
)

func (c Code) String() string {
	return fmt.Sprintf("F%04d", uint16(c))
}
