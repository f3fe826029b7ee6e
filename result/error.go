package result

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/MrEthical07/goCommon/internal/format"
)

const (
	// DescribeCapacity is the size of the buffer a description is rendered into.
	DescribeCapacity = 256
	// MaxDescribeLen is the longest description ever produced.
	MaxDescribeLen = DescribeCapacity - 1
)

// Error is an immutable failure value: a [Kind] and a message.
//
// The zero Error has kind [KindGeneric] and an empty message.
type Error struct {
	kind    Kind
	message string
}

// Err returns a [KindGeneric] error carrying message.
func Err(message string) Error {
	return Error{kind: KindGeneric, message: message}
}

// ErrOf returns an error of the given kind. A kind outside the taxonomy is
// recorded as [KindGeneric].
func ErrOf(kind Kind, message string) Error {
	if !kind.Valid() {
		kind = KindGeneric
	}
	return Error{kind: kind, message: message}
}

// Kind returns the error kind.
func (e Error) Kind() Kind {
	return e.kind
}

// Message returns the message the error was built with.
func (e Error) Message() string {
	return e.message
}

// Error implements the error interface and returns [Error.Describe].
func (e Error) Error() string {
	return e.Describe()
}

var scratch = sync.Pool{
	New: func() any {
		b := make([]byte, 0, DescribeCapacity)
		return &b
	},
}

// Describe returns "<KindName>: <message>", cut to at most [MaxDescribeLen]
// bytes. The returned string is owned by the caller.
func (e Error) Describe() string {
	bp := scratch.Get().(*[]byte)
	out := e.AppendDescribe((*bp)[:0])
	s := string(out)
	*bp = out[:0]
	scratch.Put(bp)
	return s
}

// AppendDescribe appends the description of e to dst and returns the extended
// slice. It appends at most [MaxDescribeLen] bytes and never ends on a partial
// UTF-8 sequence. It does not allocate when dst has room for the output.
func (e Error) AppendDescribe(dst []byte) []byte {
	name := KindName(e.kind)
	start := len(dst)

	dst = format.Append(dst, MaxDescribeLen, "%s: %s", name, e.message)
	if len(name)+2+len(e.message) > MaxDescribeLen {
		dst = trimPartialRune(dst, start)
		observeTruncation()
	}
	return dst
}

// HasKind reports whether err is, or wraps, an [Error] of the given kind.
func HasKind(err error, kind Kind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

func trimPartialRune(b []byte, from int) []byte {
	for i := len(b) - 1; i >= from && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if !utf8.FullRune(b[i:]) {
			return b[:i]
		}
		return b
	}
	return b
}
