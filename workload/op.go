package workload

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindSet Kind = iota + 1
	KindGet
	KindRemove
	KindLoad
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindGet:
		return "get"
	case KindRemove:
		return "remove"
	case KindLoad:
		return "load"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

type Op struct {
	Kind  Kind
	Key   string
	Value string
}

// ParseOp parses a single workload line. Blank lines and comments yield
// ok == false and no error.
func ParseOp(line string) (op Op, ok bool, err error) {
	fields := strings.Fields(line)

	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}

	var args int

	switch strings.ToLower(fields[0]) {
	case "set":
		op.Kind, args = KindSet, 2
	case "get":
		op.Kind, args = KindGet, 1
	case "remove", "del":
		op.Kind, args = KindRemove, 1
	case "load":
		op.Kind, args = KindLoad, 0
	default:
		return op, false, fmt.Errorf("%w: %q", ErrUnknownOp, fields[0])
	}

	fields = fields[1:]

	if len(fields) > args {
		return op, false, fmt.Errorf("%w for %s", ErrTooManyArgs, op.Kind)
	}

	if args > 0 {
		if len(fields) < 1 {
			return op, false, ErrMissingKey
		}

		op.Key = fields[0]
	}

	if args > 1 {
		if len(fields) < 2 {
			return op, false, ErrMissingValue
		}

		op.Value = fields[1]
	}

	return op, true, nil
}
