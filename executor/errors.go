/*
Package executor implements the pluggable selector/iterator/reducer/sorter
operator framework spec.md §3.5/§4.2 describes: a process-wide Registry of
named Executor factories (KEY, RANGE, FILTER, CHAR, TOKEN, ADD, SUB, MUL,
FORMULA, OBJFORMULA, TRAVEL, CLASS, FUNC, EXTERNAL), each driven by a rule
string parsed by executor/rule into a typed AST and evaluated against an
executor/variant.Value.

Each concrete executor is grounded file-for-file on the matching
original_source/Source/PurC/executors/exe_*.c file (see DESIGN.md); the
registry itself is grounded on executor.c/private/executor.h, and SORT
(sort.go) on interpreter/elements/sort.c. Names are interned to fast atoms
via github.com/derekparker/trie for rule-dispatch lookups, a direct teacher
dependency.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The foil authors

*/
package executor

import "fmt"

// Kind enumerates the executor error kinds spec.md §7 names.
type Kind int

const (
	BadArg Kind = iota
	NotAllowed
	NotImplementedErr
	OutOfMemory
	OutOfRange
	NotExists
	NoKeysSelected
	AlreadyExists
	InvalidValue
	BadSystemCall
)

func (k Kind) String() string {
	switch k {
	case BadArg:
		return "BAD_ARG"
	case NotAllowed:
		return "NOT_ALLOWED"
	case NotImplementedErr:
		return "NOT_IMPLEMENTED"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case OutOfRange:
		return "OUT_OF_RANGE"
	case NotExists:
		return "NOT_EXISTS"
	case NoKeysSelected:
		return "NO_KEYS_SELECTED"
	case AlreadyExists:
		return "ALREADY_EXISTS"
	case InvalidValue:
		return "INVALID_VALUE"
	case BadSystemCall:
		return "BAD_SYSTEM_CALL"
	default:
		return "UNKNOWN"
	}
}

// Error is the typed error every executor operation surfaces, carrying one
// of spec.md §7's error kinds plus a human-readable diagnostic.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("executor: %s: %s", e.Kind, e.Msg)
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
