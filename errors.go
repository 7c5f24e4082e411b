package pyvoc

import (
	"errors"
	"fmt"

	"github.com/signadot/pyvoc/ir"
)

// Error classes. Every *Error matches exactly one of these with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnbound       = errors.New("document is not bound to a file")
	ErrIO            = errors.New("i/o failure")
)

type Kind int

const (
	FileNotFound Kind = iota
	ZoneNotFound
	CategoryNotFound
	KeyNotFound
	FileNotAssigned
	NotInitialized
	AlreadyExists
	NotExists
	InvalidPath
	FileExists
)

var kinds = [...]struct {
	name     string
	template string
	class    error
}{
	FileNotFound:     {"FileNotFound", "file not found", ErrNotFound},
	ZoneNotFound:     {"ZoneNotFound", "zone not found", ErrNotFound},
	CategoryNotFound: {"CategoryNotFound", "category not found", ErrNotFound},
	KeyNotFound:      {"KeyNotFound", "key not found", ErrNotFound},
	FileNotAssigned:  {"FileNotAssigned", "file not assigned", ErrUnbound},
	NotInitialized:   {"NotInitialized", "document must be created before adding positions", ErrUnbound},
	AlreadyExists:    {"AlreadyExists", "%s with name %q already exists", ErrAlreadyExists},
	NotExists:        {"NotExists", "%s with name %q does not exist", ErrNotFound},
	InvalidPath:      {"InvalidPath", "invalid path", ErrIO},
	FileExists:       {"FileExists", "file already exists", ErrAlreadyExists},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Class returns the error class of k.
func (k Kind) Class() error {
	return kinds[k].class
}

// Error is returned by every failing [Document] operation.
type Error struct {
	Kind Kind
	// Level is the kind of element for AlreadyExists and NotExists.
	Level ir.Level
	// Name is the offending name or file path.
	Name string
	// Err is the underlying filesystem error, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case AlreadyExists, NotExists:
		msg = fmt.Sprintf(kinds[e.Kind].template, e.Level, e.Name)
	default:
		msg = kinds[e.Kind].template
		if e.Name != "" {
			msg = fmt.Sprintf("%s: %q", msg, e.Name)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.Class()}
	}
	return []error{e.Kind.Class(), e.Err}
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: ZoneNotFound}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's tree.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func notFoundAt(depth int, z, c, k string) *Error {
	switch depth {
	case 0:
		return &Error{Kind: ZoneNotFound, Level: ir.ZoneLevel, Name: z}
	case 1:
		return &Error{Kind: CategoryNotFound, Level: ir.CategoryLevel, Name: c}
	default:
		return &Error{Kind: KeyNotFound, Level: ir.KeyLevel, Name: k}
	}
}
