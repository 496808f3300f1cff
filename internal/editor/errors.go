//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

// Kind classifies the fatal errors the editor can raise.
type Kind int

const (
	TerminalQuery Kind = iota + 1
	TerminalConfig
	Geometry
	Input
	Output
)

var (
	ErrTerminalQuery  = &Error{Kind: TerminalQuery}
	ErrTerminalConfig = &Error{Kind: TerminalConfig}
	ErrGeometry       = &Error{Kind: Geometry}
	ErrInput          = &Error{Kind: Input}
	ErrOutput         = &Error{Kind: Output}
)

func (k Kind) String() string {
	switch k {
	case TerminalQuery:
		return "terminal query"
	case TerminalConfig:
		return "terminal config"
	case Geometry:
		return "geometry"
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// Error is a fatal editor error. Op names the failing operation and is what
// the diagnostic printed on exit leads with.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	op := e.Op
	if op == "" {
		op = e.Kind.String()
	}
	if e.Err == nil {
		return op
	}
	return op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so errors.Is(err, ErrGeometry) matches any
// geometry failure regardless of op or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
