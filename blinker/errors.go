package blinker

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNilPort     = Error("nil port")
	ErrEmptyBank   = Error("signal bank is empty")
	ErrPinConflict = Error("pin assigned to more than one role")
	ErrBadDebounce = Error("debounce must be positive")
	ErrBadInterval = Error("interval must be at least one debounce period")
	ErrBadClick    = Error("click shape must be positive")
)
