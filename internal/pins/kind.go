package pins

import "strings"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the inferred type of a board pin.
type Kind int

const (
	KindAny Kind = iota
	KindPin
	KindDisplay
)

const (
	displayPrefix = "&displays"
	pinPrefix     = "&pin_"
)

// Classify infers a pin's kind from the value of its table entry.
func Classify(value string) Kind {
	switch {
	case strings.HasPrefix(value, displayPrefix):
		return KindDisplay
	case strings.HasPrefix(value, pinPrefix):
		return KindPin
	default:
		return KindAny
	}
}

// Namespace returns the module that must be imported to use TypeName.
func (k Kind) Namespace() string {
	switch k {
	case KindPin:
		return "microcontroller"
	case KindDisplay:
		return "displayio"
	default:
		return "typing"
	}
}

// TypeName returns the stub annotation for the kind.
func (k Kind) TypeName() string {
	switch k {
	case KindPin:
		return "microcontroller.Pin"
	case KindDisplay:
		return "displayio.Display"
	default:
		return "typing.Any"
	}
}
