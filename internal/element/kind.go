package element

import (
	"strings"

	"github.com/cockroachdb/errors"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags a node with the role it can play during resolution.
type Kind int

const (
	// KindElement is an ordinary control. It is never a resolution root.
	KindElement Kind = iota
	// KindWindow is a top-level window.
	KindWindow
	// KindUserControl is an embeddable container.
	KindUserControl
	// KindPage is a navigation page.
	KindPage
)

// IsBoundary reports whether nodes of this kind can serve as a driver root
// or as an intermediate checkpoint.
func (k Kind) IsBoundary() bool {
	return k == KindWindow || k == KindUserControl || k == KindPage
}

// IsTopLevel reports whether the kind is a top-level root.
func (k Kind) IsTopLevel() bool {
	return k == KindWindow
}

// ParseKind parses the snapshot spelling of a kind.
// The empty string is an ordinary element.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "element":
		return KindElement, nil
	case "window":
		return KindWindow, nil
	case "usercontrol", "user_control":
		return KindUserControl, nil
	case "page":
		return KindPage, nil
	default:
		return KindElement, errors.Newf("unknown element kind %q", s)
	}
}
