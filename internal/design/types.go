package design

import (
	"strings"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/common"
	"driver-generator/internal/element"
	"driver-generator/internal/naming"
)

// AppAttachClass is the application handle attach methods extend when the
// driver is not attached to a parent driver.
const AppAttachClass = "Codeer.Friendly.Windows.WindowsAppFriend"

// AttachMethod is the strategy by which a driver instance is obtained.
type AttachMethod int

const (
	// AttachByTypeFullName identifies the target by its runtime type.
	AttachByTypeFullName AttachMethod = iota
	// AttachByRootText identifies a window by its current title.
	AttachByRootText
	// AttachByVariableRootText identifies a window by a title supplied by the caller.
	AttachByVariableRootText
	// AttachCustom emits stubs to be completed by hand.
	AttachCustom
)

// AttachMethods lists all attach methods in candidate order.
var AttachMethods = []AttachMethod{AttachByTypeFullName, AttachByRootText, AttachByVariableRootText, AttachCustom}

// String returns the display name shown by the design surface.
func (m AttachMethod) String() string {
	switch m {
	case AttachByTypeFullName:
		return "Type Full Name"
	case AttachByRootText:
		return "Window Text"
	case AttachByVariableRootText:
		return "VariableWindowText"
	case AttachCustom:
		return "Custom"
	default:
		return common.UnknownStr
	}
}

// RootOnly reports whether the method needs a top-level root target.
func (m AttachMethod) RootOnly() bool {
	return m == AttachByRootText || m == AttachByVariableRootText
}

// ParseAttachMethod parses a display name.
func ParseAttachMethod(s string) (AttachMethod, error) {
	for _, m := range AttachMethods {
		if strings.EqualFold(m.String(), strings.TrimSpace(s)) {
			return m, nil
		}
	}

	err := errors.Mark(errors.Newf("unknown attach method %q", s), ErrMalformedRequest)

	names := make([]string, 0, len(AttachMethods))
	for _, m := range AttachMethods {
		names = append(names, m.String())
	}

	if closest, ok := naming.Closest(s, names); ok {
		err = errors.WithHintf(err, "did you mean %q?", closest)
	}

	return AttachByTypeFullName, err
}

//go:generate go tool stringer -type=TargetKind -output=targetkind_string.go

// TargetKind separates top-level roots from embedded containers.
type TargetKind int

const (
	// TargetRoot is a top-level window.
	TargetRoot TargetKind = iota
	// TargetEmbedded is a user control or page hosted inside another boundary.
	TargetEmbedded
)

// TargetKindOf returns the target kind of a boundary node.
func TargetKindOf(n *element.Node) TargetKind {
	if n.Kind().IsTopLevel() {
		return TargetRoot
	}

	return TargetEmbedded
}

// PropertyDescriptor is one approved, named accessor of a driver.
type PropertyDescriptor struct {
	// Name is the member name.
	Name string
	// Identify is the access expression, emitted verbatim.
	Identify string
	// TypeFullName is the declared member type.
	TypeFullName string
	// IsPerfect is false when Identify relies on sibling order.
	IsPerfect bool
	// Usings are extra namespaces Identify needs.
	Usings []string
	// Element is the tree element the member stands for.
	Element *element.Node
}

// DriverDesignInfo is the generation request consumed by the code emitter.
type DriverDesignInfo struct {
	ClassName            string
	Properties           []PropertyDescriptor
	CreateAttachCode     bool
	AttachExtensionClass string
	AttachMethod         AttachMethod
	ManyExists           bool
}

// AttachesToApp reports whether the attach methods extend the application
// handle rather than a parent driver.
func (d *DriverDesignInfo) AttachesToApp() bool {
	return d.AttachExtensionClass == AppAttachClass
}
