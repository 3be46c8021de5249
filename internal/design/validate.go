package design

import (
	"slices"
	"unicode"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/element"
)

// ErrMalformedRequest marks generation requests that cannot be emitted.
var ErrMalformedRequest = errors.New("malformed driver design request")

// Validate checks that info can be emitted for target.
func Validate(target *element.Node, info *DriverDesignInfo) error {
	if info == nil {
		return malformed(errors.New("no design info"), "")
	}

	if target == nil || !target.IsBoundary() {
		return malformed(
			errors.Newf("target %s is not a window, user control or page", target),
			"drivers can only be designed for boundary elements",
		)
	}

	if !IsIdentifier(info.ClassName) {
		return malformed(errors.Newf("invalid class name %q", info.ClassName), "")
	}

	seen := map[string]struct{}{CoreMember: {}}
	for _, p := range info.Properties {
		if !IsIdentifier(p.Name) {
			return malformed(errors.Newf("invalid property name %q", p.Name), "")
		}

		if _, dup := seen[p.Name]; dup {
			return malformed(
				errors.Newf("duplicate property name %q", p.Name),
				"property names must be unique within one driver",
			)
		}

		seen[p.Name] = struct{}{}

		if p.Identify == "" {
			return malformed(errors.Newf("property %q has no access expression", p.Name), "")
		}
	}

	if !info.CreateAttachCode {
		return nil
	}

	if info.AttachExtensionClass == "" {
		return malformed(
			errors.New("attach code requested without an extension class"),
			"pick the application class or a parent driver",
		)
	}

	if !slices.Contains(AttachMethods, info.AttachMethod) {
		return malformed(errors.Newf("unknown attach method %d", int(info.AttachMethod)), "")
	}

	if info.AttachMethod.RootOnly() {
		if TargetKindOf(target) != TargetRoot {
			return malformed(
				errors.Newf("attach method %q needs a top-level window, got %s", info.AttachMethod, target.Kind()),
				"use Type Full Name or Custom for user controls and pages",
			)
		}

		if !info.AttachesToApp() {
			return malformed(
				errors.Newf("attach method %q can only extend %s", info.AttachMethod, AppAttachClass),
				"window text lookup needs the application handle",
			)
		}
	}

	return nil
}

// IsIdentifier reports whether s is a valid C# identifier without the
// verbatim prefix.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

func malformed(err error, hint string) error {
	err = errors.Mark(err, ErrMalformedRequest)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}

	return err
}
