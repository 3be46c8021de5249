package design

import (
	"slices"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/element"
	"driver-generator/internal/naming"
	"driver-generator/internal/resolve"
)

// CoreMember is the driver member every property is reached from. It is
// never handed out as a property name.
const CoreMember = "Core"

// DynamicType is the declared type of members whose element has no known driver.
const DynamicType = "dynamic"

// Builder assembles a DriverDesignInfo while keeping property names unique.
type Builder struct {
	info  DriverDesignInfo
	names *naming.Generator
}

// NewBuilder starts a request for the driver class className.
func NewBuilder(className string) *Builder {
	return &Builder{
		info:  DriverDesignInfo{ClassName: className, AttachMethod: AttachByTypeFullName},
		names: naming.NewGenerator(CoreMember),
	}
}

// Taken returns the property names in use, including the core member.
func (b *Builder) Taken() []string {
	return b.names.Names()
}

// Add appends a property for elem reached through info. The property gets
// info's default name, numbered if it collides. An empty typeFullName
// declares the member as dynamic.
func (b *Builder) Add(info *resolve.IdentifyInfo, elem *element.Node, typeFullName string) PropertyDescriptor {
	if typeFullName == "" {
		typeFullName = DynamicType
	}

	p := PropertyDescriptor{
		Name:         b.names.Unique(info.DefaultName),
		Identify:     info.Identify,
		TypeFullName: typeFullName,
		IsPerfect:    info.IsPerfect,
		Usings:       slices.Clone(info.Usings),
		Element:      elem,
	}
	b.info.Properties = append(b.info.Properties, p)

	return p
}

// Rename changes a property name. It fails if from does not exist or to is in use.
func (b *Builder) Rename(from, to string) error {
	i := b.index(from)
	if i < 0 {
		return errors.Mark(errors.Newf("no property named %q", from), ErrMalformedRequest)
	}

	if from == to {
		return nil
	}

	if !b.names.Take(to) {
		return errors.WithHint(
			errors.Mark(errors.Newf("property name %q is already in use", to), ErrMalformedRequest),
			"choose a name that is not used by another member of the driver",
		)
	}

	b.names.Release(from)
	b.info.Properties[i].Name = to

	return nil
}

// Remove drops a property and frees its name. It reports whether it existed.
func (b *Builder) Remove(name string) bool {
	i := b.index(name)
	if i < 0 {
		return false
	}

	b.names.Release(name)
	b.info.Properties = slices.Delete(b.info.Properties, i, i+1)

	return true
}

// SetAttach requests attach extension methods.
func (b *Builder) SetAttach(extensionClass string, method AttachMethod, many bool) {
	b.info.CreateAttachCode = true
	b.info.AttachExtensionClass = extensionClass
	b.info.AttachMethod = method
	b.info.ManyExists = many
}

// Build returns a copy of the assembled request.
func (b *Builder) Build() DriverDesignInfo {
	out := b.info
	out.Properties = slices.Clone(b.info.Properties)

	return out
}

func (b *Builder) index(name string) int {
	return slices.IndexFunc(b.info.Properties, func(p PropertyDescriptor) bool { return p.Name == name })
}
