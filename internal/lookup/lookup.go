// Package lookup finds the storage slot through which a container directly
// owns a target element.
package lookup

import (
	"reflect"

	"driver-generator/internal/element"
)

// Field returns the name of the first slot of container holding a reference
// identical to target. Declared slots are scanned first, in declaration order.
// When both nodes wrap live values, the container value's struct fields are
// scanned as well, exported and unexported alike.
func Field(container, target *element.Node) (string, bool) {
	if container == nil || target == nil {
		return "", false
	}

	for _, s := range container.Slots() {
		if s.Value == target {
			return s.Name, true
		}
	}

	if container.Object() == nil || target.Object() == nil {
		return "", false
	}

	return ValueField(container.Object(), target.Object())
}

// ValueField scans the struct fields of owner for one holding a reference
// identical to target. owner may be a struct or a pointer to one; embedded
// structs are searched in place and report the promoted field name.
// Only pointers, maps and channels, directly or held in an interface, can
// match.
func ValueField(owner, target any) (string, bool) {
	t := reflect.ValueOf(target)
	if !isReference(t) || t.IsNil() {
		return "", false
	}

	v := reflect.ValueOf(owner)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return "", false
	}

	return scanStruct(v, t, map[reflect.Type]bool{})
}

func scanStruct(v, target reflect.Value, visiting map[reflect.Type]bool) (string, bool) {
	if visiting[v.Type()] {
		return "", false
	}

	visiting[v.Type()] = true
	defer delete(visiting, v.Type())

	st := v.Type()
	for i := range st.NumField() {
		sf := st.Field(i)
		fv := v.Field(i)

		if sf.Anonymous && fv.Kind() == reflect.Struct {
			if name, ok := scanStruct(fv, target, visiting); ok {
				return name, true
			}

			continue
		}

		if sameReference(fv, target) {
			return sf.Name, true
		}
	}

	return "", false
}

func isReference(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// sameReference compares by identity. Value.Pointer does not require the
// field to be exported, so unexported slots are visible too.
func sameReference(field, target reflect.Value) bool {
	if field.Kind() == reflect.Interface {
		if field.IsNil() {
			return false
		}

		field = field.Elem()
	}

	if !isReference(field) || field.IsNil() {
		return false
	}

	if field.Type() != target.Type() {
		return false
	}

	return field.Pointer() == target.Pointer()
}
