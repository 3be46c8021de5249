package logger

// Standard field names for structured logging.
const (
	FieldComponent = "component"

	// Resolution
	FieldRoot       = "root"
	FieldTarget     = "target"
	FieldCheckpoint = "checkpoint"
	FieldElement    = "element"
	FieldSegment    = "segment"
	FieldSlot       = "slot"
	FieldTree       = "tree"
	FieldExact      = "exact"
	FieldIdentify   = "identify"
	FieldPerfect    = "perfect"

	// Emission
	FieldFile     = "file"
	FieldClass    = "class"
	FieldTemplate = "template"
	FieldMethod   = "method"
	FieldCount    = "count"
	FieldAttach   = "attach"

	// Configuration
	FieldTypes = "types"
)
