// Package gen emits driver source text for a driver design request.
//
// Generation uses text/template. Templates are written with tab
// indentation which is rewritten to the configured indent afterwards, so
// the output is stable for a given request and configuration.
//
// A generated file consists of:
//   - sorted, deduplicated using directives
//   - the driver class with one read-only member per property
//   - optionally, a static extensions class with attach methods chosen by
//     target kind, attach method and cardinality
package gen
