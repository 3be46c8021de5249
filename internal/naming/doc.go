// Package naming derives identifiers for generated drivers.
//
// Key functions:
//   - Pascal: turns slot names, markup names and type names into PascalCase members
//   - Generator: hands out names unique against an already-taken set
//   - DriverClassName: default driver class for a runtime type
//   - AttachName: attach extension method name derived from a driver class name
package naming
