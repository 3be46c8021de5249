// Package designer is the entry point used by a design surface. It answers
// which elements can own a driver, proposes class names, attach choices and
// member candidates, and hands generated code to the host.
package designer
