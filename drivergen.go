// Package drivergen generates Friendly test driver classes for captured GUI
// element trees.
//
// A host captures the logical and visual trees of a running application
// into a Snapshot, asks a Designer for member candidates below a window,
// user control or page, and lets it emit the driver source through a Host.
package drivergen

import (
	"go.uber.org/zap"

	"driver-generator/internal/config"
	"driver-generator/internal/design"
	"driver-generator/internal/designer"
	"driver-generator/internal/diagnostic"
	"driver-generator/internal/element"
	"driver-generator/internal/gen"
	"driver-generator/internal/resolve"
)

type (
	// Designer discovers driver members and generates driver code.
	Designer = designer.Designer
	// Host receives generated code.
	Host = designer.Host
	// Config is the generator configuration.
	Config = config.Config
	// Node is one element of a captured tree.
	Node = element.Node
	// Snapshot is a captured element tree.
	Snapshot = element.Snapshot
	// DriverDesignInfo is a driver generation request.
	DriverDesignInfo = design.DriverDesignInfo
	// PropertyDescriptor is one member of a driver.
	PropertyDescriptor = design.PropertyDescriptor
	// Builder assembles a DriverDesignInfo.
	Builder = design.Builder
	// AttachMethod selects how an attach method identifies its target.
	AttachMethod = design.AttachMethod
	// IdentifyInfo is a resolved access path candidate.
	IdentifyInfo = resolve.IdentifyInfo
	// Diagnostics explains skipped or imperfect candidates.
	Diagnostics = diagnostic.Diagnostics
	// GeneratedFile is emitted driver source.
	GeneratedFile = gen.GeneratedFile
	// DirHost is a Host writing into a directory.
	DirHost = gen.DirHost
)

// Attach methods.
const (
	AttachByTypeFullName     = design.AttachByTypeFullName
	AttachByRootText         = design.AttachByRootText
	AttachByVariableRootText = design.AttachByVariableRootText
	AttachCustom             = design.AttachCustom
)

// AppAttachClass is the application handle attach methods extend when the
// driver is not attached through a parent driver.
const AppAttachClass = design.AppAttachClass

// ErrMalformedRequest marks rejected generation requests.
var ErrMalformedRequest = design.ErrMalformedRequest

// ParseAttachMethod parses an attach method display name such as
// "Window Text".
func ParseAttachMethod(name string) (AttachMethod, error) {
	return design.ParseAttachMethod(name)
}

// New creates a Designer. A nil config uses the defaults; a nil logger is
// built from the config's verbose and log_output settings.
func New(cfg *Config, host Host, l *zap.SugaredLogger) *Designer {
	return designer.New(cfg, host, l)
}

// LoadConfig reads a configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// LoadSnapshot reads a YAML element tree snapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	return element.LoadFile(path)
}

// NewDirHost creates a Host writing generated files into dir.
func NewDirHost(dir string) *DirHost {
	return gen.NewDirHost(dir)
}
