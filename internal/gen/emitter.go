package gen

import (
	"bytes"
	"slices"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"driver-generator/internal/common"
	"driver-generator/internal/design"
	"driver-generator/internal/element"
	"driver-generator/internal/logger"
	"driver-generator/internal/naming"
)

// Config holds configuration for code emission.
type Config struct {
	// Namespace is the namespace the driver is declared in.
	Namespace string
	// Indent is one level of indentation in the output.
	Indent string
	// ClassSuffix is stripped from the class name to derive attach method names.
	ClassSuffix string
	// AttachVerb prefixes attach method names.
	AttachVerb string
	// ReworkMarker is appended to members whose access expression is imperfect.
	ReworkMarker string
	// Usings are always emitted.
	Usings []string
}

// DefaultConfig returns the default emission configuration.
func DefaultConfig() Config {
	return Config{
		Namespace:    "Driver",
		Indent:       "    ",
		ClassSuffix:  "Driver",
		AttachVerb:   "Attach",
		ReworkMarker: "// TODO It is not the best way to identify. Please change to a better method.",
		Usings: []string{
			"Codeer.TestAssistant.GeneratorToolKit",
			"Codeer.Friendly.Windows.Grasp",
			"Codeer.Friendly.Windows",
			"Codeer.Friendly.Dynamic",
			"Codeer.Friendly",
			"System.Linq",
		},
	}
}

// Emitter turns driver design requests into source files.
type Emitter struct {
	config Config
	logger *zap.SugaredLogger
}

// NewEmitter creates a new Emitter. A nil logger discards output.
func NewEmitter(config Config, l *zap.SugaredLogger) *Emitter {
	return &Emitter{config: config, logger: logger.Named(l, "gen")}
}

// LineSelect ties a line of a generated file to the element it accesses.
type LineSelect struct {
	// Identify is the access expression of the member.
	Identify string
	// Element is the tree element the member stands for.
	Element *element.Node
	// Line is the 1-based line of the member, 0 if it was not found.
	Line int
}

// GeneratedFile represents a generated driver source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "MainWindowDriver.cs").
	Filename string
	// Content is the source text.
	Content []byte
	// LineSelects lists one correlation per property, in property order.
	LineSelects []LineSelect
}

// Emit generates the driver for target described by info. Malformed
// requests are rejected and nothing is emitted.
func (e *Emitter) Emit(target *element.Node, info *design.DriverDesignInfo) (*GeneratedFile, error) {
	if err := design.Validate(target, info); err != nil {
		return nil, errors.Wrapf(err, "emitting %s", target)
	}

	data, err := e.buildFileData(target, info)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := driverTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	content := reindent(buf.Bytes(), e.config.Indent)
	file := &GeneratedFile{
		Filename: info.ClassName + ".cs",
		Content:  content,
	}

	for _, p := range info.Properties {
		file.LineSelects = append(file.LineSelects, LineSelect{
			Identify: p.Identify,
			Element:  p.Element,
			Line:     lineOf(content, " "+p.Name+" => "+p.Identify+";"),
		})
	}

	e.logger.Debugw("emitted driver",
		logger.FieldFile, file.Filename,
		logger.FieldCount, len(info.Properties),
		logger.FieldAttach, info.CreateAttachCode,
	)

	return file, nil
}

// fileData holds all data needed for the driver template.
type fileData struct {
	Usings      []string
	Namespace   string
	Attribute   string
	TypeLiteral string
	ClassName   string
	Members     []memberData
	Attach      string
}

// memberData represents a single read-only member of the driver class.
type memberData struct {
	Type     string
	Name     string
	Identify string
	Marker   string
}

func (e *Emitter) buildFileData(target *element.Node, info *design.DriverDesignInfo) (*fileData, error) {
	usings := slices.Clone(e.config.Usings)

	data := &fileData{
		Namespace:   e.config.Namespace,
		Attribute:   "UserControlDriver",
		TypeLiteral: common.Literal(target.TypeFullName()),
		ClassName:   info.ClassName,
	}

	if design.TargetKindOf(target) == design.TargetRoot {
		data.Attribute = "WindowDriver"
	}

	for _, p := range info.Properties {
		m := memberData{
			Type:     common.TypeName(p.TypeFullName),
			Name:     p.Name,
			Identify: p.Identify,
		}

		if !p.IsPerfect {
			m.Marker = e.config.ReworkMarker
		}

		data.Members = append(data.Members, m)
		usings = append(usings, common.TypeNamespace(p.TypeFullName))
		usings = append(usings, p.Usings...)
	}

	if info.CreateAttachCode {
		attach, attachUsings, err := e.buildAttach(target, info)
		if err != nil {
			return nil, err
		}

		data.Attach = attach
		usings = append(usings, attachUsings...)
	}

	data.Usings = sortedUsings(usings)

	return data, nil
}

func sortedUsings(usings []string) []string {
	out := slices.DeleteFunc(usings, func(s string) bool { return s == "" })
	slices.Sort(out)

	return slices.Compact(out)
}

// reindent replaces leading tabs with indent.
func reindent(src []byte, indent string) []byte {
	lines := strings.Split(string(src), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "\t")
		lines[i] = strings.Repeat(indent, len(line)-len(trimmed)) + trimmed
	}

	return []byte(strings.Join(lines, "\n"))
}

// lineOf returns the 1-based line of the first occurrence of needle, or 0.
func lineOf(content []byte, needle string) int {
	for i, line := range strings.Split(string(content), "\n") {
		if strings.Contains(line, needle) {
			return i + 1
		}
	}

	return 0
}

// AttachName returns the attach method name for a driver class.
func (e *Emitter) AttachName(className string) string {
	return naming.AttachName(className, e.config.ClassSuffix, e.config.AttachVerb)
}

// Template for the driver file

var driverTemplate = template.Must(template.New("driver").Parse(`{{range .Usings}}using {{.}};
{{end}}
namespace {{.Namespace}}
{
	[{{.Attribute}}(TypeFullName = {{.TypeLiteral}})]
	public class {{.ClassName}}
	{
		public WindowControl Core { get; }
{{range .Members}}		public {{.Type}} {{.Name}} => {{.Identify}};{{if .Marker}} {{.Marker}}{{end}}
{{end}}
		public {{.ClassName}}(WindowControl core)
		{
			Core = core;
		}

		public {{.ClassName}}(AppVar core)
		{
			Core = new WindowControl(core);
		}
	}
{{if .Attach}}
	public static class {{.ClassName}}Extensions
	{
{{.Attach}}	}
{{end}}}
`))
