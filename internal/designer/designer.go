package designer

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"driver-generator/internal/common"
	"driver-generator/internal/config"
	"driver-generator/internal/design"
	"driver-generator/internal/diagnostic"
	"driver-generator/internal/element"
	"driver-generator/internal/gen"
	"driver-generator/internal/logger"
	"driver-generator/internal/naming"
	"driver-generator/internal/resolve"
)

// Host receives generated code. It owns file storage and the link between
// generated lines and the element tree shown to the user.
type Host interface {
	AddCode(fileName string, code []byte, target *element.Node) error
	AddCodeLineSelectInfo(fileName, identify string, elem *element.Node)
}

// Designer discovers driver members and generates driver code.
type Designer struct {
	config   *config.Config
	drivers  map[string]string
	resolver *resolve.Resolver
	emitter  *gen.Emitter
	host     Host
	logger   *zap.SugaredLogger
}

// New creates a Designer. A nil config uses the defaults. A nil logger is
// built from the verbose and log_output settings of cfg; when that fails,
// output is discarded.
func New(cfg *config.Config, host Host, l *zap.SugaredLogger) *Designer {
	if cfg == nil {
		cfg = config.Default()
	}

	if l == nil {
		l, _ = logger.New(cfg.Verbose, cfg.LogOutput...)
	}

	d := &Designer{
		config:   cfg,
		drivers:  cfg.DriverIndex(),
		resolver: resolve.NewResolver(cfg.ResolverConfig(), l),
		emitter:  gen.NewEmitter(cfg.EmitterConfig(), l),
		host:     host,
		logger:   logger.Named(l, "designer"),
	}

	d.logger.Debugw("designer ready", logger.FieldTypes, cfg.KnownTypes())

	return d
}

// CanDesign reports whether a driver can be designed for n.
func (d *Designer) CanDesign(n *element.Node) bool {
	return n.IsBoundary()
}

// CreateDriverClassName proposes the driver class name for n: the short
// name of its registered driver, or its short type name with the class suffix.
// It is empty for nodes that cannot own a driver.
func (d *Designer) CreateDriverClassName(n *element.Node) string {
	if !d.CanDesign(n) {
		return ""
	}

	if driver, ok := d.drivers[n.TypeFullName()]; ok {
		return common.TypeName(driver)
	}

	return naming.DriverClassName(n.TypeFullName(), d.config.ClassSuffix)
}

// DriverFor returns the registered driver full name for n's type.
func (d *Designer) DriverFor(n *element.Node) (string, bool) {
	if n == nil {
		return "", false
	}

	driver, ok := d.drivers[n.TypeFullName()]
	return driver, ok
}

// AttachExtensionClassCandidates lists the classes attach methods of n's
// driver may extend: drivers registered for its visual ancestors, nearest
// first, then the application handle.
func (d *Designer) AttachExtensionClassCandidates(n *element.Node) []string {
	var candidates []string

	seen := make(map[string]struct{})
	for _, a := range element.VisualAncestors(n) {
		driver, ok := d.DriverFor(a)
		if !ok {
			continue
		}

		if _, dup := seen[driver]; dup {
			continue
		}

		seen[driver] = struct{}{}
		candidates = append(candidates, driver)
	}

	return append(candidates, design.AppAttachClass)
}

// AttachMethodCandidates lists the attach methods available for n.
func (d *Designer) AttachMethodCandidates(n *element.Node) []design.AttachMethod {
	candidates := []design.AttachMethod{design.AttachByTypeFullName}
	if design.TargetKindOf(n) == design.TargetRoot {
		candidates = append(candidates, design.AttachByRootText, design.AttachByVariableRootText)
	}

	return append(candidates, design.AttachCustom)
}

// IdentifyingCandidates resolves elem from root. It returns at most one
// candidate; an empty result is not an error and is explained by the
// diagnostics. taken lists member names already in use.
func (d *Designer) IdentifyingCandidates(
	root, elem *element.Node,
	taken ...string,
) ([]*resolve.IdentifyInfo, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if !d.CanDesign(root) {
		diags.AddError(diagnostic.CodeNotBoundary, "root cannot own a driver", root, elem,
			"choose a window, user control or page as root")
		return nil, diags
	}

	info := d.resolver.Resolve(root, elem, taken...)
	if info == nil {
		diags.AddInfo(diagnostic.CodeUnresolved, "element is not reachable from root", root, elem,
			"choose a nearer root or complete the access manually")
		return nil, diags
	}

	if !info.IsPerfect {
		diags.AddWarning(diagnostic.CodeImperfect, "access path depends on sibling order: "+info.Identify, root, elem,
			"give the element a name or a unique binding")
	}

	return []*resolve.IdentifyInfo{info}, diags
}

// Design builds a request for root with one property per resolvable element.
// Elements without a candidate are skipped and reported. A root that cannot
// own a driver yields no builder.
func (d *Designer) Design(root *element.Node, elems ...*element.Node) (*design.Builder, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if !d.CanDesign(root) {
		diags.AddError(diagnostic.CodeNotBoundary, "root cannot own a driver", root, nil,
			"choose a window, user control or page as root")
		return nil, diags
	}

	b := design.NewBuilder(d.CreateDriverClassName(root))

	for _, elem := range elems {
		candidates, found := d.IdentifyingCandidates(root, elem, b.Taken()...)
		diags.Merge(found)

		info, ok := common.First(candidates)
		if !ok {
			continue
		}

		declared, _ := d.DriverFor(elem)
		b.Add(info, elem, declared)
	}

	d.logger.Debugw("designed driver",
		logger.FieldRoot, root.String(),
		logger.FieldCount, len(b.Build().Properties),
	)

	return b, diags
}

// GenerateCode emits the driver for target and hands it to the host
// together with one line correlation per property.
func (d *Designer) GenerateCode(target *element.Node, info *design.DriverDesignInfo) (*gen.GeneratedFile, error) {
	if d.host == nil {
		return nil, errors.New("no host to receive generated code")
	}

	file, err := d.emitter.Emit(target, info)
	if err != nil {
		return nil, err
	}

	if err := d.host.AddCode(file.Filename, file.Content, target); err != nil {
		return nil, errors.Wrapf(err, "adding %s", file.Filename)
	}

	for _, p := range info.Properties {
		d.host.AddCodeLineSelectInfo(file.Filename, p.Identify, p.Element)
	}

	d.logger.Infow("generated driver", logger.FieldClass, info.ClassName, logger.FieldFile, file.Filename)

	return file, nil
}
