package gen

import (
	"bytes"
	"text/template"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/common"
	"driver-generator/internal/design"
	"driver-generator/internal/element"
	"driver-generator/internal/logger"
)

// attachData holds the data for one attach template.
type attachData struct {
	ClassName   string
	FuncName    string
	TypeLiteral string
	TextLiteral string
	Parent      string
}

// attachTemplateName selects the attach template for a request. The choice
// depends on whether the methods extend the application or a parent driver,
// on the target kind, on the attach method and on the cardinality.
func attachTemplateName(kind design.TargetKind, info *design.DriverDesignInfo) (string, error) {
	many := info.ManyExists

	switch {
	case !info.AttachesToApp():
		switch info.AttachMethod {
		case design.AttachByTypeFullName:
			return pick(many, "parent_type_many", "parent_type"), nil
		case design.AttachCustom:
			return "parent_custom", nil
		}
	case kind == design.TargetRoot:
		switch info.AttachMethod {
		case design.AttachByTypeFullName:
			return pick(many, "app_root_type_many", "app_root_type"), nil
		case design.AttachByRootText:
			return pick(many, "app_root_text_many", "app_root_text"), nil
		case design.AttachByVariableRootText:
			return "app_root_variable_text", nil
		case design.AttachCustom:
			return "app_root_custom", nil
		}
	default:
		switch info.AttachMethod {
		case design.AttachByTypeFullName:
			return pick(many, "app_embedded_type_many", "app_embedded_type"), nil
		case design.AttachCustom:
			return "app_embedded_custom", nil
		}
	}

	return "", errors.Mark(
		errors.Newf("no attach code for %q on %s target via %s",
			info.AttachMethod, kind, info.AttachExtensionClass),
		design.ErrMalformedRequest,
	)
}

func pick(many bool, ifMany, ifSingle string) string {
	if many {
		return ifMany
	}

	return ifSingle
}

// buildAttach renders the body of the extensions class and returns the
// usings it needs.
func (e *Emitter) buildAttach(target *element.Node, info *design.DriverDesignInfo) (string, []string, error) {
	name, err := attachTemplateName(design.TargetKindOf(target), info)
	if err != nil {
		return "", nil, err
	}

	data := attachData{
		ClassName:   info.ClassName,
		FuncName:    e.AttachName(info.ClassName),
		TypeLiteral: common.Literal(target.TypeFullName()),
		TextLiteral: common.Literal(target.Text()),
	}

	var usings []string
	if !info.AttachesToApp() {
		ns, parent := common.SplitTypeFullName(info.AttachExtensionClass)
		data.Parent = parent
		usings = append(usings, ns)
	}

	var buf bytes.Buffer
	if err := attachTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", nil, errors.Wrapf(err, "executing attach template %s", name)
	}

	e.logger.Debugw("selected attach code", logger.FieldTemplate, name, logger.FieldMethod, info.AttachMethod.String())

	return buf.String(), usings, nil
}

// Templates for the extensions class body

var attachTemplates = template.Must(template.New("attach").Parse(`
{{define "app_root_type"}}		[WindowDriverIdentify(TypeFullName = {{.TypeLiteral}})]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app)
			=> app.WaitForIdentifyFromTypeFullName({{.TypeLiteral}}).Dynamic();
{{end}}
{{define "app_root_type_many"}}		[WindowDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, int index)
			=> app.GetFromTypeFullName({{.TypeLiteral}})[index].Dynamic();

		public static bool TryGet(WindowControl window, out int index)
		{
			index = window.App.GetFromTypeFullName({{.TypeLiteral}}).Select(e => e.Handle).ToList().IndexOf(window.Handle);
			return index != -1;
		}
{{end}}
{{define "app_root_text"}}		[WindowDriverIdentify(WindowText = {{.TextLiteral}})]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app)
			=> app.WaitForIdentifyFromWindowText({{.TextLiteral}}).Dynamic();
{{end}}
{{define "app_root_text_many"}}		[WindowDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, int index)
			=> app.GetFromWindowText({{.TextLiteral}})[index].Dynamic();

		public static bool TryGet(WindowControl window, out int index)
		{
			index = window.App.GetFromWindowText({{.TextLiteral}}).Select(e => e.Handle).ToList().IndexOf(window.Handle);
			return index != -1;
		}
{{end}}
{{define "app_root_variable_text"}}		[WindowDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, string text)
			=> app.WaitForIdentifyFromWindowText(text).Dynamic();

		public static bool TryGet(WindowControl window, out string text)
		{
			text = window.GetWindowText();
			return window.TypeFullName == {{.TypeLiteral}};
		}
{{end}}
{{define "app_root_custom"}}		[WindowDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, T identifier)
		{
			//TODO
		}

		public static bool TryGet(WindowControl window, out T identifier)
		{
			//TODO
		}
{{end}}
{{define "app_embedded_type"}}		[UserControlDriverIdentify]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app)
			=> app.GetTopLevelWindows().SelectMany(e => e.GetFromTypeFullName({{.TypeLiteral}})).SingleOrDefault()?.Dynamic();
{{end}}
{{define "app_embedded_type_many"}}		[UserControlDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, int index)
			=> app.GetTopLevelWindows().SelectMany(e => e.GetFromTypeFullName({{.TypeLiteral}})).ToArray()[index].Dynamic();

		public static void TryGet(this WindowsAppFriend app, out int[] indices)
			=> indices = Enumerable.Range(0, app.GetTopLevelWindows().Sum(e => e.GetFromTypeFullName({{.TypeLiteral}}).Length)).ToArray();
{{end}}
{{define "app_embedded_custom"}}		[UserControlDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this WindowsAppFriend app, T identifier)
		{
			//TODO
		}

		public static void TryGet(this WindowsAppFriend app, out T[] identifiers)
		{
			//TODO
		}
{{end}}
{{define "parent_type"}}		[UserControlDriverIdentify]
		public static {{.ClassName}} {{.FuncName}}(this {{.Parent}} parent)
			=> parent.Core.GetFromTypeFullName({{.TypeLiteral}}).SingleOrDefault()?.Dynamic();
{{end}}
{{define "parent_type_many"}}		[UserControlDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this {{.Parent}} parent, int index)
			=> parent.Core.GetFromTypeFullName({{.TypeLiteral}})[index].Dynamic();

		public static void TryGet(this {{.Parent}} parent, out int[] indices)
			=> indices = Enumerable.Range(0, parent.Core.GetFromTypeFullName({{.TypeLiteral}}).Length).ToArray();
{{end}}
{{define "parent_custom"}}		[UserControlDriverIdentify(CustomMethod = "TryGet")]
		public static {{.ClassName}} {{.FuncName}}(this {{.Parent}} parent, T identifier)
		{
			//TODO
		}

		public static void TryGet(this {{.Parent}} parent, out T identifier)
		{
			//TODO
		}
{{end}}`))
