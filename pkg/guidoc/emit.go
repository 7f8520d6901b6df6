package guidoc

import (
	"fmt"
	"strings"
	"time"
)

// defaultMenuName is the reserved menu identifier that triggers automatic
// attachment of the generated menu to the owning window.
const defaultMenuName = "menubar"

// emitter walks finished widget and menu trees and collects generated
// statements in a fixed pre-order.
type emitter struct {
	lines    []string
	prefix   string // library prefix as supplied by the caller
	resolver Resolver
}

func (e *emitter) emit(line string) {
	e.lines = append(e.lines, line)
}

func (e *emitter) emitf(format string, args ...any) {
	e.lines = append(e.lines, fmt.Sprintf(format, args...))
}

// qualifyKind prepends the library prefix to a widget kind, but only when
// the resolver confirms the prefix actually exposes that symbol.
func (e *emitter) qualifyKind(kind string) string {
	prefix := strings.TrimRight(e.prefix, ".")
	if prefix != "" && e.resolver != nil && e.resolver.HasSymbol(prefix, kind) {
		return prefix + "." + kind
	}
	return kind
}

// menuPrefix returns the library prefix for menu construction, normalized
// with a trailing dot, or "" when the prefix does not expose a Menu class.
func (e *emitter) menuPrefix() string {
	prefix := strings.TrimRight(e.prefix, ".")
	if prefix == "" || e.resolver == nil || !e.resolver.HasSymbol(prefix, "Menu") {
		return ""
	}
	return prefix + "."
}

// widgetSection emits the full widgets section: a heading comment followed
// by every widget in depth-first pre-order.
func (e *emitter) widgetSection(widgets []*WidgetNode, parent string) {
	e.emit("# Widgets")
	for _, w := range widgets {
		e.widgetCode(w, parent)
	}
}

// widgetCode emits construction and layout statements for one widget, then
// recurses into its children with the new instance as parent.
func (e *emitter) widgetCode(w *WidgetNode, parent string) {
	args := []string{parent}
	if strings.TrimSpace(w.Args) != "" {
		args = append(args, w.Args)
	}
	e.emitf("self.%s = %s(%s)", w.Name, e.qualifyKind(w.Kind), strings.Join(args, ", "))

	mgr := w.LayoutMgr
	if mgr == "" {
		mgr = packManager
	}
	e.emitf("self.%s.%s(%s)", w.Name, mgr, w.LayoutParams.Pairs())

	for _, c := range w.Children {
		e.widgetCode(c, "self."+w.Name)
	}
}

// menuSection emits one menu section: a heading comment, the root menu
// construction, all items, and — for the reserved default menu name — the
// conditional statements that attach the menu to the owning window at
// runtime.
func (e *emitter) menuSection(name string, items []*MenuNode, parent string) {
	prefix := e.menuPrefix()

	e.emitf("# Menu: %s", name)
	e.emitf("self.%s = %sMenu(%s, tearoff=0)", name, prefix, parent)
	e.menuItems(items, name, name, prefix)

	if name == defaultMenuName {
		e.emitf("if isinstance(self, %sToplevel):", prefix)
		e.emitf("  self.config(menu=self.%s)", name)
		e.emitf("elif isinstance(self.master, %sTk) or isinstance(self.master, %sToplevel):", prefix, prefix)
		e.emitf("  self.master.config(menu=self.%s)", name)
	}
}

// menuItems emits one level of a menu tree. Leaves become add_* calls on
// the parent menu; an item with children becomes a sub-menu that is filled
// first and then attached with a cascade entry.
func (e *emitter) menuItems(items []*MenuNode, menuName, parent, prefix string) {
	nextParent := parent
	for _, it := range items {
		if len(it.Children) > 0 {
			nextParent = menuName + it.Identifier()
			e.emitf("self.%s = %sMenu(self.%s, tearoff=0)", nextParent, prefix, parent)
		} else {
			e.menuLeaf(it, parent)
		}

		e.menuItems(it.Children, menuName, nextParent, prefix)

		if len(it.Children) > 0 {
			e.emitf("self.%s.add_cascade(%s, menu=self.%s)", parent, labelParams(it), nextParent)
		}
	}
}

// menuLeaf emits the add call for a childless menu item.
func (e *emitter) menuLeaf(it *MenuNode, parent string) {
	if it.Kind == MenuSeparator {
		e.emitf("self.%s.add_separator()", parent)
		return
	}

	method := "add_command"
	switch it.Kind {
	case MenuCheck:
		method = "add_checkbutton"
	case MenuRadio:
		method = "add_radiobutton"
	}

	delim := ""
	if strings.TrimSpace(it.Args) != "" {
		delim = ", "
	}
	e.emitf("self.%s.%s(%s%s%s)", parent, method, labelParams(it), delim, it.Args)
}

// labelParams renders the label and accelerator keyword arguments for a
// menu entry.
func labelParams(it *MenuNode) string {
	params := "label=" + pyRepr(it.Label)
	if it.Underline >= 0 {
		params += fmt.Sprintf(", underline=%d", it.Underline)
	}
	return params
}

// pyRepr quotes a string the way the target language's repr does: single
// quotes unless the text contains one and no double quote.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}

	var sb strings.Builder
	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote) || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// wrapMethod assembles the generated statements into a single method
// definition with a generation-time docstring. The body is indented two
// spaces; there is no trailing newline.
func wrapMethod(methodName string, body []string, ts time.Time) string {
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, fmt.Sprintf("def %s(self):", methodName))
	lines = append(lines, fmt.Sprintf(`  """Tk layout generated by guidoc on %s"""`,
		ts.Format("2006-01-02 15:04:05.000000")))
	for _, l := range body {
		lines = append(lines, "  "+l)
	}
	return strings.Join(lines, "\n")
}
