package guidoc

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmitWidgetSection(t *testing.T) {
	opt := testWidget("optA", "")
	opt.Kind = "Radiobutton"
	opt.Args = "value='foo'"
	frm := &WidgetNode{
		Name: "frmChoices", Kind: "Frame", LayoutParams: NewParams(),
		Children: []*WidgetNode{opt},
	}
	btn := testWidget("btnA", "grid")
	btn.Args = "text='Button A'"
	btn.LayoutParams.Set("row", "0")
	btn.LayoutParams.Set("column", "1")

	em := &emitter{prefix: "tk", resolver: TkSymbols("tk")}
	em.widgetSection([]*WidgetNode{btn, frm}, "self")

	expected := []string{
		"# Widgets",
		"self.btnA = tk.Button(self, text='Button A')",
		"self.btnA.grid(row=0, column=1)",
		"self.frmChoices = tk.Frame(self)",
		"self.frmChoices.pack()",
		"self.optA = tk.Radiobutton(self.frmChoices, value='foo')",
		"self.optA.pack()",
	}
	if !reflect.DeepEqual(em.lines, expected) {
		t.Errorf("widgetSection lines:\n%s\nwant:\n%s",
			strings.Join(em.lines, "\n"), strings.Join(expected, "\n"))
	}
}

func TestQualifyKind(t *testing.T) {
	type tc struct {
		prefix   string
		resolver Resolver
		kind     string
		expected string
	}

	tests := map[string]tc{
		"known symbol": {
			prefix: "tk", resolver: TkSymbols("tk"),
			kind: "Button", expected: "tk.Button",
		},
		"unknown symbol stays bare": {
			prefix: "tk", resolver: TkSymbols("tk"),
			kind: "Treeview", expected: "Treeview",
		},
		"trailing dot normalized": {
			prefix: "tk.", resolver: TkSymbols("tk"),
			kind: "Button", expected: "tk.Button",
		},
		"empty prefix": {
			prefix: "", resolver: TkSymbols("tk"),
			kind: "Button", expected: "Button",
		},
		"nil resolver": {
			prefix: "tk", resolver: nil,
			kind: "Button", expected: "Button",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			em := &emitter{prefix: tc.prefix, resolver: tc.resolver}
			if got := em.qualifyKind(tc.kind); got != tc.expected {
				t.Errorf("qualifyKind(%q) = %q, want %q", tc.kind, got, tc.expected)
			}
		})
	}
}

func TestEmitMenuSection(t *testing.T) {
	open := &MenuNode{Label: "Open", Underline: 0, Args: "command=self.open"}
	sep := &MenuNode{Kind: MenuSeparator, Underline: -1}
	x := &MenuNode{Label: "x", Kind: MenuCheck, Underline: -1, Args: "variable=self.xVal"}
	props := &MenuNode{Label: "Property settings", Underline: 0, Children: []*MenuNode{x}}
	file := &MenuNode{Label: "File", Underline: 0, Children: []*MenuNode{open, sep, props}}

	em := &emitter{prefix: "tk", resolver: TkSymbols("tk")}
	em.menuSection("menubar", []*MenuNode{file}, "self")

	expected := []string{
		"# Menu: menubar",
		"self.menubar = tk.Menu(self, tearoff=0)",
		"self.menubarFile = tk.Menu(self.menubar, tearoff=0)",
		"self.menubarFile.add_command(label='Open', underline=0, command=self.open)",
		"self.menubarFile.add_separator()",
		"self.menubarProperty_settings = tk.Menu(self.menubarFile, tearoff=0)",
		"self.menubarProperty_settings.add_checkbutton(label='x', variable=self.xVal)",
		"self.menubarFile.add_cascade(label='Property settings', underline=0, menu=self.menubarProperty_settings)",
		"self.menubar.add_cascade(label='File', underline=0, menu=self.menubarFile)",
		"if isinstance(self, tk.Toplevel):",
		"  self.config(menu=self.menubar)",
		"elif isinstance(self.master, tk.Tk) or isinstance(self.master, tk.Toplevel):",
		"  self.master.config(menu=self.menubar)",
	}
	if !reflect.DeepEqual(em.lines, expected) {
		t.Errorf("menuSection lines:\n%s\nwant:\n%s",
			strings.Join(em.lines, "\n"), strings.Join(expected, "\n"))
	}
}

func TestEmitNamedMenuSkipsAttach(t *testing.T) {
	test := &MenuNode{Label: "Test", Underline: -1}

	em := &emitter{prefix: "tk", resolver: TkSymbols("tk")}
	em.menuSection("menuCtx", []*MenuNode{test}, "self")

	expected := []string{
		"# Menu: menuCtx",
		"self.menuCtx = tk.Menu(self, tearoff=0)",
		"self.menuCtx.add_command(label='Test')",
	}
	if !reflect.DeepEqual(em.lines, expected) {
		t.Errorf("menuSection lines:\n%s\nwant:\n%s",
			strings.Join(em.lines, "\n"), strings.Join(expected, "\n"))
	}
}

func TestPyRepr(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"plain":            {"Open", "'Open'"},
		"single quote":     {"it's", `"it's"`},
		"both quote kinds": {`it's "x"`, `'it\'s "x"'`},
		"backslash":        {`a\b`, `'a\\b'`},
		"newline and tab":  {"a\nb\tc", `'a\nb\tc'`},
		"empty":            {"", "''"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pyRepr(tc.input); got != tc.expected {
				t.Errorf("pyRepr(%q) = %s, want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestWrapMethod(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 250000000, time.UTC)
	got := wrapMethod("_build_widgets", []string{"# Widgets", "self.b = Button(self)"}, ts)

	expected := "def _build_widgets(self):\n" +
		`  """Tk layout generated by guidoc on 2024-03-01 10:30:00.250000"""` + "\n" +
		"  # Widgets\n" +
		"  self.b = Button(self)"
	if got != expected {
		t.Errorf("wrapMethod =\n%s\nwant:\n%s", got, expected)
	}
}
