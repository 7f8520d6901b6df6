package guidoc

import (
	"errors"
	"testing"
)

func TestParseWidgetLine(t *testing.T) {
	type tc struct {
		input    string
		expected *WidgetNode
		wantErr  error
	}

	tests := map[string]tc{
		"bare widget": {
			input:    "btnA(Button)",
			expected: &WidgetNode{Name: "btnA", Kind: "Button"},
		},
		"constructor args": {
			input:    "btnA(Button | text='Button A')",
			expected: &WidgetNode{Name: "btnA", Kind: "Button", Args: "text='Button A'"},
		},
		"dotted kind": {
			input:    "tree(ttk.Treeview)",
			expected: &WidgetNode{Name: "tree", Kind: "ttk.Treeview"},
		},
		"layout clause": {
			input: "chkA(Checkbutton | text='Option A') <grid | row=4>",
			expected: &WidgetNode{
				Name: "chkA", Kind: "Checkbutton", Args: "text='Option A'",
				LayoutMgr: "grid",
				LayoutParams: paramsOf(t,
					"row", "4",
				),
			},
		},
		"layout clause without params": {
			input:    "x(Foo|) <grid|>",
			expected: &WidgetNode{Name: "x", Kind: "Foo", LayoutMgr: "grid"},
		},
		"empty args with packed layout clause": {
			input: "x(Foo|) <grid|row=2,column=1>",
			expected: &WidgetNode{
				Name: "x", Kind: "Foo", LayoutMgr: "grid",
				LayoutParams: paramsOf(t,
					"row", "2",
					"column", "1",
				),
			},
		},
		"layout manager only": {
			input:    "frm(Frame) <pack>",
			expected: &WidgetNode{Name: "frm", Kind: "Frame", LayoutMgr: "pack"},
		},
		"multiple layout params": {
			input: "lblStatus(Label | relief='sunken') <grid | padx=3, pady=3, sticky='nsew'>",
			expected: &WidgetNode{
				Name: "lblStatus", Kind: "Label", Args: "relief='sunken'",
				LayoutMgr: "grid",
				LayoutParams: paramsOf(t,
					"padx", "3",
					"pady", "3",
					"sticky", "'nsew'",
				),
			},
		},
		"missing parens": {
			input:   "btnA Button",
			wantErr: &WidgetError{Context: "Demo", Line: "btnA Button"},
		},
		"unbalanced layout clause": {
			input:   "btnA(Button) <grid",
			wantErr: &WidgetError{Context: "Demo", Line: "btnA(Button) <grid"},
		},
		"bad layout params": {
			input:   "btnA(Button) <grid | row>",
			wantErr: &ParameterError{Context: "Demo", Params: "row"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseWidgetLine(tc.input, "Demo")

			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("parseWidgetLine(%q) succeeded, want error %v", tc.input, tc.wantErr)
				}
				if err.Error() != tc.wantErr.Error() {
					t.Errorf("parseWidgetLine(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseWidgetLine(%q) returned error: %v", tc.input, err)
			}

			if got.Name != tc.expected.Name || got.Kind != tc.expected.Kind ||
				got.Args != tc.expected.Args || got.LayoutMgr != tc.expected.LayoutMgr {
				t.Errorf("parseWidgetLine(%q) = %+v, want %+v", tc.input, got, tc.expected)
			}

			wantPairs := ""
			if tc.expected.LayoutParams != nil {
				wantPairs = tc.expected.LayoutParams.Pairs()
			}
			if got.LayoutParams.Pairs() != wantPairs {
				t.Errorf("parseWidgetLine(%q) params = %q, want %q",
					tc.input, got.LayoutParams.Pairs(), wantPairs)
			}
		})
	}
}

func TestParseWidgetSectionNesting(t *testing.T) {
	sec := &Section{Kind: SectionWidgets, Name: "widgets", Lines: []string{
		"frmChoices(Frame)",
		"  optA(Radiobutton | value='foo')",
		"  optB(Radiobutton | value='bar')",
		"lblStatus(Label)",
	}}

	widgets, err := parseWidgetSection(sec, "Demo")
	if err != nil {
		t.Fatalf("parseWidgetSection returned error: %v", err)
	}

	if len(widgets) != 2 {
		t.Fatalf("got %d top-level widgets, want 2", len(widgets))
	}
	if widgets[0].Name != "frmChoices" || widgets[1].Name != "lblStatus" {
		t.Errorf("top-level widgets = %q, %q; want frmChoices, lblStatus",
			widgets[0].Name, widgets[1].Name)
	}
	if len(widgets[0].Children) != 2 {
		t.Fatalf("frmChoices has %d children, want 2", len(widgets[0].Children))
	}
	if widgets[0].Children[0].Name != "optA" || widgets[0].Children[1].Name != "optB" {
		t.Errorf("frmChoices children = %q, %q; want optA, optB",
			widgets[0].Children[0].Name, widgets[0].Children[1].Name)
	}
}

func TestParseWidgetSectionErrorType(t *testing.T) {
	sec := &Section{Kind: SectionWidgets, Name: "widgets", Lines: []string{"not a widget"}}

	_, err := parseWidgetSection(sec, "Demo")
	var werr *WidgetError
	if !errors.As(err, &werr) {
		t.Fatalf("parseWidgetSection error = %T, want *WidgetError", err)
	}
	if werr.Context != "Demo" || werr.Line != "not a widget" {
		t.Errorf("WidgetError = %+v, want Context Demo, Line 'not a widget'", werr)
	}
}

// paramsOf builds a Params from alternating key/value arguments.
func paramsOf(t *testing.T, kv ...string) *Params {
	t.Helper()
	if len(kv)%2 != 0 {
		t.Fatal("paramsOf needs key/value pairs")
	}
	p := NewParams()
	for i := 0; i < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}
