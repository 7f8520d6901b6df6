package guidoc

// Resolver answers whether a library prefix exposes a symbol of a given
// name. It stands in for live namespace introspection: kinds are qualified
// with the prefix only on demonstrated existence, and code generation
// never inspects ambient state.
type Resolver interface {
	HasSymbol(prefix, symbol string) bool
}

// SymbolTable is a static Resolver backed by a prefix-to-symbol-set map.
type SymbolTable map[string]map[string]bool

// HasSymbol implements Resolver.
func (t SymbolTable) HasSymbol(prefix, symbol string) bool {
	return t[prefix][symbol]
}

// tkWidgetNames are the widget and window classes of the standard Tk
// namespace.
var tkWidgetNames = []string{
	"Button", "Canvas", "Checkbutton", "Entry", "Frame", "Label",
	"LabelFrame", "Listbox", "Menu", "Menubutton", "Message", "OptionMenu",
	"PanedWindow", "Radiobutton", "Scale", "Scrollbar", "Spinbox", "Text",
	"Tk", "Toplevel",
}

// TkSymbols returns a SymbolTable exposing the standard Tk widget classes
// under the given prefix.
func TkSymbols(prefix string) SymbolTable {
	syms := make(map[string]bool, len(tkWidgetNames))
	for _, s := range tkWidgetNames {
		syms[s] = true
	}
	return SymbolTable{prefix: syms}
}
