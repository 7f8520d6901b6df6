// Package guidoc compiles compact GUI layout specs into the source text
// of a Tk widget-construction method.
//
// A spec is plain text split into sections by [name] headers. The
// implicit leading section lists widgets, one per line, with nesting by
// indentation:
//
//	btnA(Button | text='Button A')
//	frmChoices(Frame)
//	  optA(Radiobutton | value='foo') <pack | side='left'>
//
// A [grid] section carries a table (parsed by a pluggable TableParser)
// whose cell texts name widgets; cell positions and spans become grid
// coordinates on those widgets. A [menu] section describes a menu tree,
// again nested by indentation, with markers for check ([]) and radio (*)
// items, ---- separators, and '&' accelerator prefixes in labels.
//
// Compile ties the sections together and returns the full method text;
// Dump writes spec sources back out for inspection.
package guidoc
