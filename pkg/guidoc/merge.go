package guidoc

import (
	"strconv"
	"strings"
)

// gridManager is the layout manager assigned to children of grid-bound
// containers; packManager is the default for everything else.
const (
	gridManager = "grid"
	packManager = "pack"
)

// indexWidgets builds a name-to-node index over the whole tree. Widget
// names are lookup keys, so a duplicate is a structural error.
func indexWidgets(widgets []*WidgetNode, index map[string]*WidgetNode, context string) error {
	for _, w := range widgets {
		if _, dup := index[w.Name]; dup {
			return newLayoutErrorf(context, "duplicate widget name %q in layout for %s", w.Name, context)
		}
		index[w.Name] = w
		if err := indexWidgets(w.Children, index, context); err != nil {
			return err
		}
	}
	return nil
}

// container pairs a parent widget (nil for the root) with its direct
// children.
type container struct {
	node  *WidgetNode
	group []*WidgetNode
}

// indexContainers collects every sibling group in the tree, pre-order,
// starting with the root group.
func indexContainers(widgets []*WidgetNode, parent *WidgetNode) []container {
	list := []container{{parent, widgets}}
	for _, w := range widgets {
		if len(w.Children) > 0 {
			list = append(list, indexContainers(w.Children, w)...)
		}
	}
	return list
}

// applyGrids reconciles grid extraction results with the widget tree:
// children of grid-bound containers switch to the grid manager, table
// coordinates merge into their layout parameters, and children without
// explicit coordinates are placed on fresh rows below the last used one.
func applyGrids(widgets []*WidgetNode, grids []*gridResult, context string) error {
	index := make(map[string]*WidgetNode)
	if err := indexWidgets(widgets, index, context); err != nil {
		return err
	}

	// Associate each grid with its container's children. A grid naming an
	// unknown container is ignored; a later grid for the same container
	// replaces an earlier one.
	type binding struct {
		group []*WidgetNode
		grid  *gridResult
	}
	var order []string
	bindings := make(map[string]binding)
	for _, g := range grids {
		var group []*WidgetNode
		switch {
		case g.container == "":
			group = widgets
		case index[g.container] != nil:
			group = index[g.container].Children
		default:
			continue
		}
		if _, ok := bindings[g.container]; !ok {
			order = append(order, g.container)
		}
		bindings[g.container] = binding{group, g}
	}

	for _, key := range order {
		for _, c := range bindings[key].group {
			if c.LayoutMgr == "" {
				c.LayoutMgr = gridManager
			}
		}
	}

	for _, key := range order {
		b := bindings[key]
		for _, c := range b.group {
			gc, ok := b.grid.cells[c.Name]
			if !ok || c.LayoutMgr != gridManager {
				continue
			}
			c.LayoutParams.Set("row", strconv.Itoa(gc.row))
			c.LayoutParams.Set("column", strconv.Itoa(gc.column))
			if gc.columnSpan > 0 {
				c.LayoutParams.Set("columnspan", strconv.Itoa(gc.columnSpan))
			}
			if gc.rowSpan > 0 {
				c.LayoutParams.Set("rowspan", strconv.Itoa(gc.rowSpan))
			}
		}
	}

	for _, key := range order {
		b := bindings[key]
		maxRow := -1
		haveRow := false
		for _, c := range b.group {
			v, ok := c.LayoutParams.Get("row")
			if !ok {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return newLayoutErrorf(context, "could not determine number of rows in grid for %s", context)
			}
			haveRow = true
			if n > maxRow {
				maxRow = n
			}
		}
		if !haveRow {
			return newLayoutErrorf(context, "could not determine number of rows in grid for %s", context)
		}

		nextRow := maxRow + 1
		for _, c := range b.group {
			if c.LayoutMgr != gridManager {
				continue
			}
			if !c.LayoutParams.Has("row") {
				c.LayoutParams.Set("row", strconv.Itoa(nextRow))
				nextRow++
			}
			if !c.LayoutParams.Has("column") {
				c.LayoutParams.Set("column", "0")
			}
		}
	}

	return nil
}

// validateManagers checks that every sibling group resolves to a single
// layout manager, defaulting unset managers to pack for the comparison.
func validateManagers(containers []container, context string) error {
	for _, c := range containers {
		if len(c.group) == 0 {
			continue
		}
		var managers []string
		seen := make(map[string]bool)
		for _, w := range c.group {
			mgr := w.LayoutMgr
			if mgr == "" {
				mgr = packManager
			}
			if !seen[mgr] {
				seen[mgr] = true
				managers = append(managers, mgr)
			}
		}
		if len(managers) > 1 {
			name := "self"
			if c.node != nil {
				name = c.node.Name
			}
			return newLayoutErrorf(context,
				"mismatched layout managers in layout for %s\n\tcontainer %q has: %s",
				context, name, strings.Join(managers, ", "))
		}
	}
	return nil
}
