package guidoc

import (
	"fmt"
	"time"
)

// DefaultMethodName is the name used for the generated method when the
// options leave it empty.
const DefaultMethodName = "_build_widgets"

// Options configure a single Compile call. The zero value is usable: the
// method name, parent reference, and timestamp source fall back to
// defaults, grid sections are skipped, and kinds are never qualified.
type Options struct {
	MethodName    string           // generated method name, default DefaultMethodName
	Parent        string           // parent reference for top-level widgets, default "self"
	LibPrefix     string           // library prefix for widget classes
	Context       string           // class or file name used in error messages
	Tables        TableParser      // table-markup collaborator; nil means unavailable
	RequireTables bool             // fail on grid sections that yield no table
	Resolver      Resolver         // answers symbol-existence queries for prefixing
	Now           func() time.Time // timestamp source, default time.Now
}

// menuTree is a parsed menu section with its resolved menu name.
type menuTree struct {
	name  string
	items []*MenuNode
}

// Compile transforms a layout spec into the text of a single generated
// method. The transform is pure and deterministic apart from the embedded
// timestamp, which the Now option isolates.
func Compile(spec string, opts Options) (string, error) {
	if opts.MethodName == "" {
		opts.MethodName = DefaultMethodName
	}
	if opts.Parent == "" {
		opts.Parent = "self"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	ctx := opts.Context
	if ctx == "" {
		ctx = "<layout>"
	}

	sections := splitSections(spec)

	// Parse every section before any structural checks, so a syntax error
	// in a later section surfaces ahead of section-count problems.
	var widgetForests [][]*WidgetNode
	var menus []menuTree
	var grids []*gridResult
	for _, s := range sections {
		switch s.Kind {
		case SectionWidgets:
			widgets, err := parseWidgetSection(s, ctx)
			if err != nil {
				return "", err
			}
			widgetForests = append(widgetForests, widgets)

		case SectionMenu:
			items, err := parseMenuSection(s, ctx)
			if err != nil {
				return "", err
			}
			name := s.Param
			if name == "" {
				name = defaultMenuName
			}
			menus = append(menus, menuTree{name: name, items: items})

		case SectionGrid:
			if opts.Tables == nil {
				if opts.RequireTables {
					return "", newGridParserError(ctx)
				}
				continue
			}
			table, err := opts.Tables.ParseTable(s.Lines)
			if err != nil {
				return "", &GridError{
					Context: ctx,
					Row:     -1,
					message: fmt.Sprintf("parsing grid section in %s: %v", ctx, err),
				}
			}
			if table == nil && opts.RequireTables {
				return "", &GridError{
					Context: ctx,
					Row:     -1,
					message: fmt.Sprintf("no table found in grid section in %s", ctx),
				}
			}
			g, err := extractGrid(s, table, ctx)
			if err != nil {
				return "", err
			}
			grids = append(grids, g)
		}
	}

	if len(widgetForests) == 0 && len(menus) == 0 {
		return "", newLayoutErrorf(ctx, "missing widget or menu section in layout for %s", ctx)
	}
	if len(widgetForests) > 1 {
		return "", newLayoutErrorf(ctx, "multiple widget sections found in layout for %s", ctx)
	}

	var body []string

	if len(widgetForests) == 1 {
		widgets := widgetForests[0]
		if err := applyGrids(widgets, grids, ctx); err != nil {
			return "", err
		}
		if err := validateManagers(indexContainers(widgets, nil), ctx); err != nil {
			return "", err
		}

		em := &emitter{prefix: opts.LibPrefix, resolver: opts.Resolver}
		em.widgetSection(widgets, opts.Parent)
		body = em.lines
	}

	for _, m := range menus {
		body = append(body, "")
		em := &emitter{prefix: opts.LibPrefix, resolver: opts.Resolver}
		em.menuSection(m.name, m.items, opts.Parent)
		body = append(body, em.lines...)
	}

	return wrapMethod(opts.MethodName, body, opts.Now()), nil
}
