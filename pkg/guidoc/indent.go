package guidoc

import "strings"

// rootIndent marks the root frame, which accepts any dedent.
const rootIndent = -1

// buildIndentTree parses an indented list of text lines into a forest.
//
// parse converts one stripped line into a node and children exposes a
// node's child list so deeper lines can attach to it. Only relative
// indentation changes matter: a deeper line becomes a child of the
// previous node, a shallower line pops back to the nearest enclosing
// frame with smaller-or-equal indent. Irregular but monotonic
// indentation is accepted without error.
func buildIndentTree[N any](lines []string, context string,
	parse func(line, context string) (*N, error),
	children func(*N) *[]*N) ([]*N, error) {

	type frame struct {
		indent int
		level  *[]*N
	}

	var nodes []*N
	stack := []frame{{rootIndent, &nodes}}
	curIndent := rootIndent

	for _, l := range lines {
		stripped := strings.TrimLeft(l, " \t")
		nextIndent := len(l) - len(stripped)

		n, err := parse(strings.TrimRight(stripped, " \t"), context)
		if err != nil {
			return nil, err
		}

		switch {
		case curIndent == rootIndent || nextIndent == curIndent:
			level := stack[len(stack)-1].level
			*level = append(*level, n)
			curIndent = nextIndent

		case nextIndent > curIndent:
			level := stack[len(stack)-1].level
			last := (*level)[len(*level)-1]
			stack = append(stack, frame{nextIndent, children(last)})
			kids := stack[len(stack)-1].level
			*kids = append(*kids, n)
			curIndent = nextIndent

		default:
			for nextIndent < curIndent && len(stack) > 1 {
				stack = stack[:len(stack)-1]
				curIndent = stack[len(stack)-1].indent
				if curIndent == rootIndent {
					curIndent = nextIndent
				}
			}
			level := stack[len(stack)-1].level
			*level = append(*level, n)
		}
	}

	return nodes, nil
}
