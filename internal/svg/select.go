package svg

// Collect gathers the ids of operable elements reachable from roots.
// With recursive set, groups are descended without a depth limit; off,
// only the direct children of a selected group are considered. A root
// that is itself operable is always included. Elements without an id
// are skipped: the editor's command verbs can only address ids.
func Collect(roots []*Element, recursive bool) []string {
	var ids []string
	for _, root := range roots {
		if recursive {
			ids = collectRecursive(root, ids)
		} else {
			ids = collectShallow(root, ids)
		}
	}
	return ids
}

func collectRecursive(e *Element, ids []string) []string {
	if e.IsGroup() {
		for _, child := range e.Children {
			ids = collectRecursive(child, ids)
		}
	} else if e.IsOperable() {
		if id := e.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func collectShallow(e *Element, ids []string) []string {
	if e.IsGroup() {
		for _, child := range e.Children {
			if child.IsOperable() {
				if id := child.ID(); id != "" {
					ids = append(ids, id)
				}
			}
		}
	} else if e.IsOperable() {
		if id := e.ID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
