// Package pathops applies a boolean path operation between the
// top-most element of a selection and every other operable element,
// by replaying the editor's command verbs over a working copy of the
// document in fixed-size batches.
package pathops

import "strings"

// Operation names a boolean path operation. Friendly names map to the
// editor's selection verbs; anything else is passed through as a raw
// verb so new editor versions need no tool change.
type Operation string

const (
	Difference   Operation = "difference"
	Union        Operation = "union"
	Intersection Operation = "intersection"
	Exclusion    Operation = "exclusion"
	Division     Operation = "division"
	CutPath      Operation = "cut-path"
	Combine      Operation = "combine"
)

var verbs = map[Operation]string{
	Difference:   "SelectionDiff",
	Union:        "SelectionUnion",
	Intersection: "SelectionIntersect",
	Exclusion:    "SelectionSymDiff",
	Division:     "SelectionDivide",
	CutPath:      "SelectionCutPath",
	Combine:      "SelectionCombine",
}

// Verb returns the editor verb for the operation. Unknown names are
// assumed to already be verbs.
func (op Operation) Verb() string {
	if verb, ok := verbs[Operation(strings.ToLower(string(op)))]; ok {
		return verb
	}
	return string(op)
}

// Known reports whether the operation is one of the named aliases.
func (op Operation) Known() bool {
	_, ok := verbs[Operation(strings.ToLower(string(op)))]
	return ok
}

// Operations returns the friendly operation names, for help text.
func Operations() []string {
	return []string{
		string(Difference), string(Union), string(Intersection),
		string(Exclusion), string(Division), string(CutPath),
		string(Combine),
	}
}
