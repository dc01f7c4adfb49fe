package normalize

import "github.com/Razoric480/gdformat/internal/ast"

// annotations marks which argument-less annotations in a run are
// eligible for same-line promotion (spec §4.3: "promote single
// annotations with no arguments to the same line as the following
// declaration when they fit"). Only the last annotation directly
// above the declaration is a candidate: an earlier annotation in a
// multi-annotation run has another annotation, not the declaration,
// on the line below it, so promoting it would attach it to the wrong
// thing. Whether it actually fits the line budget is a layout-time
// decision the printer makes from this eligibility bit.
func annotations(list []ast.Annotation) {
	if len(list) == 0 {
		return
	}
	last := &list[len(list)-1]
	if len(last.Args) == 0 && last.Trailing == nil {
		last.SameLine = true
	}
}
