package format

import "github.com/Razoric480/gdformat/internal/fmtconfig"

// CheckIdempotent formats code twice and reports whether the second
// pass reproduces the first byte-for-byte (spec §8: "formatting output
// is a fixed point"), modeled on the teacher's format.CheckRoundTrip
// shape but adapted to a literal comparison instead of re-parsing and
// comparing item kinds, since here the whole point is the output text
// itself, not just its shape.
func CheckIdempotent(code string, opts fmtconfig.Options) (ok bool, msg string) {
	first, err := Format(code, opts)
	if err != nil {
		return false, "idempotence-check: initial format failed: " + err.Error()
	}
	second, err := Format(first, opts)
	if err != nil {
		return false, "idempotence-check: second format failed: " + err.Error()
	}
	if first != second {
		return false, "idempotence-check: output changed on second pass"
	}
	return true, "idempotence-check: OK"
}
