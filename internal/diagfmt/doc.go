// Package diagfmt renders diag.Diagnostic values as human-readable
// reports: a "<path>:<line>:<col>: <severity> <code>: <message>" header
// followed by the offending source line and a caret underline. Color is
// optional and gated on whether the destination is a terminal.
package diagfmt
