// Package export writes drainage results for people and other tools: path
// tables as CSV or XLSX, per-path comparison scores as CSV, and a coloured
// PNG preview of a label grid. Path tables can also be read back, so the
// output of one run feeds the comparator of another.
package export
