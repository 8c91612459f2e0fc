// Package report presents the result of an island discovery run.
//
// Measure times island.Find the way the command-line tool does and condenses
// the outcome into a Summary; Fprint and FprintIslands write it as text with
// thousands separators. View draws a grid and its island boxes onto a
// tcell.Screen and lets the user scroll around large maps.
//
// Nothing here feeds back into discovery: report only consumes the island
// sequence and its length.
package report
