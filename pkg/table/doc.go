/*
Package table lays out and renders bordered grids of styled text.

Rendering happens in three stages:

 1. ExtractCell normalizes each raw input (a string, CellOptions, a
    fmt.Stringer or a decoded map) into a Cell, resolving padding,
    alignment and border against the inherited row and table settings.
 2. Layout negotiates column widths. Cells too wide for their column's
    maximum, rows wider than the terminal and tables wider than the terminal
    are re-wrapped one cell at a time until nothing overflows.
 3. Render pads every line of every cell to its column width and writes the
    grid through output.WriteLine.

Table runs all three stages for a full Options value.
*/
package table
