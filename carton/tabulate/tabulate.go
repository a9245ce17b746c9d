// Package tabulate builds and renders fixed-column tables with
// display-width-aware alignment.
//
// Cells are left-justified and padded to the widest entry seen in their
// column; there is no wrapping or column splitting.
package tabulate

import (
	"fmt"
	"io"
	"strings"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/panics"
	"github.com/yyc12345/YYCCommonplace-sub000/carton/wcwidth"
)

// defaultBar is the separator bar text.
const defaultBar = "---"

// Cell is a table cell with its display width computed at construction.
type Cell struct {
	text  string
	width int
}

func newCell(text string) Cell {
	w, err := wcwidth.Wcswidth(text)
	if err != nil {
		w = 0
	}
	return Cell{text: text, width: w}
}

// Text returns the cell's text.
func (c Cell) Text() string { return c.text }

// Width returns the cell's display width.
func (c Cell) Width() int { return c.width }

// widths tracks per-column maximum display widths. Updates are
// monotonic: a column's width never decreases except through clear.
type widths struct {
	cols []int
}

func newWidths(n int) widths {
	return widths{cols: make([]int, n)}
}

func (w *widths) update(column, size int) {
	if size > w.cols[column] {
		w.cols[column] = size
	}
}

func (w *widths) clear() {
	for i := range w.cols {
		w.cols[i] = 0
	}
}

// Tabulate is a fixed-column table builder and renderer.
type Tabulate struct {
	n             int
	headerDisplay bool
	barDisplay    bool
	prefix        string
	rowsWidths    widths
	headerWidths  widths
	header        []Cell
	bar           Cell
	rows          [][]Cell
}

// New creates a table with n columns. Header and bar are shown by
// default; the bar text defaults to "---".
func New(n int) *Tabulate {
	header := make([]Cell, n)
	for i := range header {
		header[i] = newCell("")
	}
	return &Tabulate{
		n:             n,
		headerDisplay: true,
		barDisplay:    true,
		rowsWidths:    newWidths(n),
		headerWidths:  newWidths(n),
		header:        header,
		bar:           newCell(defaultBar),
	}
}

// ColumnCount returns the fixed column count.
func (t *Tabulate) ColumnCount() int { return t.n }

// ShowHeader toggles header visibility.
func (t *Tabulate) ShowHeader(show bool) { t.headerDisplay = show }

// ShowBar toggles separator bar visibility.
func (t *Tabulate) ShowBar(show bool) { t.barDisplay = show }

// SetPrefix sets the string written before every rendered line.
func (t *Tabulate) SetPrefix(prefix string) { t.prefix = prefix }

// SetBar sets the separator bar text.
func (t *Tabulate) SetBar(bar string) { t.bar = newCell(bar) }

// SetHeader replaces the header row. The header width tracker is
// recomputed from scratch. len(header) must equal the column count.
func (t *Tabulate) SetHeader(header []string) {
	if len(header) != t.n {
		panics.Panicf("tabulate: header size %d does not match column count %d", len(header), t.n)
	}
	t.header = t.header[:0]
	t.headerWidths.clear()
	for i, item := range header {
		cell := newCell(item)
		t.header = append(t.header, cell)
		t.headerWidths.update(i, cell.width)
	}
}

// AddRow appends a data row. len(row) must equal the column count.
func (t *Tabulate) AddRow(row []string) {
	if len(row) != t.n {
		panics.Panicf("tabulate: row size %d does not match column count %d", len(row), t.n)
	}
	cells := make([]Cell, 0, len(row))
	for i, item := range row {
		cell := newCell(item)
		cells = append(cells, cell)
		t.rowsWidths.update(i, cell.width)
	}
	t.rows = append(t.rows, cells)
}

// Clear removes all data rows and resets the data width tracker. The
// header is untouched.
func (t *Tabulate) Clear() {
	t.rows = nil
	t.rowsWidths.clear()
}

// saturatingSub keeps the pad size at zero when a width tracker was
// never updated (header hidden, for example).
func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// Print renders the table to dst.
func (t *Tabulate) Print(dst io.Writer) error {
	// Effective widths depend on which decorations are shown.
	final := newWidths(t.n)
	copy(final.cols, t.rowsWidths.cols)
	if t.headerDisplay {
		for i := range final.cols {
			final.update(i, t.headerWidths.cols[i])
		}
	}
	if t.barDisplay {
		for i := range final.cols {
			final.update(i, t.bar.width)
		}
	}

	// One space run long enough to pad any column.
	maxSpace := 1
	for _, w := range final.cols {
		if w > maxSpace {
			maxSpace = w
		}
	}
	spaces := strings.Repeat(" ", maxSpace)

	writeRow := func(cells []Cell) error {
		if _, err := io.WriteString(dst, t.prefix); err != nil {
			return err
		}
		for i, cell := range cells {
			pad := saturatingSub(final.cols[i], cell.width)
			if _, err := fmt.Fprintf(dst, "%s%s ", cell.text, spaces[:pad]); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(dst)
		return err
	}

	if t.headerDisplay {
		if err := writeRow(t.header); err != nil {
			return err
		}
	}
	if t.barDisplay {
		barRow := make([]Cell, t.n)
		for i := range barRow {
			barRow[i] = t.bar
		}
		if err := writeRow(barRow); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}
