package relation

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const cellWidth = 15

// Render writes a deterministic fixed-width rendering of the table to w:
// a title line, the attribute header and every row as right-justified
// cells, bordered by separator lines sized to the attribute count.
func Render(w io.Writer, t *Table) {
	border := "|-" + strings.Repeat(strings.Repeat("-", cellWidth), t.schema.Arity()) + "-|"
	fmt.Fprintf(w, "\n Table %s\n", t.name)
	fmt.Fprintln(w, border)
	fmt.Fprint(w, "| ")
	for _, a := range t.schema.attrs {
		fmt.Fprintf(w, "%*s", cellWidth, a)
	}
	fmt.Fprintln(w, " |")
	fmt.Fprintln(w, border)
	for _, row := range t.rows {
		fmt.Fprint(w, "| ")
		for _, v := range row {
			fmt.Fprintf(w, "%*s", cellWidth, v)
		}
		fmt.Fprintln(w, " |")
	}
	fmt.Fprintln(w, border)
}

// Show renders the table to standard output.
func (t *Table) Show() {
	Render(os.Stdout, t)
}
