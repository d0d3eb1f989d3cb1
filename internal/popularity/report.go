package popularity

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

type ReportOptions struct {
	// Top is how many results are listed, values <= 0 mean DefaultTop.
	Top int
	// Table renders the listed results as a table instead of one sentence per line.
	Table bool
}

func (o ReportOptions) top() int {
	if o.Top <= 0 {
		return DefaultTop
	}
	return o.Top
}

// Report writes the leading results of `ranked` followed by how many names
// no result was found for.
func Report(out io.Writer, ranked []Result, opts ReportOptions) error {
	top := Top(ranked, opts.top())

	_, err := fmt.Fprint(out, "\nThe most popular mathematicians are:\n\n")
	if err != nil {
		return err
	}

	if opts.Table {
		err = writeTable(out, top)
	} else {
		err = writeLines(out, top)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		out,
		"\nBut we did not find results for %d mathematicians on the list\n",
		CountNoResult(ranked),
	)
	return err
}

func writeLines(out io.Writer, results []Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(out, "%s with %d pageviews\n", r.Name, r.Hits)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTable(out io.Writer, results []Result) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Rank", "Name", "Pageviews"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, r.Name, r.Hits})
	}
	_, err := fmt.Fprintln(out, t.Render())
	return err
}
