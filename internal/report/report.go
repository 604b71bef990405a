// Package report renders script run reports for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/linkcut/internal/script"
)

const (
	msgPass = "PASS"
	msgFail = "FAIL"

	dash = "-"
)

// Writer renders reports to one output.
type Writer struct {
	out     io.Writer
	maxRows int
}

// New returns a Writer printing to out. maxRows caps the step table; zero
// or negative means no cap.
func New(out io.Writer, maxRows int) *Writer {
	return &Writer{out: out, maxRows: maxRows}
}

// Steps prints one row per recorded result.
func (w *Writer) Steps(rep *script.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "Operation", "Got", "Expect", "Oracle", "Status"})

	rows := rep.Results
	if w.maxRows > 0 && len(rows) > w.maxRows {
		rows = rows[:w.maxRows]
	}
	for _, res := range rows {
		tbl.AppendRow(table.Row{
			res.Step,
			res.Op.String(),
			res.Got.String(),
			optional(res.Op.Expect),
			optional(res.Oracle),
			status(res.Status),
		})
	}
	if hidden := len(rep.Results) - len(rows); hidden > 0 {
		tbl.AppendFooter(table.Row{"", fmt.Sprintf("%s more rows", humanize.Comma(int64(hidden)))})
	}
	tbl.Render()
}

// Counts prints how many operations of each kind ran.
func (w *Writer) Counts(rep *script.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w.out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Operation", "Count"})
	for _, k := range script.Kinds {
		if n := rep.Counts[k]; n > 0 {
			tbl.AppendRow(table.Row{string(k), humanize.Comma(int64(n))})
		}
	}
	tbl.AppendFooter(table.Row{"Total", humanize.Comma(int64(rep.Steps))})
	tbl.Render()
}

// Summary prints a one-line verdict followed by throughput.
func (w *Writer) Summary(rep *script.Report) {
	name := rep.Name
	if name == "" {
		name = "script"
	}
	verdict := color.New(color.FgGreen).Sprint(msgPass)
	if !rep.OK() {
		verdict = color.New(color.FgRed, color.Bold).Sprint(msgFail)
	}

	fmt.Fprintf(w.out, "%s %s: %s ops on %s vertices (%s), %s accepted, %s rejected",
		verdict, name,
		humanize.Comma(int64(rep.Steps)), humanize.Comma(int64(rep.Vertices)), rep.Operator,
		humanize.Comma(int64(rep.Accepted)), humanize.Comma(int64(rep.Rejected)))
	if rep.Failed > 0 {
		fmt.Fprintf(w.out, ", %s", color.RedString("%d failed", rep.Failed))
	}
	if rep.Mismatched > 0 {
		fmt.Fprintf(w.out, ", %s", color.RedString("%d oracle mismatches", rep.Mismatched))
	}
	if rep.Verified && rep.Mismatched == 0 {
		fmt.Fprintf(w.out, ", %s", color.CyanString("oracle agreed"))
	}
	fmt.Fprintln(w.out)

	fmt.Fprintf(w.out, "  elapsed %s, %s ops/s\n",
		rep.Elapsed.Round(time.Microsecond), humanize.FormatFloat("#,###.", rep.Throughput()))
}

func optional(o *script.Outcome) string {
	if o == nil {
		return dash
	}

	return o.String()
}

func status(s script.Status) string {
	switch s {
	case script.StatusPass:
		return color.GreenString(string(s))
	case script.StatusMismatch:
		return color.New(color.FgRed, color.Bold).Sprint(string(s))
	default:
		return color.RedString(string(s))
	}
}
