package commands

import (
	"cmp"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	portfolioentity "portfolio_backend/internal/feature/portfolio/domain/entity"
	statusentity "portfolio_backend/internal/feature/publicstatus/domain/entity"
	publichandler "portfolio_backend/internal/feature/publicstatus/transport/handler"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// renderAnalysis prints recurring companies by count (then name) followed by any failures.
func renderAnalysis(w io.Writer, report *portfolioentity.AnalysisReport) {
	names := make([]string, 0, len(report.Recurring))
	for name := range report.Recurring {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(report.Recurring[b], report.Recurring[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t := newTable(w)
	t.SetTitle("Recurring AI companies (run %s)", report.RunID)
	t.AppendHeader(table.Row{"Company", "Portfolios"})
	for _, name := range names {
		t.AppendRow(table.Row{name, report.Recurring[name]})
	}
	t.AppendFooter(table.Row{"Sources scanned", report.SourcesScanned})
	t.Render()

	if len(report.Failures) == 0 {
		return
	}
	f := newTable(w)
	f.SetTitle("Failures")
	f.AppendHeader(table.Row{"Source", "Company", "Stage", "Message"})
	for _, fail := range report.Failures {
		f.AppendRow(table.Row{fail.Source, fail.Company, fail.Stage, fail.Message})
	}
	f.Render()
}

// renderPublic prints public companies in rank order and the names whose status is unknown.
func renderPublic(w io.Writer, report *statusentity.StatusReport) {
	t := newTable(w)
	t.SetTitle("Public portfolio companies")
	t.AppendHeader(table.Row{"#", "Company", "Portfolio appearances", "Status"})
	for i, s := range publichandler.Summarize(report.Companies) {
		t.AppendRow(table.Row{i + 1, s.Company, s.PortfolioAppearances, s.PublicStatus})
	}
	t.Render()

	if len(report.Unknown) == 0 {
		return
	}
	u := newTable(w)
	u.SetTitle("Status unknown")
	u.AppendHeader(table.Row{"Company"})
	for _, name := range report.Unknown {
		u.AppendRow(table.Row{name})
	}
	u.Render()
}
