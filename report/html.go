// Package report writes the HTML report bundling summary statistics with
// the generated figures.
package report

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nanoplot_go/nanoplotter"
	"nanoplot_go/summary"
)

// Dataset labels one column of the summary table.
type Dataset struct {
	Name  string
	Stats summary.Stats
}

// WriteHTMLReport renders the statistics table and every figure into
// filename.html. Figures that cannot be embedded are replaced by a notice
// instead of failing the whole report.
func WriteHTMLReport(filename, title string, datasets []Dataset, plots []*nanoplotter.Plot) error {
	f, err := os.Create(filename + ".html")
	if err != nil {
		return err
	}
	defer f.Close()

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>%s</h1>
%s%s</body>
</html>`,
		title,
		title,
		statsTable(datasets),
		plotSections(plots),
	)

	_, err = f.WriteString(html)
	return err
}

func statsTable(datasets []Dataset) string {
	if len(datasets) == 0 {
		return ""
	}
	p := message.NewPrinter(language.English)
	var b strings.Builder
	b.WriteString("\t<table>\n\t\t<tr><th>Metric</th>")
	for _, d := range datasets {
		fmt.Fprintf(&b, "<th>%s</th>", d.Name)
	}
	b.WriteString("</tr>\n")

	row := func(name string, cell func(s summary.Stats) string) {
		fmt.Fprintf(&b, "\t\t<tr><td>%s</td>", name)
		for _, d := range datasets {
			fmt.Fprintf(&b, "<td>%s</td>", cell(d.Stats))
		}
		b.WriteString("</tr>\n")
	}
	row("Number of reads", func(s summary.Stats) string { return p.Sprintf("%d", s.Reads) })
	row("Total bases", func(s summary.Stats) string { return p.Sprintf("%.0f", s.TotalBases) })
	row("Median read length", func(s summary.Stats) string { return p.Sprintf("%.1f", s.MedianLength) })
	row("Mean read length", func(s summary.Stats) string { return p.Sprintf("%.1f", s.MeanLength) })
	row("Max read length", func(s summary.Stats) string { return p.Sprintf("%.0f", s.MaxLength) })
	row("Read length N50", func(s summary.Stats) string { return p.Sprintf("%.0f", s.N50) })
	if anyQuals(datasets) {
		row("Mean read quality", func(s summary.Stats) string { return qualCell(p, s.MeanQual) })
		row("Median read quality", func(s summary.Stats) string { return qualCell(p, s.MedianQual) })
	}
	b.WriteString("\t</table>\n")
	return b.String()
}

// anyQuals reports whether at least one dataset carries quality scores;
// without them the quality rows are left out entirely.
func anyQuals(datasets []Dataset) bool {
	for _, d := range datasets {
		if d.Stats.MeanQual > 0 {
			return true
		}
	}
	return false
}

func qualCell(p *message.Printer, v float64) string {
	if v == 0 {
		return "-"
	}
	return p.Sprintf("%.1f", v)
}

func plotSections(plots []*nanoplotter.Plot) string {
	var b strings.Builder
	for _, plot := range plots {
		fmt.Fprintf(&b, "\t<h2>%s</h2>\n", plot.Title)
		embedded, err := plot.Encode()
		if err != nil {
			embedded = "<p>Graph unavailable</p>"
		}
		fmt.Fprintf(&b, "\t<div>%s</div>\n", embedded)
	}
	return b.String()
}
