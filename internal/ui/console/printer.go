package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/search"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var highlightColors = text.Colors{text.FgRed, text.Bold}

// Printer writes matches to Out in the order given.
type Printer struct {
	Out         io.Writer
	Format      string
	LineNumbers bool
	Count       bool
	// Highlight colors occurrences of Query inside each printed line.
	Highlight bool
	Query     string
	Policy    search.CasePolicy
}

func (p *Printer) Print(matches []search.Match) error {
	if p.Count {
		_, err := fmt.Fprintln(p.Out, len(matches))
		return err
	}
	if p.Format == config.FormatTable {
		_, err := io.WriteString(p.Out, p.renderTable(matches))
		return err
	}
	var b strings.Builder
	for _, m := range matches {
		if p.LineNumbers {
			b.WriteString(strconv.Itoa(m.LineNum))
			b.WriteByte(':')
		}
		b.WriteString(p.decorate(m.Line))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.Out, b.String())
	return err
}

func (p *Printer) renderTable(matches []search.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	if p.LineNumbers {
		tw.AppendHeader(table.Row{"Line", "Text"})
	} else {
		tw.AppendHeader(table.Row{"Text"})
	}
	for _, m := range matches {
		if p.LineNumbers {
			tw.AppendRow(table.Row{m.LineNum, p.decorate(m.Line)})
		} else {
			tw.AppendRow(table.Row{p.decorate(m.Line)})
		}
	}
	return tw.Render() + "\n"
}

func (p *Printer) decorate(line string) string {
	if !p.Highlight {
		return line
	}
	return highlight(line, p.Query, p.Policy)
}

// highlight wraps every non-overlapping occurrence of query in line.
// Lines whose lowercase form changes byte length are returned as is,
// since offsets in the folded copy would not map back.
func highlight(line, query string, policy search.CasePolicy) string {
	if query == "" {
		return line
	}
	hay := line
	if policy == search.Insensitive {
		hay = strings.ToLower(line)
		query = strings.ToLower(query)
		if len(hay) != len(line) {
			return line
		}
	}
	var b strings.Builder
	pos := 0
	for {
		i := strings.Index(hay[pos:], query)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(query)
		b.WriteString(line[pos:start])
		b.WriteString(highlightColors.Sprint(line[start:end]))
		pos = end
	}
	b.WriteString(line[pos:])
	return b.String()
}
