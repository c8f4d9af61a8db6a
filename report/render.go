// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Niceman228/matrix-task-status-diagnostics/analysis"
	"github.com/Niceman228/matrix-task-status-diagnostics/deficit"
	"github.com/Niceman228/matrix-task-status-diagnostics/incidence"
)

// style isolates the markup differences between text and markdown.
type style interface {
	heading(sb *strings.Builder, title string)
	field(sb *strings.Builder, name, value string)
	block(sb *strings.Builder, body string)
	notice(sb *strings.Builder, n analysis.Notice)
	item(sb *strings.Builder, text string)
	code(text string) string
	gap(sb *strings.Builder)
}

type plainStyle struct{}

func (plainStyle) heading(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n" + strings.Repeat("=", len([]rune(title))) + "\n\n")
}
func (plainStyle) field(sb *strings.Builder, name, value string) {
	sb.WriteString(name + ": " + value + "\n")
}
func (plainStyle) block(sb *strings.Builder, body string) { sb.WriteString("\n" + body) }
func (plainStyle) notice(sb *strings.Builder, n analysis.Notice) {
	sb.WriteString("[" + string(n.Level) + "] " + n.Message + "\n")
}
func (plainStyle) item(sb *strings.Builder, text string) { sb.WriteString("  - " + text + "\n") }
func (plainStyle) code(text string) string              { return text }
func (plainStyle) gap(sb *strings.Builder)              { sb.WriteString("\n") }

type markdownStyle struct{}

func (markdownStyle) heading(sb *strings.Builder, title string) {
	sb.WriteString("## " + title + "\n\n")
}
func (markdownStyle) field(sb *strings.Builder, name, value string) {
	sb.WriteString("- **" + name + ":** " + value + "\n")
}
func (markdownStyle) block(sb *strings.Builder, body string) {
	sb.WriteString("\n```\n" + body + "```\n")
}
func (markdownStyle) notice(sb *strings.Builder, n analysis.Notice) {
	sb.WriteString("> **" + string(n.Level) + ":** " + n.Message + "\n>\n")
}
func (markdownStyle) item(sb *strings.Builder, text string) { sb.WriteString("- " + text + "\n") }
func (markdownStyle) code(text string) string              { return "`" + text + "`" }
func (markdownStyle) gap(sb *strings.Builder)              { sb.WriteString("\n") }

// setTitles names the adapter's labeled sets for display.
var setTitles = map[string]string{
	"J":             "Known parameters J",
	"τ":             "Required parameters τ",
	"I":             "Input parameters I",
	"T":             "Required parameters T",
	"Iij":           "Inputs of the first operation Iij",
	"Iik":           "Inputs of the second operation Iik",
	"J = Iij ∪ Iik": "Union J = Iij ∪ Iik",
	"analysis":      "Analyzed parameters",
}

func params(idx []int) string { return analysis.Labels(idx, incidence.ColLabel) }
func rows(idx []int) string   { return analysis.Labels(idx, incidence.RowLabel) }

func render(w io.Writer, rep *analysis.Report, s style, o Options) error {
	if rep == nil {
		return ErrNilReport
	}
	var sb strings.Builder

	s.heading(&sb, Title(rep.Mode))
	for _, set := range rep.Sets {
		name, ok := setTitles[set.Name]
		if !ok {
			name = set.Name
		}
		s.field(&sb, name, params(set.Indices))
	}
	if rep.Cols > 0 {
		s.field(&sb, "Unknown parameters U = P \\ J", params(rep.Universe))
		if rep.Mode != analysis.ModeLink {
			s.field(&sb, "Effective requirement τ \\ J", params(rep.EffectiveRequirement))
		}
	}
	s.field(&sb, "Model size", fmt.Sprintf("m = %d, n = %d", rep.Rows, rep.Cols))
	if rep.Matrix != nil && !rep.Matrix.Empty() {
		s.block(&sb, rep.Matrix.Format())
	}

	if len(rep.Notices) > 0 {
		s.gap(&sb)
		for _, n := range rep.Notices {
			s.notice(&sb, n)
		}
	}

	if rep.Completed {
		writeResult(&sb, rep, s, o)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeResult(sb *strings.Builder, rep *analysis.Report, s style, o Options) {
	s.gap(sb)
	s.field(sb, "Maximum deficit", s.code(fmt.Sprintf("max d(L) = %d", rep.MaxDeficit)))
	s.field(sb, "Subsets evaluated", fmt.Sprintf("%d", rep.Evaluated))

	s.gap(sb)
	sb.WriteString("Row subsets with maximal deficit:\n")
	s.gap(sb)
	shown := min(len(rep.BestSubsets), o.subsetLimit)
	for _, rec := range rep.BestSubsets[:shown] {
		s.item(sb, subsetLine(rec, s))
	}
	if rest := len(rep.BestSubsets) - shown; rest > 0 {
		s.item(sb, fmt.Sprintf("… and %d more subset(s) with %s", rest, s.code(fmt.Sprintf("d(L) = %d", rep.MaxDeficit))))
	}

	if p := rep.Profile; p != nil {
		s.gap(sb)
		sb.WriteString("Deficit profile:\n")
		s.gap(sb)
		for _, b := range p.Buckets {
			s.item(sb, fmt.Sprintf("%s: %d", s.code(fmt.Sprintf("d(L) = %d", b.Deficit)), b.Count))
		}
		s.item(sb, fmt.Sprintf("mean %.3f, median %.3f, std dev %.3f", p.Mean, p.Median, p.StdDev))
	}

	s.gap(sb)
	s.field(sb, "χ(J)", string(rep.Chi))
	s.field(sb, "Status", string(rep.Status))
	s.field(sb, "Conclusion", rep.Verdict.Message())
}

func subsetLine(rec deficit.Record, s style) string {
	return fmt.Sprintf("%s → %s; %s",
		s.code("L = "+rows(rec.Rows)),
		s.code("P(L) = "+params(rec.Covered)),
		s.code(fmt.Sprintf("d(L) = %d", rec.Deficit)),
	)
}
