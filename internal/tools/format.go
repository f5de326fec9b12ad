package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/questions"
)

// writeScores renders the derived fields of one record.
func writeScores(sb *strings.Builder, rec discipline.DayRecord) {
	fmt.Fprintf(sb, "- **Discipline**: %d/100\n", rec.DisciplineScore)
	fmt.Fprintf(sb, "- **Time integrity**: %d/100\n", rec.TimeIntegrityScore)
	fmt.Fprintf(sb, "- **Creation ratio**: %.2f\n", rec.CreationRatio)
	fmt.Fprintf(sb, "- **Pressure**: %s\n", rec.PressureLevel)
	fmt.Fprintf(sb, "- **Shutdown complete**: %s\n", yesNo(rec.ShutdownComplete))
	fmt.Fprintf(sb, "- **Identity photo**: %s\n", yesNo(rec.HasPhoto()))
}

// writeAnswers renders answers grouped by category in catalog order,
// followed by keys the catalog does not know.
func writeAnswers(sb *strings.Builder, a discipline.Answers, cat *questions.Catalog) {
	if len(a) == 0 {
		sb.WriteString("_No answers yet._\n")
		return
	}
	for _, c := range cat.Categories() {
		var lines []string
		for _, q := range cat.ByCategory(c) {
			if v, ok := a[q.ID]; ok {
				lines = append(lines, fmt.Sprintf("- %s: %v", q.Label, v))
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(sb, "**%s**\n%s\n", c, strings.Join(lines, "\n"))
	}
	var extra []string
	for k, v := range a {
		if _, ok := cat.Get(k); !ok {
			extra = append(extra, fmt.Sprintf("- %s: %v", k, v))
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		fmt.Fprintf(sb, "**other**\n%s\n", strings.Join(extra, "\n"))
	}
}

// writeAnnotations renders assistant output, if any.
func writeAnnotations(sb *strings.Builder, n discipline.Annotations) {
	if n.IsZero() {
		return
	}
	sb.WriteString("\n### Assistant notes\n")
	if n.DailyDirection != "" {
		fmt.Fprintf(sb, "- **Direction**: %s\n", n.DailyDirection)
	}
	if n.RealityCheck != "" {
		fmt.Fprintf(sb, "- **Reality check**: %s\n", n.RealityCheck)
	}
	if n.ThinkingQuality != "" {
		fmt.Fprintf(sb, "- **Thinking quality**: %s\n", n.ThinkingQuality)
	}
	if n.AIAnalysis != "" {
		fmt.Fprintf(sb, "\n%s\n", n.AIAnalysis)
	}
}

// missingShutdown lists the shutdown questions a record still lacks.
func missingShutdown(a discipline.Answers, cat *questions.Catalog) []string {
	var out []string
	for _, q := range cat.ByCategory(questions.CategoryShutdown) {
		if !a.Answered(q.ID) {
			out = append(out, q.ID)
		}
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
