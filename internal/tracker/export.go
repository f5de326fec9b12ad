package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/HendryAvila/lifeos/internal/discipline"
	"github.com/HendryAvila/lifeos/internal/journal"
)

// Fixed leading CSV columns; one column per answer key follows.
var csvHeader = []string{
	"Date",
	"Discipline Score",
	"Time Integrity",
	"Creation Ratio",
	"Pressure",
	"Shutdown Complete",
	"Photo",
}

// ExportCSV writes every record, oldest first. Answer columns follow the
// catalog order, then any keys the catalog does not know, sorted.
func (t *Tracker) ExportCSV(w io.Writer) error {
	snap, err := t.require(discipline.ViewSettings)
	if err != nil {
		return err
	}

	keys := t.catalog.IDs()
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	var extra []string
	seen := map[string]bool{}
	for _, rec := range snap.history {
		for k := range rec.Answers {
			if !known[k] && !seen[k] {
				seen[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, csvHeader...), keys...)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range snap.history {
		row := []string{
			rec.Date.String(),
			strconv.Itoa(rec.DisciplineScore),
			strconv.Itoa(rec.TimeIntegrityScore),
			strconv.FormatFloat(rec.CreationRatio, 'f', -1, 64),
			string(rec.PressureLevel),
			strconv.FormatBool(rec.ShutdownComplete),
			yesNo(rec.HasPhoto()),
		}
		for _, k := range keys {
			row = append(row, formatAnswer(rec.Answers[k]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", rec.Date, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	t.log.Info("csv exported", "days", len(snap.history), "columns", len(csvHeader)+len(keys))
	return nil
}

// ExportJSON returns the full journal dump.
func (t *Tracker) ExportJSON() (*journal.ExportData, error) {
	if _, err := t.require(discipline.ViewSettings); err != nil {
		return nil, err
	}
	data, err := t.store.Export()
	if err != nil {
		return nil, err
	}
	t.log.Info("journal exported", "days", len(data.Days))
	return data, nil
}

// Import loads a journal dump. Every derived field is recomputed from the
// imported answers; stored scores in the dump are ignored. A record dated
// after today rejects the whole dump, since it would hold the lockout.
func (t *Tracker) Import(data *journal.ExportData) (*journal.ImportResult, error) {
	if data == nil {
		return nil, fmt.Errorf("import: no data")
	}
	if data.Version != "" && data.Version != journal.ExportVersion {
		return nil, fmt.Errorf("import: unsupported export version %q", data.Version)
	}
	snap, err := t.require(discipline.ViewSettings)
	if err != nil {
		return nil, err
	}

	days := discipline.Normalize(data.Days)
	for i := range days {
		if days[i].Date > snap.today {
			return nil, fmt.Errorf("import %s: %w", days[i].Date, ErrFutureDate)
		}
		if err := discipline.ValidateThinkingQuality(days[i].Annotations.ThinkingQuality); err != nil {
			return nil, fmt.Errorf("import %s: %w", days[i].Date, err)
		}
		days[i] = discipline.Evaluate(days[i], t.catalog)
	}

	res, err := t.store.Import(days)
	if err != nil {
		return nil, err
	}
	t.log.Info("journal imported", "imported", res.DaysImported, "replaced", res.DaysReplaced)
	return res, nil
}

func formatAnswer(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(x)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
