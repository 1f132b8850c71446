package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hddy2000/steam-reviews/internal/types"
)

// Workbook renders a report as an xlsx workbook with one sheet per report
// section. The caller owns the returned file and should Close it.
func Workbook(rep types.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeOverview(f, rep); err != nil {
		return nil, err
	}
	if err := writeKeywords(f, rep.Keywords); err != nil {
		return nil, err
	}
	if err := writeKeyPoints(f, rep.KeyPoints); err != nil {
		return nil, err
	}
	if err := writeRisks(f, rep); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeOverview(f *excelize.File, rep types.Report) error {
	const sheet = "Overview"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]interface{}{
		{"App ID", rep.AppID},
		{"Generated", rep.UpdatedAt.Format("2006-01-02 15:04:05")},
		{"Summary", rep.Summary},
		{"Rating", rep.Sentiment.Rating},
		{"Score", rep.Sentiment.Score},
		{"Label", rep.Sentiment.Label},
		{"Reviews", rep.Stats.Total},
		{"Recommended", rep.Stats.Positive},
		{"Not recommended", rep.Stats.Negative},
		{"Positive rate (%)", rep.Stats.PositiveRate},
		{"Average playtime (h)", rep.Stats.AvgPlaytime},
		{"Trend", rep.Overall.Trend},
		{"Change", rep.Overall.Change},
		{"Heat", rep.Overall.Heat},
		{"AI generated", rep.AIGenerated},
	}
	return writeRows(f, sheet, rows)
}

func writeKeywords(f *excelize.File, keywords []types.KeywordCount) error {
	const sheet = "Keywords"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]interface{}{{"Keyword", "Count"}}
	for _, k := range keywords {
		rows = append(rows, []interface{}{k.Word, k.Count})
	}
	return writeRows(f, sheet, rows)
}

func writeKeyPoints(f *excelize.File, points []types.KeyPoint) error {
	const sheet = "Key Points"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]interface{}{{"Type", "Excerpt", "Helpful", "Playtime (h)"}}
	for _, p := range points {
		rows = append(rows, []interface{}{p.Type, p.Content, p.Helpful, p.Playtime})
	}
	return writeRows(f, sheet, rows)
}

func writeRisks(f *excelize.File, rep types.Report) error {
	const sheet = "Risks & Suggestions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]interface{}{{"Kind", "Detail"}}
	for _, r := range rep.Risks {
		rows = append(rows, []interface{}{"risk (" + r.Level + ")", r.Type + ": " + r.Message})
	}
	for _, sug := range rep.Suggestions {
		rows = append(rows, []interface{}{"suggestion", sug})
	}
	if rep.AIAnalysis != nil {
		for _, strength := range rep.AIAnalysis.Strengths {
			rows = append(rows, []interface{}{"ai strength", strength})
		}
		for _, weakness := range rep.AIAnalysis.Weaknesses {
			rows = append(rows, []interface{}{"ai weakness", weakness})
		}
		if len(rep.AIAnalysis.Risks) > 0 {
			rows = append(rows, []interface{}{"ai risks", strings.Join(rep.AIAnalysis.Risks, "; ")})
		}
		if len(rep.AIAnalysis.Suggestions) > 0 {
			rows = append(rows, []interface{}{"ai suggestions", strings.Join(rep.AIAnalysis.Suggestions, "; ")})
		}
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
