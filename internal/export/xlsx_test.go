package export

import (
	"testing"
	"time"

	"github.com/hddy2000/steam-reviews/internal/types"
)

func sampleReport() types.Report {
	return types.Report{
		AppID:   730,
		Summary: "short summary",
		Sentiment: types.SentimentRating{
			Rating: types.SentimentPositive, Score: 70, Label: "mostly positive",
		},
		Stats: types.Stats{Total: 10, Positive: 7, Negative: 3, PositiveRate: 70, AvgPlaytime: 12},
		Keywords: []types.KeywordCount{
			{Word: "剧情", Count: 4},
			{Word: "优化", Count: 2},
		},
		KeyPoints: []types.KeyPoint{
			{Type: types.SentimentPositive, Content: "great story", Helpful: 5, Playtime: 30},
		},
		Risks: []types.Risk{
			{Type: types.RiskTechnicalIssues, Level: types.RiskLevelMedium, Message: "crash reports"},
		},
		Suggestions: []string{"ship a patch"},
		Overall:     types.Overall{Rating: types.SentimentPositive, Score: 70, Trend: types.TrendStable, Heat: 20},
		UpdatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWorkbookSheets(t *testing.T) {
	f, err := Workbook(sampleReport())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Overview", "Keywords", "Key Points", "Risks & Suggestions"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("missing sheet %q (idx=%d, err=%v)", sheet, idx, err)
		}
	}
}

func TestWorkbookContent(t *testing.T) {
	f, err := Workbook(sampleReport())
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Overview", "B1"); v != "730" {
		t.Errorf("Overview B1 = %q, want app id", v)
	}
	if v, _ := f.GetCellValue("Overview", "B3"); v != "short summary" {
		t.Errorf("Overview B3 = %q, want summary", v)
	}
	if v, _ := f.GetCellValue("Keywords", "A2"); v != "剧情" {
		t.Errorf("Keywords A2 = %q, want top keyword", v)
	}
	if v, _ := f.GetCellValue("Keywords", "B2"); v != "4" {
		t.Errorf("Keywords B2 = %q, want count", v)
	}
	if v, _ := f.GetCellValue("Key Points", "B2"); v != "great story" {
		t.Errorf("Key Points B2 = %q", v)
	}
	if v, _ := f.GetCellValue("Risks & Suggestions", "B3"); v != "ship a patch" {
		t.Errorf("Risks & Suggestions B3 = %q, want suggestion", v)
	}
}

func TestWorkbookEmptyReport(t *testing.T) {
	rep := types.Report{AppID: 1, Summary: "no data", UpdatedAt: time.Now()}
	f, err := Workbook(rep)
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Keywords", "A1"); v != "Keyword" {
		t.Errorf("Keywords header = %q", v)
	}
}
