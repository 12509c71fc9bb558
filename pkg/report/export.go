package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/xuri/excelize/v2"

	"github.com/umputun/topicscope/pkg/domain"
)

const xlsxSheet = "Topics"

var exportHeader = []string{
	"id", "title", "source", "category", "total_score", "importance", "watchability", "monetization",
	"popularity", "innovation", "competition_level", "recommended_angle", "keywords", "notes",
	"views_potential", "reference_video_id", "favorited", "created_at",
}

// Export writes topics to path, as xlsx if the path has .xlsx extension, otherwise as csv
func Export(path string, topics []domain.Topic) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		err = exportXLSX(path, topics)
	} else {
		err = exportCSV(path, topics)
	}
	if err != nil {
		return err
	}
	lgr.Printf("[INFO] exported %d topics to %s", len(topics), path)
	return nil
}

func exportCSV(path string, topics []domain.Topic) error {
	fh, err := os.Create(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	w := csv.NewWriter(fh)
	if err := w.Write(exportHeader); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range topics {
		if err := w.Write(exportRow(t)); err != nil {
			_ = fh.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

func exportXLSX(path string, topics []domain.Topic) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, t := range topics {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []any{t.ID, t.Title, t.Source, string(t.Category), t.TotalScore, t.Importance, t.Watchability,
			t.Monetization, t.Popularity, t.Innovation, string(t.CompetitionLevel), t.RecommendedAngle,
			strings.Join(t.Keywords, ", "), t.Notes, t.ViewsPotential, t.ReferenceVideoID, t.Favorited,
			t.CreatedAt.Format(time.RFC3339)}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func exportRow(t domain.Topic) []string {
	score := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
	return []string{
		strconv.FormatInt(t.ID, 10), t.Title, t.Source, string(t.Category), score(t.TotalScore),
		score(t.Importance), score(t.Watchability), score(t.Monetization), score(t.Popularity), score(t.Innovation),
		string(t.CompetitionLevel), t.RecommendedAngle, strings.Join(t.Keywords, ", "), t.Notes,
		strconv.FormatInt(t.ViewsPotential, 10), t.ReferenceVideoID, strconv.FormatBool(t.Favorited),
		t.CreatedAt.Format(time.RFC3339),
	}
}
