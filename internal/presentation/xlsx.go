package presentation

import (
	"fmt"
	"io"

	"assettracking/internal/lifecycle"
	"assettracking/internal/report"

	"github.com/xuri/excelize/v2"
)

const (
	assetsSheet = "Assets"
	totalsSheet = "Totals"
)

var (
	assetsHeader = []string{"Office", "Kind", "Brand", "Model", "Purchase Date", "Price (base)", "Local Price", "Currency", "Remaining Days", "Urgency"}
	totalsHeader = []string{"Office", "Currency", "Assets", "Total Value", "Critical", "Warning", "Normal"}
)

type XLSXSink struct {
	out io.Writer
}

func NewXLSXSink(out io.Writer) *XLSXSink {
	return &XLSXSink{out: out}
}

func (s *XLSXSink) Render(r *report.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", assetsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	if err := writeHeader(f, assetsSheet, assetsHeader, styles.header); err != nil {
		return err
	}
	for i, row := range r.Rows {
		values := []any{
			row.OfficeLocation,
			row.Kind.DisplayName(),
			row.Brand.DisplayName(),
			row.ModelName,
			row.PurchaseDate.Format(dateLayout),
			row.Price.InexactFloat64(),
			row.LocalPrice.Round(2).InexactFloat64(),
			row.CurrencyCode,
			row.RemainingDays,
			string(row.Urgency),
		}
		if err := writeRow(f, assetsSheet, i+2, values, styles.forUrgency(row.Urgency)); err != nil {
			return err
		}
	}

	if err := writeHeader(f, totalsSheet, totalsHeader, styles.header); err != nil {
		return err
	}
	for i, total := range r.Totals {
		values := []any{
			total.OfficeLocation,
			total.CurrencyCode,
			total.AssetCount,
			total.TotalLocalValue.Round(2).InexactFloat64(),
			total.Critical,
			total.Warning,
			total.Normal,
		}
		if err := writeRow(f, totalsSheet, i+2, values, 0); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(s.out); err != nil {
		return fmt.Errorf("failed to write xlsx report: %w", err)
	}

	return nil
}

type sheetStyles struct {
	header   int
	critical int
	warning  int
}

func (s sheetStyles) forUrgency(urgency lifecycle.Urgency) int {
	switch urgency {
	case lifecycle.UrgencyCritical:
		return s.critical
	case lifecycle.UrgencyWarning:
		return s.warning
	default:
		return 0
	}
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var styles sheetStyles
	var err error

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, fmt.Errorf("failed to create header style: %w", err)
	}

	styles.critical, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#C00000"}})
	if err != nil {
		return styles, fmt.Errorf("failed to create critical style: %w", err)
	}

	styles.warning, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "#B8860B"}})
	if err != nil {
		return styles, fmt.Errorf("failed to create warning style: %w", err)
	}

	return styles, nil
}

func writeHeader(f *excelize.File, sheet string, header []string, style int) error {
	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values, style); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", last, 16); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowNumber int, values []any, style int) error {
	start, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNumber, sheet, err)
	}

	if style == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(values), rowNumber)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("failed to set style of row %d: %w", rowNumber, err)
	}

	return nil
}
