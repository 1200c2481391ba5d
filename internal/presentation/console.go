package presentation

import (
	"fmt"
	"io"

	"assettracking/internal/lifecycle"
	"assettracking/internal/report"

	"github.com/labstack/gommon/color"
)

const dateLayout = "2006-01-02"

// ConsoleSink prints one line per asset. Critical assets are red, warnings yellow.
type ConsoleSink struct {
	out   io.Writer
	color *color.Color
}

func NewConsoleSink(out io.Writer, colored bool) *ConsoleSink {
	c := color.New()
	c.SetOutput(out)
	if !colored {
		c.Disable()
	}
	return &ConsoleSink{out: out, color: c}
}

func (s *ConsoleSink) Render(r *report.Report) error {
	for _, row := range r.Rows {
		if _, err := fmt.Fprintln(s.out, s.paint(FormatRow(row), row.Urgency)); err != nil {
			return err
		}
	}

	if len(r.Totals) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(s.out, s.color.Bold("\nTotals")); err != nil {
		return err
	}
	for _, total := range r.Totals {
		_, err := fmt.Fprintf(s.out, "%s - %d assets - %s %s (critical: %d, warning: %d)\n",
			total.OfficeLocation,
			total.AssetCount,
			total.TotalLocalValue.StringFixed(2),
			total.CurrencyCode,
			total.Critical,
			total.Warning,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *ConsoleSink) paint(line string, urgency lifecycle.Urgency) string {
	switch urgency {
	case lifecycle.UrgencyCritical:
		return s.color.Red(line)
	case lifecycle.UrgencyWarning:
		return s.color.Yellow(line)
	default:
		return line
	}
}

func FormatRow(row report.Row) string {
	return fmt.Sprintf("%s - %s - %s - %s - %s %s",
		row.OfficeLocation,
		row.Brand.DisplayName(),
		row.ModelName,
		row.PurchaseDate.Format(dateLayout),
		row.LocalPrice.StringFixed(2),
		row.CurrencyCode,
	)
}
