package presentation

import (
	"fmt"
	"io"
	"strconv"

	"assettracking/internal/report"

	"github.com/gocarina/gocsv"
)

type csvRow struct {
	Office        string `csv:"office"`
	Kind          string `csv:"kind"`
	Brand         string `csv:"brand"`
	Model         string `csv:"model"`
	PurchaseDate  string `csv:"purchase_date"`
	Price         string `csv:"price_usd"`
	LocalPrice    string `csv:"local_price"`
	Currency      string `csv:"currency"`
	RemainingDays string `csv:"remaining_days"`
	Urgency       string `csv:"urgency"`
}

type CSVSink struct {
	out io.Writer
}

func NewCSVSink(out io.Writer) *CSVSink {
	return &CSVSink{out: out}
}

func (s *CSVSink) Render(r *report.Report) error {
	rows := make([]*csvRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, &csvRow{
			Office:        row.OfficeLocation,
			Kind:          row.Kind.DisplayName(),
			Brand:         row.Brand.DisplayName(),
			Model:         row.ModelName,
			PurchaseDate:  row.PurchaseDate.Format(dateLayout),
			Price:         row.Price.StringFixed(2),
			LocalPrice:    row.LocalPrice.StringFixed(2),
			Currency:      row.CurrencyCode,
			RemainingDays: strconv.FormatFloat(row.RemainingDays, 'f', 1, 64),
			Urgency:       string(row.Urgency),
		})
	}

	if err := gocsv.Marshal(rows, s.out); err != nil {
		return fmt.Errorf("failed to write csv report: %w", err)
	}

	return nil
}
