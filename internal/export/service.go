// Package export renders batches of parsed transactions to an XLSX
// workbook for offline review. Persistence proper is out of scope; this is
// a one-shot artifact for the batch CLI.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildXLSX returns an XLSX workbook (as bytes) with one row per record.
func (s *Service) BuildXLSX(records []*transaction.Parsed) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Type",
		"Item",
		"Quantity",
		"Amount",
		"Currency",
		"Method",
		"Person",
		"Confidence",
		"Source",
		"Processing (ms)",
		"Transcript",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, string(r.Type))
		write(2, strOrDash(r.Item))
		if r.Quantity != nil {
			write(3, *r.Quantity)
		} else {
			write(3, "—")
		}
		if r.Amount != nil {
			write(4, *r.Amount)
		} else {
			write(4, "—")
		}
		write(5, r.Currency)
		if r.Method != nil {
			write(6, string(*r.Method))
		} else {
			write(6, "—")
		}
		write(7, strOrDash(r.Person))
		write(8, string(r.Confidence))
		write(9, r.Source)
		write(10, r.ProcessingTime)
		write(11, truncate(r.Raw, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 16)
	_ = f.SetColWidth(sheet, "C", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 20)
	_ = f.SetColWidth(sheet, "H", "J", 14)
	_ = f.SetColWidth(sheet, "K", "K", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrDash(p *string) string {
	if p == nil || *p == "" {
		return "—"
	}
	return *p
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
