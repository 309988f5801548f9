// Package report exports booking data to Excel for the salon's
// record-keeping.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"zapis/internal/model"
)

const bookingsSheet = "Bookings"

// BookingsReport builds an XLSX workbook with one row per booking and a
// summary sheet of counts by status. Service names, total duration and total
// price are resolved from the catalogue.
func BookingsReport(bookings []model.Booking, services []model.Service) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", bookingsSheet)

	header := []string{"Date", "Time", "Status", "Services", "Duration (min)", "Price", "Notes"}
	if err := writeRow(f, bookingsSheet, 1, toAny(header)); err != nil {
		return nil, err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(bookingsSheet, start, end, style)
	}

	byID := make(map[string]model.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	statusCounts := make(map[string]int)
	for i, b := range bookings {
		var names []string
		for _, id := range b.ServiceIDs {
			if s, ok := byID[id]; ok {
				names = append(names, s.Name)
			}
		}
		statusCounts[b.Status]++

		row := []any{
			b.BookingDate.Format(model.DateLayout),
			b.BookingTime,
			b.Status,
			strings.Join(names, ", "),
			model.TotalDuration(services, b.ServiceIDs),
			model.TotalPrice(services, b.ServiceIDs),
			b.Notes,
		}
		if err := writeRow(f, bookingsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeSummary(f, statusCounts); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSummary(f *excelize.File, statusCounts map[string]int) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []any{"Status", "Count"}); err != nil {
		return err
	}

	row := 2
	for _, status := range []string{model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled} {
		if err := writeRow(f, sheet, row, []any{status, statusCounts[status]}); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
