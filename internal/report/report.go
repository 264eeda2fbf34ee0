// Package report renders the monthly rollup as XLSX workbook.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetProjects  = "Projects"
	SheetEmployees = "Employees"

	// ContentType is the MIME type of the workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	projectHeader  = []any{"Project", "Budgeted", "Actual", "Profit rating", "Profit/loss %", "Allocations", "Interns"}
	employeeHeader = []any{"Employee", "Project", "Allocation", "Committed"}
)

// Filename returns the name of the export file for the month.
func Filename(summary models.MonthSummary) string {
	return fmt.Sprintf("staffing-%s.xlsx", summary.Month)
}

// Workbook builds the workbook for a month.
//
// The Projects sheet contains the variance of every project and a total row,
// the Employees sheet one row per allocation, grouped by employee.
func Workbook(summary models.MonthSummary, commitments []models.Commitment) (*excelize.File, error) {
	f := excelize.NewFile()

	err := f.SetSheetName("Sheet1", SheetProjects)
	if err != nil {
		return nil, err
	}

	_, err = f.NewSheet(SheetEmployees)
	if err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	err = writeProjects(f, bold, summary)
	if err != nil {
		return nil, err
	}

	err = writeEmployees(f, bold, commitments)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Write builds the workbook for a month and writes it to w.
func Write(w io.Writer, summary models.MonthSummary, commitments []models.Commitment) error {
	f, err := Workbook(summary, commitments)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

func writeProjects(f *excelize.File, bold int, summary models.MonthSummary) error {
	sw, err := f.NewStreamWriter(SheetProjects)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	title := []any{fmt.Sprintf("Staffing %s", summary.Month.Label())}
	if err := sw.SetRow("A1", title, excelize.RowOpts{StyleID: bold}); err != nil {
		return err
	}

	if err := sw.SetRow("A2", projectHeader, excelize.RowOpts{StyleID: bold}); err != nil {
		return err
	}

	row := 3
	for _, p := range summary.Projects {
		percentage := any("")
		if p.ProfitLossPercentage.Valid {
			percentage = number(p.ProfitLossPercentage.Decimal)
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		err := sw.SetRow(cell, []any{
			p.Project,
			number(p.Budgeted),
			number(p.Actual),
			number(p.ProfitRating),
			percentage,
			p.Allocations,
			p.Interns,
		})
		if err != nil {
			return fmt.Errorf("error writing row %d: %w", row, err)
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	err = sw.SetRow(cell, []any{
		"Total",
		number(summary.Budgeted),
		number(summary.Actual),
		number(summary.ProfitRating),
	}, excelize.RowOpts{StyleID: bold})
	if err != nil {
		return err
	}

	return sw.Flush()
}

func writeEmployees(f *excelize.File, bold int, commitments []models.Commitment) error {
	sw, err := f.NewStreamWriter(SheetEmployees)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if err := sw.SetRow("A1", employeeHeader, excelize.RowOpts{StyleID: bold}); err != nil {
		return err
	}

	row := 2
	for _, c := range commitments {
		for _, a := range c.Allocations {
			value := any(a.Value.String())
			if !a.Value.IsIntern() {
				value = number(a.Value.Decimal())
			}

			cell, _ := excelize.CoordinatesToCellName(1, row)
			err := sw.SetRow(cell, []any{c.Employee, a.Project, value, number(c.Total)})
			if err != nil {
				return fmt.Errorf("error writing row %d: %w", row, err)
			}
			row++
		}
	}

	return sw.Flush()
}

// number converts a decimal to a float for display in a cell
func number(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
