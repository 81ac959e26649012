// Package export renders sale lists as downloadable spreadsheets.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
	"github.com/xuri/excelize/v2"
)

// Format is a supported export file format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ParseFormat maps a raw format name to a Format. Unknown names yield xlsx.
func ParseFormat(raw string) Format {
	if Format(raw) == FormatCSV {
		return FormatCSV
	}
	return FormatXLSX
}

const salesSheet = "Ventas"

// SalesHeader is the column header row of a sales export.
var SalesHeader = []string{
	"Fecha venta",
	"Matrícula",
	"IDV",
	"Tipo venta",
	"DNI/CIF",
	"Tipo cliente",
	"Nombre cliente",
	"Unidades financiadas",
}

// SalesRows renders every sale as one row of display values.
func SalesRows(sales []domain.Sale) [][]string {
	rows := make([][]string, len(sales))
	for i, s := range sales {
		financed := ""
		if s.FinancedUnits != nil {
			financed = strconv.Itoa(*s.FinancedUnits)
		}
		rows[i] = []string{
			s.SaleDate.Format(period.DayLayout),
			s.Plate,
			strconv.FormatInt(s.DealID, 10),
			s.SaleType.Label(),
			s.BuyerTaxID,
			s.BuyerType.Label(),
			s.BuyerName,
			financed,
		}
	}
	return rows
}

// WriteSales writes sales in format to w.
func WriteSales(w io.Writer, format Format, sales []domain.Sale) error {
	if format == FormatCSV {
		return WriteSalesCSV(w, sales)
	}
	content, err := SalesXLSX(sales)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

// WriteSalesCSV writes a semicolon separated file with a UTF-8 byte order
// mark, the dialect spreadsheet software expects for es-ES locales.
func WriteSalesCSV(w io.Writer, sales []domain.Sale) error {
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return fmt.Errorf("failed to write csv bom: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(SalesHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(SalesRows(sales)); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// SalesXLSX builds an xlsx workbook with a single styled sales sheet.
func SalesXLSX(sales []domain.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(salesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	rows := append([][]string{SalesHeader}, SalesRows(sales)...)
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		values := make([]any, len(row))
		for c, v := range row {
			values[c] = v
		}
		if err := f.SetSheetRow(salesSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(SalesHeader), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(salesSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(SalesHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to convert column: %w", err)
	}
	if err := f.SetColWidth(salesSheet, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
