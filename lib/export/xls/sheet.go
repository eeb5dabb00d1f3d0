package xlsexport

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"smartjob-backend/models"
)

const (
	columnWidth = 25
	fontFamily  = "Calibri"
	fontSize    = 11
)

var statusFills = map[models.ApplicantStatus]string{
	models.ApplicantStatusPending:  "FFF2CC",
	models.ApplicantStatusReviewed: "D9EAD3",
	models.ApplicantStatusRejected: "F4CCCC",
}

// sheetWriter streams one table into a sheet. The bold header row is frozen
// and the written range becomes a filterable table on close.
type sheetWriter struct {
	f       *excelize.File
	table   string
	sw      *excelize.StreamWriter
	columns int
	row     int

	dataStyle    int
	statusStyles map[models.ApplicantStatus]int
}

func newSheetWriter(f *excelize.File, sheet, table string, headers []string) (*sheetWriter, error) {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f, table: table, sw: sw, columns: len(headers), statusStyles: map[models.ApplicantStatus]int{}}
	if err = w.initStyles(); err != nil {
		return nil, err
	}
	if err = sw.SetColWidth(1, len(headers), columnWidth); err != nil {
		return nil, err
	}
	err = sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return nil, err
	}
	cells := make([]interface{}, len(headers))
	for idx, header := range headers {
		cells[idx] = excelize.Cell{StyleID: headerStyle, Value: header}
	}
	if err = w.writeRow(cells); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *sheetWriter) initStyles() (err error) {
	w.dataStyle, err = w.f.NewStyle(dataStyle(""))
	if err != nil {
		return err
	}
	for status, color := range statusFills {
		if w.statusStyles[status], err = w.f.NewStyle(dataStyle(color)); err != nil {
			return err
		}
	}
	return nil
}

func dataStyle(fillColor string) *excelize.Style {
	style := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: fontSize},
	}
	if fillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}}
	}
	return style
}

// data wraps value in the plain data style.
func (w *sheetWriter) data(value interface{}) excelize.Cell {
	return excelize.Cell{StyleID: w.dataStyle, Value: value}
}

func (w *sheetWriter) status(status models.ApplicantStatus) excelize.Cell {
	style, ok := w.statusStyles[status]
	if !ok {
		style = w.dataStyle
	}
	return excelize.Cell{StyleID: style, Value: string(status)}
}

func (w *sheetWriter) writeRow(cells []interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.sw.SetRow(cell, cells)
}

func (w *sheetWriter) close() error {
	lastCell, err := excelize.CoordinatesToCellName(w.columns, w.row)
	if err != nil {
		return err
	}
	err = w.sw.AddTable(&excelize.Table{
		Range:     "A1:" + lastCell,
		Name:      w.table,
		StyleName: "TableStyleLight1",
	})
	if err != nil {
		return errors.Wrap(err, "table not added")
	}
	return w.sw.Flush()
}
