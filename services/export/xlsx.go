package exportsvc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/nkminh14/uniconsole/core"
)

const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

type xlsxService struct{}

var _ core.Exporter = (*xlsxService)(nil)

func NewXLSXService() core.Exporter {
	return xlsxService{}
}

func (xlsxService) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxService) Extension() string {
	return ".xlsx"
}

// Export writes every sheet into one workbook with a bold header row.
func (xlsxService) Export(w io.Writer, sheets ...core.Sheet) error {
	if len(sheets) == 0 {
		return errors.New("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	used := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := uniqueName(SheetName(sheet.Name), used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return errors.Wrapf(err, "naming sheet %q", name)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "creating sheet %q", name)
		}
		if err := writeSheet(f, name, sheet, bold); err != nil {
			return errors.Wrapf(err, "writing sheet %q", name)
		}
	}
	f.SetActiveSheet(0)

	return errors.Wrap(f.Write(w), "writing workbook")
}

func writeSheet(f *excelize.File, name string, sheet core.Sheet, headerStyle int) error {
	if len(sheet.Headers) > 0 {
		if err := f.SetSheetRow(name, "A1", &sheet.Headers); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	widths := make([]int, len(sheet.Headers))
	for i, h := range sheet.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for r, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
		for i, v := range row {
			if i < len(widths) {
				if n := utf8.RuneCountInString(cellText(v)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(name, col, col, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}

// SheetName strips the characters a worksheet name cannot hold and truncates it.
func SheetName(name string) string {
	name = strings.TrimSpace(sheetNameReplacer.Replace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		return "Sheet"
	}
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		base := []rune(name)
		if len(base)+utf8.RuneCountInString(suffix) > maxSheetName {
			base = base[:maxSheetName-utf8.RuneCountInString(suffix)]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func cellText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
