package menureport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
	"github.com/talkincode/fudofusion/internal/domain"
	"go.uber.org/zap"
)

const sheetName = "Menu"

var columns = []string{"A", "B", "C", "D", "E"}

// ExportXLSX writes the menu to a spreadsheet with the same columns as the
// backing file. Prices are written as numbers.
func ExportXLSX(path string, items []domain.MenuItem) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "export %s", path)
		}
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	header := []string{"Item ID", "Name", "Category", "Price", "Description"}
	for i, title := range header {
		f.SetCellValue(sheetName, columns[i]+"1", title)
	}
	for i, item := range items {
		row := i + 2
		price, _ := item.Price.Float64()
		values := []interface{}{item.ID, item.Name, item.Category, price, item.Description}
		for c, v := range values {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[c], row), v)
		}
	}
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "E", "E", 52)

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "export %s", path)
	}
	zap.L().Info("menu exported", zap.String("path", path), zap.Int("items", len(items)))
	return nil
}
