package handlers

import (
	"bytes"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// GET /api/admin/prices/export — выгрузка всех прайсов в Excel,
// по листу на семейство продуктов.
func (e *Env) HandleExportPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !e.requireAdmin(w, r) {
		return
	}

	f := excelize.NewFile()

	for i, rep := range e.Repos.All() {
		sheet := rep.Family().Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		header := []interface{}{"Категория", "Подкатегория", "Цена"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		row := 2
		for _, it := range rep.AllPrices() {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
				return
			}
			line := []interface{}{it.Category, it.Subcategory, it.Price}
			if err := f.SetSheetRow(sheet, cell, &line); err != nil {
				http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
				return
			}
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		http.Error(w, "excel error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="prices.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}
