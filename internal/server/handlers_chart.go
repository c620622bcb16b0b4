package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/varlikapp/varlik/internal/models"
)

// assetTypeOrder fixes slice ordering in the allocation chart.
var assetTypeOrder = []models.AssetType{
	models.AssetTypeLiquid,
	models.AssetTypeTerm,
	models.AssetTypeGoldCurrency,
	models.AssetTypeFunds,
}

// handleAllocationChart handles GET /api/summary/allocation.png: a pie chart
// of asset value by type. Returns 204 when there is nothing to draw.
func (s *Server) handleAllocationChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	book := s.app.Ledger.Book()
	totals := make(map[models.AssetType]float64)
	for _, a := range book.Assets {
		totals[a.Type] += a.Value.Float64()
	}

	var values []chart.Value
	for _, t := range assetTypeOrder {
		// Negative or zero slices cannot be drawn.
		if v := totals[t]; v > 0 {
			values = append(values, chart.Value{
				Value: v,
				Label: fmt.Sprintf("%s (%.0f)", t, v),
			})
		}
	}
	if len(values) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		s.logger.Error().Err(err).Msg("Allocation chart render failed")
		WriteError(w, http.StatusInternalServerError, "Chart rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
