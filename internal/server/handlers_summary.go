package server

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/varlikapp/varlik/internal/common"
	"github.com/varlikapp/varlik/internal/currency"
	"github.com/varlikapp/varlik/internal/finance"
)

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
		"version": common.GetVersion(),
	})
}

// handleVersion handles GET /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"go":      runtime.Version(),
	})
}

// handleSummary handles GET /api/summary: the aggregated snapshot.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	symbol := currency.Symbol(s.app.Config.DisplayCurrency)
	WriteJSON(w, http.StatusOK, finance.BuildSummary(s.app.Ledger.Book(), symbol))
}

// handleSummaryHealth handles GET /api/summary/health with an optional
// credit_score query parameter.
func (s *Server) handleSummaryHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var creditScore *int
	if raw := r.URL.Query().Get("credit_score"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "credit_score must be an integer")
			return
		}
		creditScore = &v
	}

	WriteJSON(w, http.StatusOK, finance.BuildHealthReport(s.app.Ledger.Book(), creditScore))
}
