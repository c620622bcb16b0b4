package server

import (
	"net/http"

	"github.com/varlikapp/varlik/internal/models"
)

// Entity CRUD. Creates return the stored entity (the store always assigns a
// fresh id, discarding any caller-supplied one). Updates and deletes return
// 204 regardless of whether the id existed: the store contract is a silent
// no-op on unknown ids and callers cannot distinguish the two cases.

// handleBook handles GET /api/book: the full balance book.
func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, s.app.Ledger.Book())
}

// --- Assets ---

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Ledger.Book().Assets)
	case http.MethodPost:
		var asset models.Asset
		if !DecodeJSON(w, r, &asset) {
			return
		}
		WriteJSON(w, http.StatusCreated, s.app.Ledger.AddAsset(asset))
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) routeAsset(w http.ResponseWriter, r *http.Request) {
	id := pathID("/api/assets/", r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusNotFound, "Asset id required")
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var patch models.AssetPatch
		if !DecodeJSON(w, r, &patch) {
			return
		}
		s.app.Ledger.UpdateAsset(id, patch)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.app.Ledger.RemoveAsset(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		RequireMethod(w, r, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}

// --- Liabilities ---

func (s *Server) handleLiabilities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Ledger.Book().Liabilities)
	case http.MethodPost:
		var liability models.Liability
		if !DecodeJSON(w, r, &liability) {
			return
		}
		WriteJSON(w, http.StatusCreated, s.app.Ledger.AddLiability(liability))
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) routeLiability(w http.ResponseWriter, r *http.Request) {
	id := pathID("/api/liabilities/", r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusNotFound, "Liability id required")
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var patch models.LiabilityPatch
		if !DecodeJSON(w, r, &patch) {
			return
		}
		s.app.Ledger.UpdateLiability(id, patch)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.app.Ledger.RemoveLiability(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		RequireMethod(w, r, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}

// --- Receivables ---

func (s *Server) handleReceivables(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Ledger.Book().Receivables)
	case http.MethodPost:
		var receivable models.Receivable
		if !DecodeJSON(w, r, &receivable) {
			return
		}
		WriteJSON(w, http.StatusCreated, s.app.Ledger.AddReceivable(receivable))
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) routeReceivable(w http.ResponseWriter, r *http.Request) {
	id := pathID("/api/receivables/", r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusNotFound, "Receivable id required")
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var patch models.ReceivablePatch
		if !DecodeJSON(w, r, &patch) {
			return
		}
		s.app.Ledger.UpdateReceivable(id, patch)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.app.Ledger.RemoveReceivable(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		RequireMethod(w, r, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}

// --- Installments ---

func (s *Server) handleInstallments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		WriteJSON(w, http.StatusOK, s.app.Ledger.Book().Installments)
	case http.MethodPost:
		var installment models.Installment
		if !DecodeJSON(w, r, &installment) {
			return
		}
		WriteJSON(w, http.StatusCreated, s.app.Ledger.AddInstallment(installment))
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) routeInstallment(w http.ResponseWriter, r *http.Request) {
	id := pathID("/api/installments/", r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusNotFound, "Installment id required")
		return
	}

	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		var patch models.InstallmentPatch
		if !DecodeJSON(w, r, &patch) {
			return
		}
		s.app.Ledger.UpdateInstallment(id, patch)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		s.app.Ledger.RemoveInstallment(id)
		w.WriteHeader(http.StatusNoContent)
	default:
		RequireMethod(w, r, http.MethodPut, http.MethodPatch, http.MethodDelete)
	}
}
