package server

import (
	"net/http"
	"strings"

	"github.com/varlikapp/varlik/internal/interfaces"
)

type chatRequest struct {
	Message string                `json:"message"`
	History []interfaces.ChatTurn `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type reportRequest struct {
	CreditScore *int `json:"credit_score"`
}

type reportResponse struct {
	Report string `json:"report"`
}

// handleAdvisorChat handles POST /api/advisor/chat.
func (s *Server) handleAdvisorChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req chatRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := s.app.Advisor.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		s.logger.Error().Err(err).Msg("Advisor chat failed")
		WriteError(w, http.StatusBadGateway, "Advisor is unavailable")
		return
	}

	WriteJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// handleAdvisorReport handles POST /api/advisor/report.
func (s *Server) handleAdvisorReport(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req reportRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	report, err := s.app.Advisor.GenerateCFOReport(r.Context(), req.CreditScore)
	if err != nil {
		s.logger.Error().Err(err).Msg("CFO report failed")
		WriteError(w, http.StatusBadGateway, "Advisor is unavailable")
		return
	}

	WriteJSON(w, http.StatusOK, reportResponse{Report: report})
}
