package server

import "net/http"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Auth
	mux.HandleFunc("/api/auth/pin", s.handleAuthSetPIN)
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)

	// Balance book
	mux.HandleFunc("/api/book", s.handleBook)
	mux.HandleFunc("/api/assets", s.handleAssets)
	mux.HandleFunc("/api/assets/", s.routeAsset)
	mux.HandleFunc("/api/liabilities", s.handleLiabilities)
	mux.HandleFunc("/api/liabilities/", s.routeLiability)
	mux.HandleFunc("/api/receivables", s.handleReceivables)
	mux.HandleFunc("/api/receivables/", s.routeReceivable)
	mux.HandleFunc("/api/installments", s.handleInstallments)
	mux.HandleFunc("/api/installments/", s.routeInstallment)

	// Aggregation
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/summary/health", s.handleSummaryHealth)
	mux.HandleFunc("/api/summary/allocation.png", s.handleAllocationChart)

	// Advisor
	mux.HandleFunc("/api/advisor/chat", s.handleAdvisorChat)
	mux.HandleFunc("/api/advisor/report", s.handleAdvisorReport)
}
