package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"insightdeck/internal/export"
	"insightdeck/internal/service"
	"insightdeck/internal/transport/rest/middleware"
)

// InsightsHandler handles the insights retrieval endpoints
type InsightsHandler struct {
	insightSvc *service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightSvc *service.InsightService) *InsightsHandler {
	return &InsightsHandler{insightSvc: insightSvc}
}

// Get handles GET /v1/surveys/{surveyId}/insights
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	surveyID := mux.Vars(r)["surveyId"]
	refresh := r.URL.Query().Get("refresh") == "1"

	report, err := h.insightSvc.GetReport(r.Context(), hostID, surveyID, refresh)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /v1/surveys/{surveyId}/insights/export
func (h *InsightsHandler) Export(w http.ResponseWriter, r *http.Request) {
	hostID := middleware.GetHostID(r.Context())
	if hostID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	surveyID := mux.Vars(r)["surveyId"]

	report, err := h.insightSvc.GetReport(r.Context(), hostID, surveyID, false)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	workbook, err := export.ReportWorkbook(report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="insights-%s.xlsx"`, surveyID))
	if err := workbook.Write(w); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}
