package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"insightdeck/internal/model"
	"insightdeck/internal/service"
)

// ResponseHandler handles respondent submissions
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// SubmitRequest is the request body for submitting a response
type SubmitRequest struct {
	RespondentName    string            `json:"respondentName,omitempty"`
	RespondentContact string            `json:"respondentContact,omitempty"`
	CompletionSeconds float64           `json:"completionSeconds,omitempty"`
	Answers           map[string]string `json:"answers"`
}

// Submit handles POST /v1/surveys/{surveyId}/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response := &model.Response{
		RespondentName:    req.RespondentName,
		RespondentContact: req.RespondentContact,
		CompletionSeconds: req.CompletionSeconds,
		Answers:           req.Answers,
	}

	stored, err := h.responseSvc.Submit(r.Context(), surveyID, response)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"responseId": stored.ID})
}
