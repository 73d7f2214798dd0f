package api

import (
	"net/http"
	"strings"
)

// The AI handlers block only the initiating request; the rest of the session
// is untouched while a call is in flight, so none of them take h.mu.

func (h *Handler) aiSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.store.PatientByID(req.PatientID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	text := h.ai.Summarize(r.Context(), p.Name, p.MedicalHistory)
	writeJSON(w, http.StatusOK, TextResponse{Text: text})
}

func (h *Handler) aiDiagnosis(w http.ResponseWriter, r *http.Request) {
	var req DiagnosisRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "symptoms must not be empty")
		return
	}

	text := h.ai.SuggestDiagnoses(r.Context(), req.Symptoms)
	writeJSON(w, http.StatusOK, TextResponse{Text: text})
}

func (h *Handler) aiPrescription(w http.ResponseWriter, r *http.Request) {
	var req PrescriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Diagnosis) == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "diagnosis must not be empty")
		return
	}

	text := h.ai.DraftPrescription(r.Context(), req.Diagnosis)
	writeJSON(w, http.StatusOK, TextResponse{Text: text})
}
