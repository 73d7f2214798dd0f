package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/patient"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}

// writeDomainError maps the domain's sentinel errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clinic.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, clinic.ErrDoctorNotFound):
		writeError(w, http.StatusNotFound, "doctor_not_found", err.Error())
	case errors.Is(err, clinic.ErrInsuranceNotFound):
		writeError(w, http.StatusNotFound, "insurance_not_found", err.Error())
	case errors.Is(err, clinic.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
	case errors.Is(err, clinic.ErrReportNotFound):
		writeError(w, http.StatusNotFound, "report_not_found", err.Error())
	case errors.Is(err, schedule.ErrBadDate):
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
	case errors.Is(err, schedule.ErrNoSelection):
		writeError(w, http.StatusConflict, "no_selection", err.Error())
	case errors.Is(err, schedule.ErrNoDraft):
		writeError(w, http.StatusConflict, "no_draft", err.Error())
	case errors.Is(err, schedule.ErrSlotTaken):
		writeError(w, http.StatusConflict, "slot_taken", err.Error())
	case errors.Is(err, patient.ErrNameRequired):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, patient.ErrUnsavedRecord):
		writeError(w, http.StatusConflict, "unsaved_record", err.Error())
	case errors.Is(err, patient.ErrUnknownDirection):
		writeError(w, http.StatusBadRequest, "invalid_direction", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return false
	}
	return true
}
