package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
)

// The registry endpoints are plain request/response CRUD; the only
// state-machine behavior is the confirmation required before any delete.

func confirmedQuery(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// -- Doctors --

func (h *Handler) listDoctors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Doctors())
}

func (h *Handler) createDoctor(w http.ResponseWriter, r *http.Request) {
	var d clinic.Doctor
	if !decodeBody(w, r, &d) {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddDoctor(d))
}

func (h *Handler) getDoctor(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.DoctorByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) updateDoctor(w http.ResponseWriter, r *http.Request) {
	var d clinic.Doctor
	if !decodeBody(w, r, &d) {
		return
	}
	d.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateDoctor(d); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) deleteDoctor(w http.ResponseWriter, r *http.Request) {
	if !confirmedQuery(r) {
		writeJSON(w, http.StatusOK, DeleteResponse{Deleted: false})
		return
	}
	if err := h.store.DeleteDoctor(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true})
}

// -- Insurances --

func (h *Handler) listInsurances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Insurances())
}

func (h *Handler) createInsurance(w http.ResponseWriter, r *http.Request) {
	var ins clinic.Insurance
	if !decodeBody(w, r, &ins) {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddInsurance(ins))
}

func (h *Handler) getInsurance(w http.ResponseWriter, r *http.Request) {
	ins, err := h.store.InsuranceByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

func (h *Handler) updateInsurance(w http.ResponseWriter, r *http.Request) {
	var ins clinic.Insurance
	if !decodeBody(w, r, &ins) {
		return
	}
	ins.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateInsurance(ins); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

func (h *Handler) deleteInsurance(w http.ResponseWriter, r *http.Request) {
	if !confirmedQuery(r) {
		writeJSON(w, http.StatusOK, DeleteResponse{Deleted: false})
		return
	}
	if err := h.store.DeleteInsurance(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true})
}

// -- Medical reports --

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Reports())
}

func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	var rep clinic.MedicalReport
	if !decodeBody(w, r, &rep) {
		return
	}
	if _, err := h.store.PatientByID(rep.PatientID); err != nil {
		writeDomainError(w, err)
		return
	}
	if rep.DoctorID != "" {
		if _, err := h.store.DoctorByID(rep.DoctorID); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusCreated, h.store.AddReport(rep))
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.store.ReportByID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) updateReport(w http.ResponseWriter, r *http.Request) {
	var rep clinic.MedicalReport
	if !decodeBody(w, r, &rep) {
		return
	}
	rep.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateReport(rep); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	if !confirmedQuery(r) {
		writeJSON(w, http.StatusOK, DeleteResponse{Deleted: false})
		return
	}
	if err := h.store.DeleteReport(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: true})
}

// -- Dashboard --

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Dashboard(h.today()))
}
