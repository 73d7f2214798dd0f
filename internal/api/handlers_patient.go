package api

import (
	"net/http"

	"github.com/marciopitersena/clinca-neuro/internal/dialog"
)

func (h *Handler) recordState() RecordResponse {
	return RecordResponse{
		Mode:   string(h.nav.Mode()),
		Record: h.nav.Buffer(),
	}
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Patients())
}

func (h *Handler) searchPatients(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.store.SearchPatientsByName(term))
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) selectRecord(w http.ResponseWriter, r *http.Request) {
	var req SelectPatientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.nav.Select(req.ID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) insertRecord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nav.BeginInsert()
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) toggleEditRecord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nav.ToggleEdit()
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) patchRecord(w http.ResponseWriter, r *http.Request) {
	var patch PatientPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.nav.Buffer()
	patch.applyTo(&rec)
	h.nav.PutBuffer(rec)
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	saved, err := h.nav.Save()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) cancelRecord(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nav.Cancel()
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) navigateRecord(w http.ResponseWriter, r *http.Request) {
	var req DirectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.nav.Navigate(req.Direction); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.recordState())
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	deleted, err := h.nav.Delete(dialog.Answer(req.Confirm))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: deleted})
}
