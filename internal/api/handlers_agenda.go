package api

import (
	"net/http"

	"github.com/marciopitersena/clinca-neuro/internal/dialog"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
)

// agendaState snapshots the session for the response. Callers hold h.mu.
func (h *Handler) agendaState() AgendaResponse {
	resp := AgendaResponse{
		Date:       h.agenda.Date(),
		Mode:       string(h.agenda.Mode()),
		SelectedID: h.agenda.SelectedID(),
		Slots:      h.agenda.View(),
	}
	if draft, ok := h.agenda.Draft(); ok {
		resp.Draft = &draft
	}
	return resp
}

func (h *Handler) getAgenda(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if date := r.URL.Query().Get("date"); date != "" {
		if err := h.agenda.SetDate(date); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) navigateAgenda(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.agenda.Navigate(req.Delta); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) agendaToday(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.agenda.SetDate(h.today()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) selectAppointment(w http.ResponseWriter, r *http.Request) {
	var req SelectAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Selecting an empty slot is a no-op, not an error.
	h.agenda.Select(req.AppointmentID)
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) startDraft(w http.ResponseWriter, r *http.Request) {
	var req StartDraftRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.agenda.StartCreate(req.Date)
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) startEdit(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.agenda.StartEdit(); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) patchDraft(w http.ResponseWriter, r *http.Request) {
	var patch AppointmentPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	draft, ok := h.agenda.Draft()
	if !ok {
		writeDomainError(w, schedule.ErrNoDraft)
		return
	}
	bindID := patch.applyTo(&draft)
	if err := h.agenda.PutDraft(draft); err != nil {
		writeDomainError(w, err)
		return
	}
	if bindID != "" {
		if err := h.agenda.BindPatient(bindID); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	saved, err := h.agenda.Save()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) cancelDraft(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.agenda.Cancel()
	writeJSON(w, http.StatusOK, h.agendaState())
}

func (h *Handler) deleteSelection(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	deleted, err := h.agenda.Delete(dialog.Answer(req.Confirm))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteResponse{Deleted: deleted})
}
