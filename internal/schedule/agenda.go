package schedule

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/dialog"
)

// Mode is the agenda's form state. Selection is tracked separately and can
// exist in any mode.
type Mode string

const (
	Browsing Mode = "browsing"
	Creating Mode = "creating"
	Editing  Mode = "editing"
)

var (
	ErrNoSelection = errors.New("no appointment selected")
	ErrNoDraft     = errors.New("no draft open")
	ErrSlotTaken   = errors.New("slot already has an appointment")
)

const confirmDeleteAppointment = "Deseja realmente excluir este agendamento?"

// Agenda is the single-user scheduling session: the displayed date, the
// selected appointment and the in-progress draft, over the shared store.
// Transitions are the only mutation path into the appointment collection.
type Agenda struct {
	store *clinic.Store
	log   zerolog.Logger

	date     string // displayed calendar date
	mode     Mode
	selected string // selected appointment id, "" when none
	draft    clinic.Appointment
}

func NewAgenda(store *clinic.Store, log zerolog.Logger, today string) *Agenda {
	return &Agenda{
		store: store,
		log:   log.With().Str("component", "agenda").Logger(),
		date:  today,
		mode:  Browsing,
	}
}

func (a *Agenda) Date() string       { return a.date }
func (a *Agenda) Mode() Mode         { return a.mode }
func (a *Agenda) SelectedID() string { return a.selected }

// Draft returns the in-progress draft; ok is false while browsing.
func (a *Agenda) Draft() (clinic.Appointment, bool) {
	return a.draft, a.mode != Browsing
}

// View renders the displayed date's grid.
func (a *Agenda) View() []SlotView {
	return DayView(a.date, a.store.AppointmentsOn(a.date))
}

// Navigate shifts the displayed date by deltaDays.
func (a *Agenda) Navigate(deltaDays int) error {
	next, err := ShiftDate(a.date, deltaDays)
	if err != nil {
		return err
	}
	a.date = next
	return nil
}

// SetDate jumps straight to a date, e.g. the "today" action.
func (a *Agenda) SetDate(date string) error {
	if _, err := ShiftDate(date, 0); err != nil {
		return err
	}
	a.date = date
	return nil
}

// Select marks an appointment as the active grid selection. Selecting an id
// that is not in the collection is a no-op, mirroring a click on an empty
// slot.
func (a *Agenda) Select(appointmentID string) bool {
	if _, err := a.store.AppointmentByID(appointmentID); err != nil {
		return false
	}
	a.selected = appointmentID
	return true
}

// StartCreate opens a fresh draft for presetDate (the displayed date when
// empty) with the grid's first slot and the default type.
func (a *Agenda) StartCreate(presetDate string) {
	if presetDate == "" {
		presetDate = a.date
	}
	a.draft = clinic.Appointment{
		Date: presetDate,
		Time: "08:00",
		Type: clinic.TypeConsulta,
	}
	a.mode = Creating
}

// StartEdit loads the selected appointment into the draft. Guarded: with
// nothing selected it fails and nothing changes.
func (a *Agenda) StartEdit() error {
	if a.selected == "" {
		return ErrNoSelection
	}
	appt, err := a.store.AppointmentByID(a.selected)
	if err != nil {
		return err
	}
	a.draft = appt
	a.mode = Editing
	return nil
}

// PutDraft replaces the draft's fields. The id and the mode are owned by the
// agenda, not the caller.
func (a *Agenda) PutDraft(d clinic.Appointment) error {
	if a.mode == Browsing {
		return ErrNoDraft
	}
	d.ID = a.draft.ID
	a.draft = d
	return nil
}

// BindPatient copies the patient's id, name and phone into the draft. The
// copy is a point-in-time snapshot; later edits to the patient do not
// propagate into the appointment.
func (a *Agenda) BindPatient(patientID string) error {
	if a.mode == Browsing {
		return ErrNoDraft
	}
	p, err := a.store.PatientByID(patientID)
	if err != nil {
		return err
	}
	a.draft.PatientID = p.ID
	a.draft.PatientName = p.Name
	a.draft.Phone = p.Phone
	return nil
}

// Save commits the draft. Creating appends a new appointment with a fresh id
// and default status Agendado; Editing overwrites the existing record by id.
// Either way the slot (date, time) must not belong to another appointment —
// double booking is rejected rather than silently shadowed. On success the
// agenda returns to browsing with the draft cleared.
func (a *Agenda) Save() (clinic.Appointment, error) {
	switch a.mode {
	case Creating:
		if occ := SlotOccupant(a.draft.Date, a.draft.Time, a.store.AppointmentsOn(a.draft.Date)); occ != nil {
			return clinic.Appointment{}, fmt.Errorf("%s %s: %w", a.draft.Date, a.draft.Time, ErrSlotTaken)
		}
		saved := a.store.AddAppointment(a.draft)
		a.reset()
		a.log.Info().Str("appointment_id", saved.ID).Str("date", saved.Date).Str("time", saved.Time).Msg("appointment created")
		return saved, nil
	case Editing:
		if occ := SlotOccupant(a.draft.Date, a.draft.Time, a.store.AppointmentsOn(a.draft.Date)); occ != nil && occ.ID != a.draft.ID {
			return clinic.Appointment{}, fmt.Errorf("%s %s: %w", a.draft.Date, a.draft.Time, ErrSlotTaken)
		}
		if err := a.store.UpdateAppointment(a.draft); err != nil {
			return clinic.Appointment{}, err
		}
		saved := a.draft
		a.reset()
		a.log.Info().Str("appointment_id", saved.ID).Msg("appointment updated")
		return saved, nil
	default:
		return clinic.Appointment{}, ErrNoDraft
	}
}

// Cancel discards the draft without touching the collection. The selection
// survives.
func (a *Agenda) Cancel() {
	a.draft = clinic.Appointment{}
	a.mode = Browsing
}

// Delete removes the selected appointment after the confirmer agrees.
// Declined confirmation leaves everything unchanged and reports deleted=false.
func (a *Agenda) Delete(confirm dialog.Confirmer) (bool, error) {
	if a.selected == "" {
		return false, ErrNoSelection
	}
	if !confirm.Confirm(confirmDeleteAppointment) {
		return false, nil
	}
	if err := a.store.DeleteAppointment(a.selected); err != nil {
		return false, err
	}
	a.log.Info().Str("appointment_id", a.selected).Msg("appointment deleted")
	a.selected = ""
	return true, nil
}

func (a *Agenda) reset() {
	a.draft = clinic.Appointment{}
	a.mode = Browsing
	a.selected = ""
}
