// Package patient implements the record navigator: the insert/view/edit
// state machine over the patient collection, with positional navigation and
// incremental name search.
package patient

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/dialog"
)

type Mode string

const (
	Viewing   Mode = "viewing"
	Editing   Mode = "editing"
	Inserting Mode = "inserting"
)

// Direction of positional navigation through the collection.
const (
	Prev = "prev"
	Next = "next"
)

var (
	ErrNameRequired     = errors.New("patient name is required")
	ErrUnsavedRecord    = errors.New("record has not been saved yet")
	ErrUnknownDirection = errors.New("unknown navigate direction")
)

const (
	confirmDeletePatient = "Tem certeza que quer apagar o paciente?"
	notifySaved          = "Dados gravados com sucesso!"
	notifyDeleted        = "Paciente excluído com sucesso!"
	notifyUnsaved        = "Não é possível apagar um registro que ainda não foi salvo."
)

// Navigator is the single-user patient-record session. The buffer holds the
// record being viewed or drafted; the store is only touched by Save and
// Delete.
type Navigator struct {
	store  *clinic.Store
	notify dialog.Notifier
	log    zerolog.Logger

	mode   Mode
	buffer clinic.Patient
}

func NewNavigator(store *clinic.Store, notify dialog.Notifier, log zerolog.Logger) *Navigator {
	if notify == nil {
		notify = dialog.Silent{}
	}
	n := &Navigator{
		store:  store,
		notify: notify,
		log:    log.With().Str("component", "patient-navigator").Logger(),
	}
	n.BeginInsert()
	return n
}

func (n *Navigator) Mode() Mode             { return n.mode }
func (n *Navigator) Buffer() clinic.Patient { return n.buffer }

// Select loads the matching record into the buffer in read-only viewing
// mode. An empty id falls back to starting a fresh insert.
func (n *Navigator) Select(id string) error {
	if id == "" {
		n.BeginInsert()
		return nil
	}
	p, err := n.store.PatientByID(id)
	if err != nil {
		return err
	}
	n.buffer = p
	n.mode = Viewing
	return nil
}

// BeginInsert replaces the buffer with a blank template carrying a
// temporary id, recognizable as not yet persisted.
func (n *Navigator) BeginInsert() {
	n.buffer = clinic.Patient{
		ID:            clinic.TempID(n.store.NewID),
		Sex:           "F",
		Color:         "Branca",
		MaritalStatus: "Solteiro(a)",
		InsuranceID:   n.store.FirstInsuranceID(),
	}
	n.mode = Inserting
}

// ToggleEdit flips viewing and editing for a persisted record. It has no
// effect while inserting, which is editable by construction.
func (n *Navigator) ToggleEdit() {
	switch n.mode {
	case Viewing:
		n.mode = Editing
	case Editing:
		n.mode = Viewing
	}
}

// PutBuffer replaces the buffer's fields; the id stays whatever the current
// record carries.
func (n *Navigator) PutBuffer(p clinic.Patient) {
	p.ID = n.buffer.ID
	n.buffer = p
}

// Save validates the buffer and commits it. Inserting appends with a fresh
// persistent id; otherwise the stored record is overwritten in place by id.
// Repeated saves with an unchanged buffer are idempotent.
func (n *Navigator) Save() (clinic.Patient, error) {
	if strings.TrimSpace(n.buffer.Name) == "" {
		return clinic.Patient{}, ErrNameRequired
	}
	if n.mode == Inserting {
		saved := n.store.AddPatient(n.buffer)
		n.buffer = saved
		n.mode = Viewing
		n.log.Info().Str("patient_id", saved.ID).Msg("patient created")
		n.notify.Notify(notifySaved)
		return saved, nil
	}
	if err := n.store.UpdatePatient(n.buffer); err != nil {
		return clinic.Patient{}, err
	}
	n.mode = Viewing
	n.log.Info().Str("patient_id", n.buffer.ID).Msg("patient updated")
	n.notify.Notify(notifySaved)
	return n.buffer, nil
}

// Cancel discards unsaved work. From inserting it falls back to the first
// record, or a blank template when the collection is empty. From editing it
// reloads the persisted record and returns to viewing.
func (n *Navigator) Cancel() {
	if n.mode == Inserting {
		if first, ok := n.store.PatientAt(0); ok {
			_ = n.Select(first.ID)
			return
		}
		n.BeginInsert()
		return
	}
	if p, err := n.store.PatientByID(n.buffer.ID); err == nil {
		n.buffer = p
	}
	n.mode = Viewing
}

// Delete removes the active record after confirmation. A record that was
// never saved cannot be deleted. On success the buffer resets to a blank
// insert, ready for a new entry.
func (n *Navigator) Delete(confirm dialog.Confirmer) (bool, error) {
	if n.mode == Inserting || n.buffer.ID == "" || clinic.IsTempID(n.buffer.ID) {
		n.notify.Notify(notifyUnsaved)
		return false, ErrUnsavedRecord
	}
	if !confirm.Confirm(confirmDeletePatient) {
		return false, nil
	}
	if err := n.store.DeletePatient(n.buffer.ID); err != nil {
		return false, err
	}
	n.log.Info().Str("patient_id", n.buffer.ID).Msg("patient deleted")
	n.notify.Notify(notifyDeleted)
	n.BeginInsert()
	return true, nil
}

// Navigate moves to the previous or next record in collection order,
// clamping at the ends. An empty collection is a no-op.
func (n *Navigator) Navigate(direction string) error {
	count := n.store.PatientCount()
	if count == 0 {
		return nil
	}
	idx := n.store.PatientIndex(n.buffer.ID)
	switch direction {
	case Prev:
		if idx > 0 {
			idx--
		} else {
			idx = 0
		}
	case Next:
		if idx < count-1 {
			idx++
		} else {
			idx = count - 1
		}
	default:
		return ErrUnknownDirection
	}
	target, ok := n.store.PatientAt(idx)
	if !ok {
		return nil
	}
	return n.Select(target.ID)
}

// Search filters the collection by case-insensitive substring on the name.
func (n *Navigator) Search(term string) []clinic.Patient {
	return n.store.SearchPatientsByName(term)
}
