package api

import (
	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AgendaResponse is the full agenda session state plus the rendered grid.
type AgendaResponse struct {
	Date       string              `json:"date"`
	Mode       string              `json:"mode"`
	SelectedID string              `json:"selected_id,omitempty"`
	Draft      *clinic.Appointment `json:"draft,omitempty"`
	Slots      []schedule.SlotView `json:"slots"`
}

type NavigateRequest struct {
	Delta int `json:"delta"`
}

type SelectAppointmentRequest struct {
	AppointmentID string `json:"appointment_id"`
}

type StartDraftRequest struct {
	Date string `json:"date,omitempty"`
}

// AppointmentPatch merges into the open draft; absent fields keep their
// prior values. Setting patient_id binds the patient snapshot.
type AppointmentPatch struct {
	PatientID   *string `json:"patient_id"`
	PatientName *string `json:"patient_name"`
	Phone       *string `json:"phone"`
	DoctorName  *string `json:"doctor_name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
}

func (p AppointmentPatch) applyTo(a *clinic.Appointment) (bindPatient string) {
	if p.PatientName != nil {
		a.PatientName = *p.PatientName
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.DoctorName != nil {
		a.DoctorName = *p.DoctorName
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Type != nil {
		a.Type = clinic.AppointmentType(*p.Type)
	}
	if p.Status != nil {
		a.Status = clinic.AppointmentStatus(*p.Status)
	}
	if p.PatientID != nil {
		return *p.PatientID
	}
	return ""
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// RecordResponse is the patient-record session state.
type RecordResponse struct {
	Mode   string         `json:"mode"`
	Record clinic.Patient `json:"record"`
}

type SelectPatientRequest struct {
	ID string `json:"id"`
}

type DirectionRequest struct {
	Direction string `json:"direction"`
}

// PatientPatch merges into the record buffer; absent fields keep prior
// values.
type PatientPatch struct {
	Name           *string   `json:"name"`
	SocialName     *string   `json:"social_name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	BirthDate      *string   `json:"birth_date"`
	Sex            *string   `json:"sex"`
	Color          *string   `json:"color"`
	MaritalStatus  *string   `json:"marital_status"`
	BirthPlace     *string   `json:"birth_place"`
	Address        *string   `json:"address"`
	City           *string   `json:"city"`
	State          *string   `json:"state"`
	CEP            *string   `json:"cep"`
	Profession     *string   `json:"profession"`
	CPF            *string   `json:"cpf"`
	RG             *string   `json:"rg"`
	FatherName     *string   `json:"father_name"`
	MotherName     *string   `json:"mother_name"`
	SpouseName     *string   `json:"spouse_name"`
	Indication     *string   `json:"indication"`
	InsuranceID    *string   `json:"insurance_id"`
	MedicalHistory *[]string `json:"medical_history"`
}

func (p PatientPatch) applyTo(rec *clinic.Patient) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&rec.Name, p.Name)
	set(&rec.SocialName, p.SocialName)
	set(&rec.Email, p.Email)
	set(&rec.Phone, p.Phone)
	set(&rec.BirthDate, p.BirthDate)
	set(&rec.Sex, p.Sex)
	set(&rec.Color, p.Color)
	set(&rec.MaritalStatus, p.MaritalStatus)
	set(&rec.BirthPlace, p.BirthPlace)
	set(&rec.Address, p.Address)
	set(&rec.City, p.City)
	set(&rec.State, p.State)
	set(&rec.CEP, p.CEP)
	set(&rec.Profession, p.Profession)
	set(&rec.CPF, p.CPF)
	set(&rec.RG, p.RG)
	set(&rec.FatherName, p.FatherName)
	set(&rec.MotherName, p.MotherName)
	set(&rec.SpouseName, p.SpouseName)
	set(&rec.Indication, p.Indication)
	set(&rec.InsuranceID, p.InsuranceID)
	if p.MedicalHistory != nil {
		rec.MedicalHistory = *p.MedicalHistory
	}
}

type SummaryRequest struct {
	PatientID string `json:"patient_id"`
}

type DiagnosisRequest struct {
	Symptoms string `json:"symptoms"`
}

type PrescriptionRequest struct {
	Diagnosis string `json:"diagnosis"`
}

type TextResponse struct {
	Text string `json:"text"`
}
