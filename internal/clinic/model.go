package clinic

type AppointmentType string

const (
	TypeConsulta AppointmentType = "Consulta"
	TypeRetorno  AppointmentType = "Retorno"
	TypeExame    AppointmentType = "Exame"
)

type AppointmentStatus string

const (
	StatusAgendado   AppointmentStatus = "Agendado"
	StatusConfirmado AppointmentStatus = "Confirmado"
	StatusCancelado  AppointmentStatus = "Cancelado"
	StatusConcluido  AppointmentStatus = "Concluído"
)

type InsuranceStatus string

const (
	InsuranceAtivo   InsuranceStatus = "Ativo"
	InsuranceInativo InsuranceStatus = "Inativo"
)

type Patient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SocialName     string   `json:"social_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	BirthDate      string   `json:"birth_date,omitempty"` // YYYY-MM-DD
	Sex            string   `json:"sex,omitempty"`        // M or F
	Color          string   `json:"color,omitempty"`
	MaritalStatus  string   `json:"marital_status,omitempty"`
	BirthPlace     string   `json:"birth_place,omitempty"`
	Address        string   `json:"address,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	CEP            string   `json:"cep,omitempty"`
	Profession     string   `json:"profession,omitempty"`
	CPF            string   `json:"cpf,omitempty"`
	RG             string   `json:"rg,omitempty"`
	FatherName     string   `json:"father_name,omitempty"`
	MotherName     string   `json:"mother_name,omitempty"`
	SpouseName     string   `json:"spouse_name,omitempty"`
	Indication     string   `json:"indication,omitempty"`
	InsuranceID    string   `json:"insurance_id,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
}

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CRM       string `json:"crm"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type Insurance struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	ANSCode string          `json:"ans_code,omitempty"`
	Status  InsuranceStatus `json:"status"`
}

// Appointment holds a denormalized snapshot of the patient's name and phone,
// captured when the patient is bound to the draft. Editing the patient later
// does not update existing appointments.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id,omitempty"`
	PatientName string            `json:"patient_name"`
	Phone       string            `json:"phone,omitempty"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
}

// MedicalReport may carry an embedded exam sub-record in the Exam* fields.
type MedicalReport struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	DoctorID   string `json:"doctor_id"`
	Date       string `json:"date"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ExamName   string `json:"exam_name,omitempty"`
	ExamDate   string `json:"exam_date,omitempty"`
	ExamResult string `json:"exam_result,omitempty"`
}

// RevenuePoint is one month of the dashboard revenue series.
type RevenuePoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
