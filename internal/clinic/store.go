package clinic

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrInsuranceNotFound   = errors.New("insurance not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrReportNotFound      = errors.New("report not found")
)

// Store owns every collection for the process lifetime. There is one logical
// writer at a time, but the HTTP surface gives no single-thread guarantee, so
// mutations are serialized behind the mutex and each one applies atomically.
// Collections keep insertion order; navigation and search depend on it.
type Store struct {
	mu  sync.RWMutex
	ids IDGen

	patients     []Patient
	doctors      []Doctor
	insurances   []Insurance
	appointments []Appointment
	reports      []MedicalReport
	revenue      []RevenuePoint
}

// NewStore builds the store from a one-shot dataset snapshot.
func NewStore(ds Dataset, ids IDGen) *Store {
	if ids == nil {
		ids = UUIDGen
	}
	s := &Store{ids: ids}
	s.patients = append(s.patients, ds.Patients...)
	s.doctors = append(s.doctors, ds.Doctors...)
	s.insurances = append(s.insurances, ds.Insurances...)
	s.appointments = append(s.appointments, ds.Appointments...)
	s.reports = append(s.reports, ds.Reports...)
	s.revenue = append(s.revenue, ds.Revenue...)
	return s
}

// NewID exposes the injected generator for callers that mint ids outside the
// store, such as the navigator's temporary buffer ids.
func (s *Store) NewID() string {
	return s.ids()
}

// -- Patients --

func (s *Store) Patients() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

func (s *Store) PatientByID(id string) (Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return Patient{}, ErrPatientNotFound
}

// PatientIndex returns the record's position in collection order, -1 if absent.
func (s *Store) PatientIndex(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, p := range s.patients {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) PatientAt(i int) (Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.patients) {
		return Patient{}, false
	}
	return s.patients[i], true
}

func (s *Store) PatientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// AddPatient assigns a persistent id and appends the record.
func (s *Store) AddPatient(p Patient) Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.ids()
	s.patients = append(s.patients, p)
	return p
}

func (s *Store) UpdatePatient(p Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == p.ID {
			s.patients[i] = p
			return nil
		}
	}
	return ErrPatientNotFound
}

func (s *Store) DeletePatient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			return nil
		}
	}
	return ErrPatientNotFound
}

// SearchPatientsByName is a case-insensitive substring filter over the name
// field. An empty term yields the full collection; ordering follows the
// collection's own order.
func (s *Store) SearchPatientsByName(term string) []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(term)
	out := make([]Patient, 0, len(s.patients))
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// -- Doctors --

func (s *Store) Doctors() []Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

func (s *Store) DoctorByID(id string) (Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, ErrDoctorNotFound
}

// AddDoctor prepends: the registry lists newest first.
func (s *Store) AddDoctor(d Doctor) Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.ids()
	s.doctors = append([]Doctor{d}, s.doctors...)
	return d
}

func (s *Store) UpdateDoctor(d Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doctors {
		if s.doctors[i].ID == d.ID {
			s.doctors[i] = d
			return nil
		}
	}
	return ErrDoctorNotFound
}

func (s *Store) DeleteDoctor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return nil
		}
	}
	return ErrDoctorNotFound
}

// -- Insurances --

func (s *Store) Insurances() []Insurance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Insurance, len(s.insurances))
	copy(out, s.insurances)
	return out
}

func (s *Store) InsuranceByID(id string) (Insurance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ins := range s.insurances {
		if ins.ID == id {
			return ins, nil
		}
	}
	return Insurance{}, ErrInsuranceNotFound
}

func (s *Store) FirstInsuranceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.insurances) == 0 {
		return ""
	}
	return s.insurances[0].ID
}

func (s *Store) AddInsurance(ins Insurance) Insurance {
	s.mu.Lock()
	defer s.mu.Unlock()
	ins.ID = s.ids()
	if ins.Status == "" {
		ins.Status = InsuranceAtivo
	}
	s.insurances = append(s.insurances, ins)
	return ins
}

func (s *Store) UpdateInsurance(ins Insurance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.insurances {
		if s.insurances[i].ID == ins.ID {
			s.insurances[i] = ins
			return nil
		}
	}
	return ErrInsuranceNotFound
}

func (s *Store) DeleteInsurance(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.insurances {
		if s.insurances[i].ID == id {
			s.insurances = append(s.insurances[:i], s.insurances[i+1:]...)
			return nil
		}
	}
	return ErrInsuranceNotFound
}

// -- Appointments --

func (s *Store) Appointments() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) AppointmentByID(id string) (Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrAppointmentNotFound
}

// AppointmentsOn returns the appointments stored for one calendar date, in
// collection order.
func (s *Store) AppointmentsOn(date string) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Appointment
	for _, a := range s.appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) AddAppointment(a Appointment) Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.ids()
	if a.Status == "" {
		a.Status = StatusAgendado
	}
	s.appointments = append(s.appointments, a)
	return a
}

func (s *Store) UpdateAppointment(a Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == a.ID {
			s.appointments[i] = a
			return nil
		}
	}
	return ErrAppointmentNotFound
}

func (s *Store) DeleteAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return ErrAppointmentNotFound
}

// -- Medical reports --

func (s *Store) Reports() []MedicalReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MedicalReport, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *Store) ReportByID(id string) (MedicalReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return MedicalReport{}, ErrReportNotFound
}

// AddReport prepends: the report list shows newest first.
func (s *Store) AddReport(r MedicalReport) MedicalReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.ids()
	s.reports = append([]MedicalReport{r}, s.reports...)
	return r
}

func (s *Store) UpdateReport(r MedicalReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == r.ID {
			s.reports[i] = r
			return nil
		}
	}
	return ErrReportNotFound
}

func (s *Store) DeleteReport(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return nil
		}
	}
	return ErrReportNotFound
}

// -- Dashboard --

type DashboardSummary struct {
	Patients          int            `json:"patients"`
	Doctors           int            `json:"doctors"`
	ActiveInsurances  int            `json:"active_insurances"`
	AppointmentsToday int            `json:"appointments_today"`
	Reports           int            `json:"reports"`
	Revenue           []RevenuePoint `json:"revenue"`
}

func (s *Store) Dashboard(today string) DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := DashboardSummary{
		Patients: len(s.patients),
		Doctors:  len(s.doctors),
		Reports:  len(s.reports),
	}
	for _, ins := range s.insurances {
		if ins.Status == InsuranceAtivo {
			sum.ActiveInsurances++
		}
	}
	for _, a := range s.appointments {
		if a.Date == today {
			sum.AppointmentsToday++
		}
	}
	sum.Revenue = make([]RevenuePoint, len(s.revenue))
	copy(sum.Revenue, s.revenue)
	return sum
}
