package clinic

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

func seqIDs() IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestStorePatients(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())

	p, err := s.PatientByID("1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "JULIA DE MIRANDA" {
		t.Errorf("name = %q", p.Name)
	}
	if _, err := s.PatientByID("nope"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}

	added := s.AddPatient(Patient{Name: "Bruno Lima"})
	if added.ID == "" {
		t.Fatal("AddPatient did not assign an id")
	}
	if s.PatientCount() != 2 {
		t.Errorf("count = %d, want 2", s.PatientCount())
	}
	// Appended, so it sits after the seeded record.
	if idx := s.PatientIndex(added.ID); idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}

	added.City = "Santos"
	if err := s.UpdatePatient(added); err != nil {
		t.Fatal(err)
	}
	got, _ := s.PatientByID(added.ID)
	if got.City != "Santos" {
		t.Errorf("update not applied: %q", got.City)
	}

	if err := s.DeletePatient(added.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeletePatient(added.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("double delete err = %v", err)
	}
}

func TestStorePatientAt(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	if _, ok := s.PatientAt(-1); ok {
		t.Error("PatientAt(-1) reported ok")
	}
	if _, ok := s.PatientAt(1); ok {
		t.Error("PatientAt past end reported ok")
	}
	p, ok := s.PatientAt(0)
	if !ok || p.ID != "1" {
		t.Errorf("PatientAt(0) = %+v ok=%v", p, ok)
	}
}

func TestStoreSearchPatientsByName(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	s.AddPatient(Patient{Name: "Juliana Ramos"})

	got := s.SearchPatientsByName("juli")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	// Collection order, not relevance order.
	if got[0].Name != "JULIA DE MIRANDA" {
		t.Errorf("first match = %q", got[0].Name)
	}
	if got := s.SearchPatientsByName("MIRANDA"); len(got) != 1 {
		t.Errorf("case-insensitive search failed: %d matches", len(got))
	}
}

func TestStoreDoctorsPrepend(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	added := s.AddDoctor(Doctor{Name: "Dr. Novo", CRM: "55555-SP"})
	docs := s.Doctors()
	if docs[0].ID != added.ID {
		t.Errorf("new doctor not first: %q", docs[0].ID)
	}
	if len(docs) != 3 {
		t.Errorf("count = %d, want 3", len(docs))
	}
}

func TestStoreInsurances(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	if got := s.FirstInsuranceID(); got != "i1" {
		t.Errorf("FirstInsuranceID = %q, want i1", got)
	}
	added := s.AddInsurance(Insurance{Name: "Nova Saúde", ANSCode: "111222"})
	if added.Status != InsuranceAtivo {
		t.Errorf("default status = %q, want %q", added.Status, InsuranceAtivo)
	}
	// Appends, so the first id is stable.
	if got := s.FirstInsuranceID(); got != "i1" {
		t.Errorf("FirstInsuranceID after add = %q", got)
	}
}

func TestStoreAppointments(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())

	on := s.AppointmentsOn("2024-05-20")
	if len(on) != 1 || on[0].ID != "101" {
		t.Fatalf("AppointmentsOn = %+v", on)
	}
	if got := s.AppointmentsOn("2024-05-21"); len(got) != 0 {
		t.Errorf("empty day returned %d appointments", len(got))
	}

	added := s.AddAppointment(Appointment{Date: "2024-05-21", Time: "09:00"})
	if added.Status != StatusAgendado {
		t.Errorf("default status = %q, want %q", added.Status, StatusAgendado)
	}

	added.Status = StatusCancelado
	if err := s.UpdateAppointment(added); err != nil {
		t.Fatal(err)
	}
	got, _ := s.AppointmentByID(added.ID)
	if got.Status != StatusCancelado {
		t.Errorf("status = %q", got.Status)
	}

	if err := s.DeleteAppointment(added.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppointmentByID(added.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestStoreReportsPrepend(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	added := s.AddReport(MedicalReport{PatientID: "1", Title: "Novo Laudo"})
	reports := s.Reports()
	if reports[0].ID != added.ID {
		t.Errorf("new report not first: %q", reports[0].ID)
	}
}

func TestStoreDashboard(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	sum := s.Dashboard("2024-05-20")

	if sum.Patients != 1 || sum.Doctors != 2 || sum.Reports != 1 {
		t.Errorf("counts = %+v", sum)
	}
	// i3 is inactive in the seed.
	if sum.ActiveInsurances != 2 {
		t.Errorf("active insurances = %d, want 2", sum.ActiveInsurances)
	}
	if sum.AppointmentsToday != 1 {
		t.Errorf("appointments today = %d, want 1", sum.AppointmentsToday)
	}
	if len(sum.Revenue) != 5 {
		t.Errorf("revenue points = %d, want 5", len(sum.Revenue))
	}

	other := s.Dashboard("2024-05-21")
	if other.AppointmentsToday != 0 {
		t.Errorf("appointments on other day = %d", other.AppointmentsToday)
	}
}

func TestStoreCopiesAreIsolated(t *testing.T) {
	s := NewStore(SeedDataset(), seqIDs())
	got := s.Patients()
	got[0].Name = "MUTATED"
	fresh, _ := s.PatientByID("1")
	if fresh.Name != "JULIA DE MIRANDA" {
		t.Error("returned slice aliases store memory")
	}
}

func TestTempIDs(t *testing.T) {
	id := TempID(seqIDs())
	if !IsTempID(id) {
		t.Errorf("TempID %q not recognized", id)
	}
	if IsTempID("id-1") {
		t.Error("plain id recognized as temporary")
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	want := SeedDataset()
	if err := WriteDataset(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadDataset(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Patients) != len(want.Patients) || len(got.Appointments) != len(want.Appointments) {
		t.Fatalf("round trip lost records: %+v", got)
	}
	if got.Patients[0].Name != "JULIA DE MIRANDA" {
		t.Errorf("patient name = %q", got.Patients[0].Name)
	}
}

func TestLoadDatasetEmptyPath(t *testing.T) {
	ds, err := LoadDataset("")
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Patients) == 0 {
		t.Error("empty path did not yield the seed snapshot")
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	if _, err := LoadDataset(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file did not error")
	}
}
