package clinic

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the one-shot snapshot the store is built from. Nothing is
// written back: the process always restarts from a dataset.
type Dataset struct {
	Patients     []Patient       `json:"patients"`
	Doctors      []Doctor        `json:"doctors"`
	Insurances   []Insurance     `json:"insurances"`
	Appointments []Appointment   `json:"appointments"`
	Reports      []MedicalReport `json:"reports"`
	Revenue      []RevenuePoint  `json:"revenue"`
}

// SeedDataset is the fixed initial snapshot.
func SeedDataset() Dataset {
	return Dataset{
		Patients: []Patient{
			{
				ID:             "1",
				Name:           "JULIA DE MIRANDA",
				SocialName:     "Ricardo",
				Email:          "comercial@pes.com.br",
				Phone:          "(11) 3286-5300",
				BirthDate:      "1977-04-04",
				Sex:            "F",
				Color:          "Branca",
				MaritalStatus:  "Casado(a)",
				BirthPlace:     "São Paulo",
				Address:        "Rua 1 de Junho, Jardim Gaivotas",
				City:           "São Paulo",
				State:          "SP",
				CEP:            "04849-307",
				Profession:     "Professor(a)",
				CPF:            "333.444.555-67",
				RG:             "12.345.678-9",
				FatherName:     "Carlos Miranda",
				MotherName:     "Laura Miranda",
				SpouseName:     "Daniel Souza",
				Indication:     "Juliana Miranda",
				InsuranceID:    "i1",
				MedicalHistory: []string{"Hipertensão"},
			},
		},
		Doctors: []Doctor{
			{ID: "d1", Name: "Dr. Roberto Santos", CRM: "12345-SP", Specialty: "Cardiologia", Phone: "(11) 91111-2222", Email: "roberto@clinica.com"},
			{ID: "d2", Name: "Dra. Maria Clara", CRM: "67890-SP", Specialty: "Dermatologia", Phone: "(11) 92222-3333", Email: "maria@clinica.com"},
		},
		Insurances: []Insurance{
			{ID: "i1", Name: "Unimed", ANSCode: "456789", Status: InsuranceAtivo},
			{ID: "i2", Name: "Bradesco Saúde", ANSCode: "123123", Status: InsuranceAtivo},
			{ID: "i3", Name: "SulAmérica", ANSCode: "999888", Status: InsuranceInativo},
		},
		Appointments: []Appointment{
			{
				ID:          "101",
				PatientID:   "1",
				PatientName: "JULIA DE MIRANDA",
				Phone:       "(11) 3286-5300",
				DoctorName:  "Dr. Roberto Santos",
				Date:        "2024-05-20",
				Time:        "09:00",
				Type:        TypeConsulta,
				Status:      StatusConfirmado,
			},
		},
		Reports: []MedicalReport{
			{
				ID:        "r1",
				PatientID: "1",
				DoctorID:  "d1",
				Date:      "2024-05-15",
				Title:     "Eletrocardiograma de Repouso",
				Content:   "Ritmo sinusal regular, sem alterações de repolarização.",
			},
		},
		Revenue: []RevenuePoint{
			{Name: "Jan", Value: 45000},
			{Name: "Fev", Value: 52000},
			{Name: "Mar", Value: 48000},
			{Name: "Abr", Value: 61000},
			{Name: "Mai", Value: 55000},
		},
	}
}

// LoadDataset reads a dataset file written by cmd/seed. An empty path falls
// back to the fixed snapshot.
func LoadDataset(path string) (Dataset, error) {
	if path == "" {
		return SeedDataset(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}

// WriteDataset writes the snapshot consumed via DATASET_PATH.
func WriteDataset(path string, ds Dataset) error {
	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
