// Command seed writes a demo dataset file: the fixed snapshot layered with
// generated patients, doctors and appointments. Point the server at it with
// DATASET_PATH.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
	"github.com/marciopitersena/clinca-neuro/internal/schedule"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("seed starting")

	outPath := getEnv("DATASET_PATH", "dataset.json")
	patientCount := getInt("SEED_PATIENTS", 40)
	doctorCount := getInt("SEED_DOCTORS", 6)
	dayCount := getInt("SEED_DAYS", 5)

	if raw := os.Getenv("SEED"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Fatal().Str("seed", raw).Msg("SEED must be an unsigned integer")
		}
		gofakeit.Seed(n)
	} else {
		gofakeit.Seed(uint64(time.Now().UnixNano()))
	}

	ds := clinic.SeedDataset()
	ds.Doctors = append(ds.Doctors, makeDoctors(doctorCount)...)
	ds.Patients = append(ds.Patients, makePatients(patientCount, ds.Insurances)...)
	ds.Appointments = append(ds.Appointments, makeAppointments(dayCount, ds.Patients, ds.Doctors, ds.Appointments)...)

	if err := clinic.WriteDataset(outPath, ds); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("write dataset")
	}

	log.Info().
		Str("path", outPath).
		Int("patients", len(ds.Patients)).
		Int("doctors", len(ds.Doctors)).
		Int("appointments", len(ds.Appointments)).
		Msg("seed complete")
}

var specialties = []string{
	"Cardiologia",
	"Dermatologia",
	"Clínica Geral",
	"Ortopedia",
	"Endocrinologia",
	"Neurologia",
	"Pediatria",
	"Psiquiatria",
	"Oftalmologia",
	"Otorrinolaringologia",
}

var conditions = []string{
	"Hipertensão",
	"Diabetes tipo 2",
	"Asma",
	"Rinite alérgica",
	"Dislipidemia",
	"Enxaqueca",
	"Hipotireoidismo",
}

func makeDoctors(count int) []clinic.Doctor {
	out := make([]clinic.Doctor, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, clinic.Doctor{
			ID:        fmt.Sprintf("d%d", i+100),
			Name:      "Dr. " + gofakeit.Name(),
			CRM:       gofakeit.Numerify("#####-SP"),
			Specialty: specialties[gofakeit.Number(0, len(specialties)-1)],
			Phone:     gofakeit.Numerify("(11) 9####-####"),
			Email:     gofakeit.Email(),
		})
	}
	return out
}

func makePatients(count int, insurances []clinic.Insurance) []clinic.Patient {
	out := make([]clinic.Patient, 0, count)
	for i := 0; i < count; i++ {
		var history []string
		for _, c := range conditions {
			if gofakeit.Bool() && len(history) < 3 {
				history = append(history, c)
			}
		}
		ins := insurances[gofakeit.Number(0, len(insurances)-1)]
		out = append(out, clinic.Patient{
			ID:             fmt.Sprintf("%d", i+1000),
			Name:           gofakeit.Name(),
			Email:          gofakeit.Email(),
			Phone:          gofakeit.Numerify("(11) 9####-####"),
			BirthDate:      gofakeit.DateRange(
				time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
			).Format("2006-01-02"),
			Sex:            pick("M", "F"),
			City:           gofakeit.City(),
			State:          "SP",
			CPF:            gofakeit.Numerify("###.###.###-##"),
			RG:             gofakeit.Numerify("##.###.###-#"),
			InsuranceID:    ins.ID,
			MedicalHistory: history,
		})
	}
	return out
}

// makeAppointments books random open slots over the next dayCount days,
// never double-booking a (date, time) pair.
func makeAppointments(dayCount int, patients []clinic.Patient, doctors []clinic.Doctor, existing []clinic.Appointment) []clinic.Appointment {
	taken := make(map[string]bool, len(existing))
	for _, a := range existing {
		taken[a.Date+" "+a.Time] = true
	}

	slots := schedule.GenerateSlots()
	types := []clinic.AppointmentType{clinic.TypeConsulta, clinic.TypeRetorno, clinic.TypeExame}

	var out []clinic.Appointment
	id := 200
	for day := 0; day < dayCount; day++ {
		date := time.Now().AddDate(0, 0, day).Format(schedule.DateLayout)
		for _, slot := range slots {
			if taken[date+" "+slot] || !gofakeit.Bool() {
				continue
			}
			p := patients[gofakeit.Number(0, len(patients)-1)]
			d := doctors[gofakeit.Number(0, len(doctors)-1)]
			out = append(out, clinic.Appointment{
				ID:          fmt.Sprintf("%d", id),
				PatientID:   p.ID,
				PatientName: p.Name,
				Phone:       p.Phone,
				DoctorName:  d.Name,
				Date:        date,
				Time:        slot,
				Type:        types[gofakeit.Number(0, len(types)-1)],
				Status:      clinic.StatusAgendado,
			})
			taken[date+" "+slot] = true
			id++
		}
	}
	return out
}

func pick(options ...string) string {
	return options[gofakeit.Number(0, len(options)-1)]
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
