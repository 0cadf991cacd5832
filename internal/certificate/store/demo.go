package store

import (
	"time"

	"sumbandila/internal/certificate/models"
)

// DemoCertificates seeds the in-memory registry when no database is configured.
func DemoCertificates() []*models.Certificate {
	return []*models.Certificate{
		{
			Number:      "CERT-2024-0001",
			StudentName: "Sipho Dlamini",
			Course:      "BSc Computer Science",
			Institution: "University of Cape Town",
			IssueDate:   time.Date(2024, time.December, 6, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusValid,
		},
		{
			Number:      "CERT-2023-0042",
			StudentName: "Lerato Mokoena",
			Course:      "Diploma in Nursing",
			Institution: "University of Pretoria",
			IssueDate:   time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
			Status:      models.StatusRevoked,
		},
	}
}
