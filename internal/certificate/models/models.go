// Package models holds certificate registry records and wire types.
package models

import (
	"time"

	"sumbandila/pkg/domain"
)

// Status is the lifecycle state recorded by the issuing institution.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusRevoked Status = "REVOKED"
)

// IssueDateLayout is the wire format of issue_date.
const IssueDateLayout = "2006-01-02"

// Certificate is one row of certificate_verification_view.
type Certificate struct {
	Number      domain.CertificateNumber
	StudentName string
	Course      string
	Institution string
	IssueDate   time.Time
	Status      Status
}

// IsRevoked reports whether the issuer withdrew the certificate.
func (c *Certificate) IsRevoked() bool {
	return c.Status == StatusRevoked
}

// VerificationResponse is the body of GET /verify/{cert_number}.
type VerificationResponse struct {
	CertificateNumber string `json:"certificate_number"`
	Status            string `json:"status"`
	StudentName       string `json:"student_name"`
	Course            string `json:"course"`
	Institution       string `json:"institution"`
	IssueDate         string `json:"issue_date"`
}

func NewVerificationResponse(c *Certificate) *VerificationResponse {
	return &VerificationResponse{
		CertificateNumber: c.Number.String(),
		Status:            string(c.Status),
		StudentName:       c.StudentName,
		Course:            c.Course,
		Institution:       c.Institution,
		IssueDate:         c.IssueDate.Format(IssueDateLayout),
	}
}

// BulkRequest is the JSON array body of POST /verify/bulk.
type BulkRequest []string

// BulkAck acknowledges a bulk submission.
type BulkAck struct {
	Message string `json:"message"`
}

// OnlineBanner is the body of GET /.
type OnlineBanner struct {
	Status string `json:"status"`
}
