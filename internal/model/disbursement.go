package model

import "time"

type DisbursementStatus string

const (
	DisbursementPending   DisbursementStatus = "pending"
	DisbursementProcessed DisbursementStatus = "processed"
	DisbursementCompleted DisbursementStatus = "completed"
)

func ValidDisbursementStatus(s DisbursementStatus) bool {
	switch s {
	case DisbursementPending, DisbursementProcessed, DisbursementCompleted:
		return true
	}
	return false
}

// Disbursement is one recorded payment tranche against an awarded scholarship.
// swagger:model Disbursement
type Disbursement struct {
	UUIDBase
	ApplicationID string             `gorm:"type:varchar(36);index;not null" json:"applicationId"`
	Amount        int                `gorm:"not null" json:"amount"`
	Date          time.Time          `gorm:"not null" json:"date"`
	Status        DisbursementStatus `gorm:"type:enum('pending','processed','completed');default:'pending'" json:"status"`
	Description   string             `gorm:"size:255" json:"description,omitempty"`
}

func (Disbursement) TableName() string {
	return "disbursements"
}
