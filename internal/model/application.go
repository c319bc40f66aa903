package model

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

func ValidGender(g Gender) bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}

// LGAs is the closed set of the 17 Local Government Areas of Plateau State.
var LGAs = []string{
	"Barkin Ladi",
	"Bassa",
	"Bokkos",
	"Jos East",
	"Jos North",
	"Jos South",
	"Kanam",
	"Kanke",
	"Langtang North",
	"Langtang South",
	"Mangu",
	"Mikang",
	"Pankshin",
	"Qua'an Pan",
	"Riyom",
	"Shendam",
	"Wase",
}

func ValidLGA(lga string) bool {
	for _, l := range LGAs {
		if l == lga {
			return true
		}
	}
	return false
}

type ScholarshipType string

const (
	FullScholarship    ScholarshipType = "full"
	PartialScholarship ScholarshipType = "partial"
	MeritScholarship   ScholarshipType = "merit"
)

func ValidScholarshipType(t ScholarshipType) bool {
	switch t {
	case FullScholarship, PartialScholarship, MeritScholarship:
		return true
	}
	return false
}

// Application is a scholarship application. Status only moves through the
// explicit status-update operation; any-to-any transitions are allowed as an
// administrative override. OwnerID links the submitting account when one was
// logged in at submission time and may dangle after that account is deleted.
// swagger:model Application
type Application struct {
	UUIDBase
	FullName     string            `gorm:"size:100;not null" json:"fullName"`
	Email        string            `gorm:"size:100;not null;index" json:"email"`
	Phone        string            `gorm:"size:30;not null" json:"phone"`
	Gender       Gender            `gorm:"type:enum('male','female','other');not null" json:"gender"`
	DateOfBirth  time.Time         `gorm:"not null" json:"dateOfBirth"`
	Address      string            `gorm:"size:255;not null" json:"address"`
	LGA          string            `gorm:"column:lga;size:50;not null" json:"lga"`
	Institution  string            `gorm:"size:150;not null" json:"institution"`
	Course       string            `gorm:"size:150;not null" json:"course"`
	Level        string            `gorm:"size:30;not null" json:"level"`
	MatricNumber string            `gorm:"size:50;not null" json:"matricNumber"`
	OwnerID      *uint             `gorm:"index" json:"ownerId,omitempty"`

	IndigeneFormUrl    string `gorm:"size:255" json:"indigeneFormUrl,omitempty"`
	AdmissionLetterUrl string `gorm:"size:255" json:"admissionLetterUrl,omitempty"`
	PassportPhotoUrl   string `gorm:"size:255" json:"passportPhotoUrl,omitempty"`

	QuizScore int               `gorm:"default:0" json:"quizScore"`
	Status    ApplicationStatus `gorm:"type:enum('pending','approved','rejected');default:'pending';index" json:"status"`

	AcademicYear      string          `gorm:"size:20" json:"academicYear,omitempty"`
	ScholarshipAmount int             `gorm:"default:0" json:"scholarshipAmount,omitempty"`
	ScholarshipType   ScholarshipType `gorm:"size:20" json:"scholarshipType,omitempty"`

	// Disbursement account; not validated against any bank registry.
	BankName      string `gorm:"size:100" json:"bankName,omitempty"`
	AccountNumber string `gorm:"size:30" json:"accountNumber,omitempty"`
	AccountName   string `gorm:"size:100" json:"accountName,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// DocumentTypes maps the document-type tag of an upload to the application
// column holding its URL. Tags outside this set are rejected.
var DocumentTypes = []string{"indigeneForm", "admissionLetter", "passportPhoto"}

func ValidDocumentType(t string) bool {
	for _, d := range DocumentTypes {
		if d == t {
			return true
		}
	}
	return false
}
