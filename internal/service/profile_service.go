package service

import (
	"fmt"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"
)

// StudentProfile is the read model for an awarded scholar: the approved
// application plus its recorded disbursements.
// swagger:model StudentProfile
type StudentProfile struct {
	model.Application
	Disbursements []model.Disbursement `json:"disbursements"`
}

// ProfileService surfaces approved applications as scholar profiles and
// manages awards and disbursement tranches.
type ProfileService struct {
	Applications  repository.ApplicationStore
	Disbursements repository.DisbursementStore
}

func NewProfileService(apps repository.ApplicationStore, disbursements repository.DisbursementStore) *ProfileService {
	return &ProfileService{
		Applications:  apps,
		Disbursements: disbursements,
	}
}

func (s *ProfileService) ListStudentProfiles() ([]StudentProfile, error) {
	apps, err := s.Applications.List(repository.ApplicationFilter{Status: model.StatusApproved})
	if err != nil {
		return nil, err
	}

	profiles := make([]StudentProfile, 0, len(apps))
	for _, app := range apps {
		ds, err := s.Disbursements.ListByApplication(app.ID)
		if err != nil {
			return nil, err
		}
		if ds == nil {
			ds = []model.Disbursement{}
		}
		profiles = append(profiles, StudentProfile{Application: app, Disbursements: ds})
	}
	return profiles, nil
}

// GetStudentProfile resolves one profile. An application that exists but was
// never approved is not a scholar profile and reads as absent.
func (s *ProfileService) GetStudentProfile(id string) (*StudentProfile, error) {
	app, err := s.Applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app.Status != model.StatusApproved {
		return nil, util.ErrApplicationNotFound
	}

	ds, err := s.Disbursements.ListByApplication(app.ID)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		ds = []model.Disbursement{}
	}
	return &StudentProfile{Application: *app, Disbursements: ds}, nil
}

// Award records the scholarship grant details on an application.
func (s *ProfileService) Award(id string, amount int, scholarshipType model.ScholarshipType, academicYear string) (*model.Application, error) {
	if !model.ValidScholarshipType(scholarshipType) {
		return nil, fmt.Errorf("%w: unknown scholarship type %q", util.ErrValidation, scholarshipType)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", util.ErrValidation)
	}

	app, err := s.Applications.FindByID(id)
	if err != nil {
		return nil, err
	}

	app.ScholarshipAmount = amount
	app.ScholarshipType = scholarshipType
	if academicYear != "" {
		app.AcademicYear = academicYear
	}
	app.UpdatedAt = time.Now()

	if err := s.Applications.Save(app); err != nil {
		return nil, err
	}
	return app, nil
}

// AddDisbursement records a payment tranche against an application.
func (s *ProfileService) AddDisbursement(applicationID string, amount int, date time.Time, description string) (*model.Disbursement, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", util.ErrValidation)
	}
	if _, err := s.Applications.FindByID(applicationID); err != nil {
		return nil, err
	}

	now := time.Now()
	if date.IsZero() {
		date = now
	}
	d := &model.Disbursement{
		ApplicationID: applicationID,
		Amount:        amount,
		Date:          date,
		Status:        model.DisbursementPending,
		Description:   description,
	}
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.Disbursements.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDisbursementStatus moves a tranche along pending/processed/completed.
// Same unguarded last-write-wins semantics as application status.
func (s *ProfileService) UpdateDisbursementStatus(id string, status model.DisbursementStatus) (*model.Disbursement, error) {
	if !model.ValidDisbursementStatus(status) {
		return nil, util.ErrInvalidStatus
	}

	d, err := s.Disbursements.FindByID(id)
	if err != nil {
		return nil, err
	}

	d.Status = status
	d.UpdatedAt = time.Now()
	if err := s.Disbursements.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}
