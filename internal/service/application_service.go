package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"
)

// ApplicationService owns the application workflow: create, read, list,
// partial update, status transitions, document attachment and delete. Role
// enforcement happens at the route boundary, not here.
type ApplicationService struct {
	Applications  repository.ApplicationStore
	Disbursements repository.DisbursementStore
	Storage       *StorageService
	Quiz          *QuizService
}

func NewApplicationService(apps repository.ApplicationStore, disbursements repository.DisbursementStore, storage *StorageService, quiz *QuizService) *ApplicationService {
	return &ApplicationService{
		Applications:  apps,
		Disbursements: disbursements,
		Storage:       storage,
		Quiz:          quiz,
	}
}

func validateApplication(app *model.Application) error {
	required := map[string]string{
		"fullName":     app.FullName,
		"email":        app.Email,
		"phone":        app.Phone,
		"address":      app.Address,
		"lga":          app.LGA,
		"institution":  app.Institution,
		"course":       app.Course,
		"level":        app.Level,
		"matricNumber": app.MatricNumber,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", util.ErrValidation, field)
		}
	}
	if app.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: dateOfBirth is required", util.ErrValidation)
	}
	if !model.ValidGender(app.Gender) {
		return fmt.Errorf("%w: gender must be one of male, female, other", util.ErrValidation)
	}
	if !model.ValidLGA(app.LGA) {
		return fmt.Errorf("%w: %q is not a Plateau State LGA", util.ErrValidation, app.LGA)
	}
	return nil
}

// Create validates the applicant fields and persists a new application with
// status pending. The quiz score comes from the payload when supplied, from
// the quiz score cache otherwise, and defaults to zero.
func (s *ApplicationService) Create(ctx context.Context, app *model.Application) error {
	if err := validateApplication(app); err != nil {
		return err
	}

	now := time.Now()
	app.ID = ""
	app.Status = model.StatusPending
	app.CreatedAt = now
	app.UpdatedAt = now
	app.Email = NormalizeEmail(app.Email)

	if app.QuizScore == 0 && s.Quiz != nil {
		if score, ok := s.Quiz.CachedScore(ctx, app.Email); ok {
			app.QuizScore = score
		}
	}

	return s.Applications.Create(app)
}

func (s *ApplicationService) Get(id string) (*model.Application, error) {
	return s.Applications.FindByID(id)
}

// List returns applications ordered by creation time, newest first. A
// non-empty status filter must be inside the status enum.
func (s *ApplicationService) List(status string) ([]model.Application, error) {
	filter := repository.ApplicationFilter{}
	if status != "" {
		if !model.ValidStatus(model.ApplicationStatus(status)) {
			return nil, util.ErrInvalidStatus
		}
		filter.Status = model.ApplicationStatus(status)
	}
	return s.Applications.List(filter)
}

// ApplicationUpdate carries a partial field edit; nil means "leave as is".
// Identity, status and timestamps are not client-assignable here.
type ApplicationUpdate struct {
	FullName      *string    `json:"fullName"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	Gender        *string    `json:"gender"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Address       *string    `json:"address"`
	LGA           *string    `json:"lga"`
	Institution   *string    `json:"institution"`
	Course        *string    `json:"course"`
	Level         *string    `json:"level"`
	MatricNumber  *string    `json:"matricNumber"`
	QuizScore     *int       `json:"quizScore"`
	AcademicYear  *string    `json:"academicYear"`
	BankName      *string    `json:"bankName"`
	AccountNumber *string    `json:"accountNumber"`
	AccountName   *string    `json:"accountName"`
}

// Update merges the supplied fields over the stored record and refreshes
// updatedAt. Whole-record write: concurrent updates race, last write wins.
func (s *ApplicationService) Update(id string, update *ApplicationUpdate) (*model.Application, error) {
	app, err := s.Applications.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Gender != nil && !model.ValidGender(model.Gender(*update.Gender)) {
		return nil, fmt.Errorf("%w: gender must be one of male, female, other", util.ErrValidation)
	}
	if update.LGA != nil && !model.ValidLGA(*update.LGA) {
		return nil, fmt.Errorf("%w: %q is not a Plateau State LGA", util.ErrValidation, *update.LGA)
	}

	if update.FullName != nil {
		app.FullName = *update.FullName
	}
	if update.Email != nil {
		app.Email = NormalizeEmail(*update.Email)
	}
	if update.Phone != nil {
		app.Phone = *update.Phone
	}
	if update.Gender != nil {
		app.Gender = model.Gender(*update.Gender)
	}
	if update.DateOfBirth != nil {
		app.DateOfBirth = *update.DateOfBirth
	}
	if update.Address != nil {
		app.Address = *update.Address
	}
	if update.LGA != nil {
		app.LGA = *update.LGA
	}
	if update.Institution != nil {
		app.Institution = *update.Institution
	}
	if update.Course != nil {
		app.Course = *update.Course
	}
	if update.Level != nil {
		app.Level = *update.Level
	}
	if update.MatricNumber != nil {
		app.MatricNumber = *update.MatricNumber
	}
	if update.QuizScore != nil {
		app.QuizScore = *update.QuizScore
	}
	if update.AcademicYear != nil {
		app.AcademicYear = *update.AcademicYear
	}
	if update.BankName != nil {
		app.BankName = *update.BankName
	}
	if update.AccountNumber != nil {
		app.AccountNumber = *update.AccountNumber
	}
	if update.AccountName != nil {
		app.AccountName = *update.AccountName
	}

	app.UpdatedAt = time.Now()
	if err := s.Applications.Save(app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus moves the application to the given status. Values outside the
// enum fail validation before the record is even looked up; any-to-any
// transitions between valid statuses are allowed as administrative override.
func (s *ApplicationService) UpdateStatus(id string, status model.ApplicationStatus) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, util.ErrInvalidStatus
	}

	app, err := s.Applications.FindByID(id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	app.UpdatedAt = time.Now()
	if err := s.Applications.Save(app); err != nil {
		return nil, err
	}
	return app, nil
}

// AttachDocument uploads the file through the storage provider and merges the
// resulting URL into the application. The application must exist before the
// upload runs. File content is not validated.
func (s *ApplicationService) AttachDocument(ctx context.Context, id, docType, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if !model.ValidDocumentType(docType) {
		return "", util.ErrUnknownDocumentType
	}

	app, err := s.Applications.FindByID(id)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("applications/%s/%s/%d-%s", id, docType, time.Now().UnixNano(), filepath.Base(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	switch docType {
	case "indigeneForm":
		app.IndigeneFormUrl = url
	case "admissionLetter":
		app.AdmissionLetterUrl = url
	case "passportPhoto":
		app.PassportPhotoUrl = url
	}
	app.UpdatedAt = time.Now()

	if err := s.Applications.Save(app); err != nil {
		return "", err
	}
	return url, nil
}

// Delete hard-removes the application and its disbursement rows. Uploaded
// artifacts stay behind in storage.
func (s *ApplicationService) Delete(id string) error {
	if err := s.Applications.Delete(id); err != nil {
		return err
	}
	return s.Disbursements.DeleteByApplication(id)
}
