package repository

import (
	"errors"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/util"

	"gorm.io/gorm"
)

// DisbursementStore records payment tranches against awarded applications.
type DisbursementStore interface {
	Create(d *model.Disbursement) error
	FindByID(id string) (*model.Disbursement, error)
	ListByApplication(applicationID string) ([]model.Disbursement, error)
	Save(d *model.Disbursement) error
	DeleteByApplication(applicationID string) error
}

type DisbursementRepository struct {
	DB *gorm.DB
}

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{DB: db}
}

func (r *DisbursementRepository) Create(d *model.Disbursement) error {
	return r.DB.Create(d).Error
}

func (r *DisbursementRepository) FindByID(id string) (*model.Disbursement, error) {
	var d model.Disbursement
	err := r.DB.Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDisbursementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DisbursementRepository) ListByApplication(applicationID string) ([]model.Disbursement, error) {
	var ds []model.Disbursement
	err := r.DB.Where("application_id = ?", applicationID).Order("date ASC").Find(&ds).Error
	return ds, err
}

func (r *DisbursementRepository) Save(d *model.Disbursement) error {
	return r.DB.Save(d).Error
}

func (r *DisbursementRepository) DeleteByApplication(applicationID string) error {
	return r.DB.Where("application_id = ?", applicationID).Delete(&model.Disbursement{}).Error
}
