package repository

import (
	"errors"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/util"

	"gorm.io/gorm"
)

// ApplicationFilter narrows List results. An empty Status means no filter.
type ApplicationFilter struct {
	Status model.ApplicationStatus
}

// ApplicationStore is the persistence boundary of the application workflow.
// Implementations return util.ErrApplicationNotFound for absent ids. Save is a
// whole-record write; concurrent writers race and the last write wins.
type ApplicationStore interface {
	Create(app *model.Application) error
	FindByID(id string) (*model.Application, error)
	List(filter ApplicationFilter) ([]model.Application, error)
	Save(app *model.Application) error
	Delete(id string) error
}

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *model.Application) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id string) (*model.Application, error) {
	var app model.Application
	err := r.DB.Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) List(filter ApplicationFilter) ([]model.Application, error) {
	var apps []model.Application
	query := r.DB.Model(&model.Application{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) Save(app *model.Application) error {
	return r.DB.Save(app).Error
}

func (r *ApplicationRepository) Delete(id string) error {
	// Hard delete. Stored document artifacts are not garbage-collected.
	res := r.DB.Where("id = ?", id).Delete(&model.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrApplicationNotFound
	}
	return nil
}
