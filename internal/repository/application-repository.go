package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/sekolahdev/admission_service/internal/domain"
	"github.com/sekolahdev/admission_service/internal/helper"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *domain.Application) error
	FindByOwner(userID uint) (*domain.Application, error)
	FindByID(appID uint) (*domain.Application, error)
	ListAll() ([]domain.Application, error)
	Save(app *domain.Application) error
	Delete(appID uint) error
	CountByStatus() (map[domain.ApplicationStatus]int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the owner's application. The unique index on user_id backs
// the one-application-per-owner invariant; a second insert for the same
// owner fails with ErrDuplicateApplication and leaves no side effect.
func (r *applicationRepository) Create(app *domain.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return fmt.Errorf("%w: owner %d", domain.ErrDuplicateApplication, app.UserID)
		}
		log.Printf("create application error: %v", err)
		return fmt.Errorf("%w: create application", domain.ErrPersistence)
	}
	return nil
}

func (r *applicationRepository) FindByOwner(userID uint) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.Where("user_id = ?", userID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application for owner %d", domain.ErrNotFound, userID)
		}
		log.Printf("find application by owner error: %v", err)
		return nil, fmt.Errorf("%w: find application by owner", domain.ErrPersistence)
	}
	return &app, nil
}

func (r *applicationRepository) FindByID(appID uint) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.First(&app, appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", domain.ErrNotFound, appID)
		}
		log.Printf("find application by id error: %v", err)
		return nil, fmt.Errorf("%w: find application by id", domain.ErrPersistence)
	}
	return &app, nil
}

func (r *applicationRepository) ListAll() ([]domain.Application, error) {
	var apps []domain.Application
	if err := r.db.Order("submission_date ASC").Find(&apps).Error; err != nil {
		log.Printf("list applications error: %v", err)
		return nil, fmt.Errorf("%w: list applications", domain.ErrPersistence)
	}
	return apps, nil
}

func (r *applicationRepository) Save(app *domain.Application) error {
	if err := r.db.Save(app).Error; err != nil {
		log.Printf("save application error: %v", err)
		return fmt.Errorf("%w: save application", domain.ErrPersistence)
	}
	return nil
}

func (r *applicationRepository) Delete(appID uint) error {
	res := r.db.Unscoped().Delete(&domain.Application{}, appID)
	if res.Error != nil {
		log.Printf("delete application error: %v", res.Error)
		return fmt.Errorf("%w: delete application", domain.ErrPersistence)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: application %d", domain.ErrNotFound, appID)
	}
	return nil
}

func (r *applicationRepository) CountByStatus() (map[domain.ApplicationStatus]int64, error) {
	type row struct {
		Status domain.ApplicationStatus
		N      int64
	}
	var rows []row
	err := r.db.Model(&domain.Application{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		log.Printf("count applications error: %v", err)
		return nil, fmt.Errorf("%w: count applications", domain.ErrPersistence)
	}

	out := make(map[domain.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}
