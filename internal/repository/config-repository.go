package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/sekolahdev/admission_service/internal/domain"
	"gorm.io/gorm"
)

type ConfigRepository interface {
	Load() (*domain.AppConfig, error)
	Save(cfg *domain.AppConfig) error
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

// Load returns the single config row, creating it with the default form
// schema on first use.
func (r *configRepository) Load() (*domain.AppConfig, error) {
	var cfg domain.AppConfig
	err := r.db.First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = domain.AppConfig{
			RegistrationOpen: true,
			FormFields:       domain.DefaultFormFields(),
		}
		if err := r.db.Create(&cfg).Error; err != nil {
			log.Printf("seed config error: %v", err)
			return nil, fmt.Errorf("%w: seed config", domain.ErrPersistence)
		}
		return &cfg, nil
	}
	if err != nil {
		log.Printf("load config error: %v", err)
		return nil, fmt.Errorf("%w: load config", domain.ErrPersistence)
	}
	return &cfg, nil
}

func (r *configRepository) Save(cfg *domain.AppConfig) error {
	if err := cfg.FormFields.CheckUnique(); err != nil {
		return err
	}
	if err := r.db.Save(cfg).Error; err != nil {
		log.Printf("save config error: %v", err)
		return fmt.Errorf("%w: save config", domain.ErrPersistence)
	}
	return nil
}
