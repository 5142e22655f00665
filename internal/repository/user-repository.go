package repository

import (
	"errors"
	"fmt"
	"log"

	"github.com/sekolahdev/admission_service/internal/domain"
	"github.com/sekolahdev/admission_service/internal/helper"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByUsername(username string) (*domain.User, error)
	FindUserById(userID uint) (*domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: nil user", domain.ErrPersistence)
	}

	if err := r.db.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, fmt.Errorf("%w: username %q", domain.ErrDuplicate, user.Username)
		}
		log.Printf("create user error: %v", err)
		return nil, fmt.Errorf("%w: create user", domain.ErrPersistence)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(username string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", domain.ErrNotFound, username)
		}
		log.Printf("find user by username error: %v", err)
		return nil, fmt.Errorf("%w: find user by username", domain.ErrPersistence)
	}

	return user, nil
}

func (r *userRepository) FindUserById(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
		}
		log.Printf("find user by id error: %v", err)
		return nil, fmt.Errorf("%w: find user by id", domain.ErrPersistence)
	}

	return user, nil
}
