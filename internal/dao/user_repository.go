package dao

import (
	"context"
	"time"

	"github.com/marcomarassi/note-keeper-service/internal/domain"
	"github.com/marcomarassi/note-keeper-service/internal/model"

	"gorm.io/gorm"
)

func gormNotFound() error {
	return gorm.ErrRecordNotFound
}

// userRepository implements domain.UserRepository.
type userRepository struct {
	dao *Dao
}

func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.dao.Db.WithContext(ctx).
		Where("email = ?", email).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.dao.Db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := &model.User{
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: time.Now(),
	}
	m.UpdatedAt = m.CreatedAt

	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

var _ domain.UserRepository = (*userRepository)(nil)
