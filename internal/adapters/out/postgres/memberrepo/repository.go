// Package memberrepo reads customers and their subscription flag.
package memberrepo

import (
	"context"

	"pickup/internal/adapters/out/postgres/storeerr"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/member"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO is a customer row. Subscribed customers are premium members.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;default:''"`
	IsSubscribed bool      `gorm:"not null;default:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormMemberRepository implements ports.MemberRepository using GORM.
type GormMemberRepository struct {
	db *gorm.DB
}

func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// Add stores a member under the given display name.
func (r *GormMemberRepository) Add(ctx context.Context, m *member.Member, name string) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := UserDTO{
		ID:           m.ID().Bytes(),
		Name:         name,
		IsSubscribed: m.IsPremium(),
	}
	return storeerr.Wrap("add member", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, storeerr.NotFound("get member", "member", id.String(), err)
	}

	return member.NewMember(id, member.TierOf(dto.IsSubscribed))
}
