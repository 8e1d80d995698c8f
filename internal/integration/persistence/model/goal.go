package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database. Progress is derived
// at read time and never stored.
type GoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline     time.Time       `gorm:"type:date;not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		Deadline:     entity.TruncateDate(m.Deadline),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity converts a domain Goal entity to a GoalModel.
func GoalFromEntity(g *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		Deadline:     g.Deadline,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
