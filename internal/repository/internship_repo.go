package repository

import (
	"context"
	"time"

	"placementhub/internal/domain"

	"gorm.io/gorm"
)

type InternshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

type internshipModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Company   string    `gorm:"column:company"`
	Position  string    `gorm:"column:position"`
	Duration  string    `gorm:"column:duration"`
	Stipend   string    `gorm:"column:stipend"`
	Document  *string   `gorm:"column:document"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (internshipModel) TableName() string { return "internships" }

func toDomainInternship(m internshipModel) *domain.Internship {
	var document string
	if m.Document != nil {
		document = *m.Document
	}

	return &domain.Internship{
		ID:        m.ID,
		Name:      m.Name,
		Company:   m.Company,
		Position:  m.Position,
		Duration:  m.Duration,
		Stipend:   m.Stipend,
		Document:  document,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toInternshipModel(i *domain.Internship) internshipModel {
	var document *string
	if i.Document != "" {
		v := i.Document
		document = &v
	}

	return internshipModel{
		ID:        i.ID,
		Name:      i.Name,
		Company:   i.Company,
		Position:  i.Position,
		Duration:  i.Duration,
		Stipend:   i.Stipend,
		Document:  document,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (r *InternshipRepository) Create(ctx context.Context, i *domain.Internship) error {
	m := toInternshipModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainInternship(m)
	return nil
}

func (r *InternshipRepository) List(ctx context.Context) ([]*domain.Internship, error) {
	var models []internshipModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	internships := make([]*domain.Internship, 0, len(models))
	for _, m := range models {
		internships = append(internships, toDomainInternship(m))
	}
	return internships, nil
}

func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	var m internshipModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInternship(m), nil
}

func (r *InternshipRepository) Update(ctx context.Context, i *domain.Internship) error {
	m := toInternshipModel(i)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainInternship(m)
	return nil
}

func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&internshipModel{}, id).Error
}
