package repository

import (
	"context"
	"time"

	"placementhub/internal/domain"

	"gorm.io/gorm"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

type studentModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Email           string    `gorm:"column:email"`
	Department      string    `gorm:"column:department"`
	CGPA            *float64  `gorm:"column:cgpa"`
	Resume          *string   `gorm:"column:resume"`
	Certificates    *string   `gorm:"column:certificates"`
	PlacementStatus string    `gorm:"column:placement_status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (studentModel) TableName() string { return "students" }

func toDomainStudent(m studentModel) *domain.Student {
	var resume, certificates string
	if m.Resume != nil {
		resume = *m.Resume
	}
	if m.Certificates != nil {
		certificates = *m.Certificates
	}

	return &domain.Student{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Department:      m.Department,
		CGPA:            m.CGPA,
		Resume:          resume,
		Certificates:    certificates,
		PlacementStatus: domain.PlacementStatus(m.PlacementStatus),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toStudentModel(s *domain.Student) studentModel {
	var resume, certificates *string
	if s.Resume != "" {
		v := s.Resume
		resume = &v
	}
	if s.Certificates != "" {
		v := s.Certificates
		certificates = &v
	}

	return studentModel{
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		Department:      s.Department,
		CGPA:            s.CGPA,
		Resume:          resume,
		Certificates:    certificates,
		PlacementStatus: string(s.PlacementStatus),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	m := toStudentModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStudent(m)
	return nil
}

func (r *StudentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	var models []studentModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	students := make([]*domain.Student, 0, len(models))
	for _, m := range models {
		students = append(students, toDomainStudent(m))
	}
	return students, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	var m studentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainStudent(m), nil
}

func (r *StudentRepository) Update(ctx context.Context, s *domain.Student) error {
	m := toStudentModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainStudent(m)
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&studentModel{}, id).Error
}
