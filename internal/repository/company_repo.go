package repository

import (
	"context"
	"time"

	"placementhub/internal/domain"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type companyModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	CompanyName    string    `gorm:"column:company_name"`
	VisitDate      time.Time `gorm:"column:visit_date"`
	StudentsPlaced int       `gorm:"column:students_placed"`
	Package        string    `gorm:"column:package_offered"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (companyModel) TableName() string { return "companies" }

func toDomainCompany(m companyModel) *domain.Company {
	return &domain.Company{
		ID:             m.ID,
		CompanyName:    m.CompanyName,
		VisitDate:      m.VisitDate,
		StudentsPlaced: m.StudentsPlaced,
		Package:        m.Package,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toCompanyModel(c *domain.Company) companyModel {
	return companyModel{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		VisitDate:      c.VisitDate,
		StudentsPlaced: c.StudentsPlaced,
		Package:        c.Package,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) error {
	m := toCompanyModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCompany(m)
	return nil
}

// List returns companies ordered by visit date, most recent visit first.
func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	var models []companyModel
	tx := r.db.WithContext(ctx).Order("visit_date DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	companies := make([]*domain.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, toDomainCompany(m))
	}
	return companies, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var m companyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCompany(m), nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	m := toCompanyModel(c)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCompany(m)
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&companyModel{}, id).Error
}
