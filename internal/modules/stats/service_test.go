package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"placementhub/internal/domain"
)

type mockStudentLister struct {
	mock.Mock
}

func (m *mockStudentLister) List(ctx context.Context) ([]*domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Student), args.Error(1)
}

func cgpa(v float64) *float64 { return &v }

func TestService_Dashboard_NoStudents(t *testing.T) {
	lister := new(mockStudentLister)
	lister.On("List", mock.Anything).Return([]*domain.Student{}, nil)

	service := NewService(lister)

	out, err := service.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, "0.00", out.AvgCGPA)
	assert.Equal(t, 0, out.Eligible)
	assert.Equal(t, 0, out.NotEligible)
	assert.Equal(t, 0, out.Placed)
}

func TestService_Dashboard_Counts(t *testing.T) {
	lister := new(mockStudentLister)
	lister.On("List", mock.Anything).Return([]*domain.Student{
		{CGPA: cgpa(8.0), PlacementStatus: domain.StatusPlaced},
		{CGPA: cgpa(7.5), PlacementStatus: domain.StatusNotPlaced}, // threshold is inclusive
		{CGPA: cgpa(6.0), PlacementStatus: domain.StatusNotPlaced},
		{CGPA: nil, PlacementStatus: domain.StatusPlaced}, // counts as zero
	}, nil)

	service := NewService(lister)

	out, err := service.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4, out.Total)
	// (8.0 + 7.5 + 6.0 + 0) / 4 = 5.375
	assert.Equal(t, "5.38", out.AvgCGPA)
	assert.Equal(t, 2, out.Eligible)
	assert.Equal(t, 2, out.NotEligible)
	assert.Equal(t, 2, out.Placed)
}

func TestService_CGPAByDepartment_FiltersAndSorts(t *testing.T) {
	lister := new(mockStudentLister)
	lister.On("List", mock.Anything).Return([]*domain.Student{
		{Department: "Computer Science", CGPA: cgpa(8.0)},
		{Department: "Computer Science", CGPA: cgpa(9.0)},
		{Department: "Electronics", CGPA: nil},          // no numeric CGPA, skipped
		{Department: "", CGPA: cgpa(7.0)},               // no department, skipped
		{Department: "Aerospace", CGPA: cgpa(6.5)},
	}, nil)

	service := NewService(lister)

	rows, err := service.CGPAByDepartment(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []DepartmentCGPA{
		{Department: "Aerospace", AvgCGPA: "6.50", Students: 1},
		{Department: "Computer Science", AvgCGPA: "8.50", Students: 2},
	}, rows)
}

func TestService_CGPAByDepartment_Empty(t *testing.T) {
	lister := new(mockStudentLister)
	lister.On("List", mock.Anything).Return([]*domain.Student{}, nil)

	service := NewService(lister)

	rows, err := service.CGPAByDepartment(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
