package stats

import (
	"context"
	"fmt"
	"sort"

	"placementhub/internal/domain"
)

const eligibilityThreshold = 7.5

// DashboardStats is the placement-cell overview. Averages are fixed to two
// decimals on the wire, so they are strings here.
type DashboardStats struct {
	Total       int    `json:"total"`
	AvgCGPA     string `json:"avgCgpa"`
	Eligible    int    `json:"eligible"`
	NotEligible int    `json:"notEligible"`
	Placed      int    `json:"placed"`
}

// DepartmentCGPA is one row of the per-department average report.
type DepartmentCGPA struct {
	Department string `json:"department"`
	AvgCGPA    string `json:"avgCgpa"`
	Students   int    `json:"students"`
}

// Service computes aggregate placement statistics over the student records.
type Service struct {
	students StudentLister
}

func NewService(students StudentLister) *Service {
	return &Service{students: students}
}

// Dashboard computes totals over every student record. A student with no
// numeric CGPA counts as zero toward the average and as not eligible.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	records, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &DashboardStats{Total: len(records), AvgCGPA: "0.00"}

	var sum float64
	for _, st := range records {
		cgpa := 0.0
		if st.CGPA != nil {
			cgpa = *st.CGPA
		}
		sum += cgpa
		if cgpa >= eligibilityThreshold {
			out.Eligible++
		}
		if st.PlacementStatus == domain.StatusPlaced {
			out.Placed++
		}
	}
	out.NotEligible = out.Total - out.Eligible
	if out.Total > 0 {
		out.AvgCGPA = fmt.Sprintf("%.2f", sum/float64(out.Total))
	}
	return out, nil
}

// CGPAByDepartment averages CGPA per department, skipping records with an
// empty department or no numeric CGPA. Rows come back sorted by department.
func (s *Service) CGPAByDepartment(ctx context.Context) ([]DepartmentCGPA, error) {
	records, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*acc)
	for _, st := range records {
		if st.Department == "" || st.CGPA == nil {
			continue
		}
		b, ok := buckets[st.Department]
		if !ok {
			b = &acc{}
			buckets[st.Department] = b
		}
		b.sum += *st.CGPA
		b.count++
	}

	rows := make([]DepartmentCGPA, 0, len(buckets))
	for dept, b := range buckets {
		rows = append(rows, DepartmentCGPA{
			Department: dept,
			AvgCGPA:    fmt.Sprintf("%.2f", b.sum/float64(b.count)),
			Students:   b.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Department < rows[j].Department })
	return rows, nil
}
