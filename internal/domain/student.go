package domain

import "time"

type PlacementStatus string

const (
	StatusPlaced    PlacementStatus = "Placed"
	StatusNotPlaced PlacementStatus = "Not Placed"
)

// Student is a placement record. CGPA is a pointer: nil means the value was
// absent or not numeric, which aggregation treats differently from a real zero.
type Student struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Department      string          `json:"department"`
	CGPA            *float64        `json:"cgpa"`
	Resume          string          `json:"resume"`
	Certificates    string          `json:"certificates"`
	PlacementStatus PlacementStatus `json:"placementStatus"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
