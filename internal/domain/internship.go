package domain

import "time"

type Internship struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Duration  string    `json:"duration"`
	Stipend   string    `json:"stipend"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
