package model

import "time"

// Service is an immutable catalogue entry a client can book.
type Service struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Duration  int       `json:"duration"` // minutes
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TotalDuration sums the durations of the selected services, in minutes.
// Unknown IDs contribute nothing.
func TotalDuration(services []Service, serviceIDs []string) int {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	total := 0
	for _, id := range serviceIDs {
		if s, ok := byID[id]; ok {
			total += s.Duration
		}
	}
	return total
}

// TotalPrice sums the prices of the selected services.
func TotalPrice(services []Service, serviceIDs []string) float64 {
	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	total := 0.0
	for _, id := range serviceIDs {
		if s, ok := byID[id]; ok {
			total += s.Price
		}
	}
	return total
}
