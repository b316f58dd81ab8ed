package monitor

import "time"

type Status struct {
	PostgreSQL bool      `json:"postgresql"`
	LastCheck  time.Time `json:"last_check"`
}
