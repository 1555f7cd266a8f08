package domain

// Exercise is a read-only catalog entry. The catalog is seeded once by the
// schema setup routine; the API never writes to it.
type Exercise struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
}
