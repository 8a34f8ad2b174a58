package models

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DaySchedule describes the opening window of a business for one day of the
// week. DayOfWeek follows time.Weekday numbering: 0 = Sunday .. 6 = Saturday.
// OpenTime/CloseTime are "HH:MM" strings and only meaningful when the day is
// not closed.
type DaySchedule struct {
	DayOfWeek int    `json:"day_of_week"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time,omitempty"`
	CloseTime string `json:"close_time,omitempty"`
}

// Business represents one candidate record fed into the discovery pipeline.
// Coordinates is nil for businesses that never supplied a precise address.
// At most one DaySchedule per day of week; a day with no entry counts as
// closed.
type Business struct {
	ID             string        `json:"business_id"`
	Name           string        `json:"business_name"`
	Category       string        `json:"category"`
	Subcategories  []string      `json:"subcategories,omitempty"`
	Coordinates    *Coordinates  `json:"coordinates,omitempty"`
	WeeklyHours    []DaySchedule `json:"weekly_hours,omitempty"`
	FavoritesCount int           `json:"favorites_count"`
	Views          int           `json:"views"`
}
