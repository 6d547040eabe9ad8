package models

// Movie is an immutable catalog entry. The genre field is a free-text tag
// string and may carry several comma-separated genres.
type Movie struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Genre    string   `json:"genre"`
	Runtime  string   `json:"runtime"`
	Synopsis string   `json:"synopsis"`
	Cast     []string `json:"cast"`
	Image    string   `json:"image"`
}

// Cinema is an immutable catalog entry. Distance is a display string
// (e.g. "2.5 km"), not a measured quantity.
type Cinema struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Distance  string   `json:"distance"`
	Location  string   `json:"location"`
	Showtimes []string `json:"showtimes"`
	Tiers     []string `json:"tiers"`
}
