package catalog

import "cinequest/models"

var seedMovies = []models.Movie{
	{
		ID:       1,
		Title:    "Cosmic Horizons",
		Genre:    "Sci-Fi Adventure",
		Runtime:  "148 min",
		Synopsis: "In a distant future, humanity's last hope lies in exploring uncharted galaxies. A team of astronauts embarks on a perilous journey through cosmic wormholes.",
		Cast:     []string{"Emma Stone", "Ryan Gosling", "Michael B. Jordan"},
		Image:    "/assets/cosmic-horizons.jpg",
	},
	{
		ID:       2,
		Title:    "Inside Out 2",
		Genre:    "Animation, Family",
		Runtime:  "96 min",
		Synopsis: "Riley enters her teenage years and with them come new emotions. Joy, Sadness, Anger, Fear and Disgust must navigate Riley's increasingly complex emotional landscape.",
		Cast:     []string{"Amy Poehler", "Phyllis Smith", "Lewis Black"},
		Image:    "/assets/inside-out-2.jpg",
	},
	{
		ID:       3,
		Title:    "Shadow Protocol",
		Genre:    "Action Thriller",
		Runtime:  "132 min",
		Synopsis: "An elite operative uncovers a global conspiracy and must race against time to prevent a catastrophic event that could change the world forever.",
		Cast:     []string{"Tom Hardy", "Charlize Theron", "Idris Elba"},
		Image:    "/assets/shadow-protocol.jpg",
	},
	{
		ID:       4,
		Title:    "Echoes of Yesterday",
		Genre:    "Drama, Romance",
		Runtime:  "121 min",
		Synopsis: "A poignant tale of love and memory that spans decades, exploring how our past shapes our present and the power of human connection.",
		Cast:     []string{"Saoirse Ronan", "Timothée Chalamet", "Meryl Streep"},
		Image:    "/assets/echoes-yesterday.jpg",
	},
	{
		ID:       5,
		Title:    "The Last Kingdom",
		Genre:    "Fantasy Epic",
		Runtime:  "165 min",
		Synopsis: "In a world where magic is fading, a young warrior must unite warring kingdoms to face an ancient evil rising from the shadows.",
		Cast:     []string{"Chris Hemsworth", "Zendaya", "Benedict Cumberbatch"},
		Image:    "/assets/last-kingdom.jpg",
	},
	{
		ID:       6,
		Title:    "Speed Chase",
		Genre:    "Action",
		Runtime:  "110 min",
		Synopsis: "A high-octane thriller featuring jaw-dropping car chases and stunts as an ex-racer is pulled back into the dangerous world of illegal street racing.",
		Cast:     []string{"Vin Diesel", "Michelle Rodriguez", "John Cena"},
		Image:    "/assets/speed-chase.jpg",
	},
}

var seedCinemas = []models.Cinema{
	{
		ID:        1,
		Name:      "SM Makati Cinema",
		Distance:  "2.5 km",
		Location:  "Makati City",
		Showtimes: []string{"10:00 AM", "1:30 PM", "4:00 PM", "7:30 PM", "10:00 PM"},
		Tiers:     []string{"Regular", "Premium", "VIP"},
	},
	{
		ID:        2,
		Name:      "Ayala Malls Cinema",
		Distance:  "3.8 km",
		Location:  "Makati City",
		Showtimes: []string{"11:00 AM", "2:00 PM", "5:00 PM", "8:00 PM"},
		Tiers:     []string{"Regular", "Premium"},
	},
	{
		ID:        3,
		Name:      "Glorietta Cineplex",
		Distance:  "4.2 km",
		Location:  "Makati City",
		Showtimes: []string{"12:00 PM", "3:30 PM", "6:30 PM", "9:30 PM"},
		Tiers:     []string{"Regular", "IMAX", "4DX"},
	},
}
