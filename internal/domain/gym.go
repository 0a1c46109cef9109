package domain

type Trainer struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
}

type GymReview struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

type GymSocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
}

// Gym is a fitness venue with its membership offer, staff and reviews.
type Gym struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Location        string         `json:"location"`
	Rating          float64        `json:"rating"`
	MonthlyFee      int            `json:"monthlyFee"`
	Facilities      []string       `json:"facilities"`
	Coordinates     *Coordinate    `json:"coordinates"`
	OpeningHours    string         `json:"openingHours"`
	MembershipTypes []string       `json:"membershipTypes"`
	Trainers        []Trainer      `json:"trainers"`
	Amenities       []string       `json:"amenities"`
	SocialMedia     GymSocialMedia `json:"socialMedia"`
	Reviews         []GymReview    `json:"reviews"`
}

func (g Gym) Position() *Coordinate { return g.Coordinates }
