package domain

type Participant struct {
	Name        string `json:"name"`
	Time        string `json:"time"`
	Rank        int    `json:"rank"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Category    string `json:"category"`
	Nationality string `json:"nationality"`
}

type MarathonRoute struct {
	StartPoint  string   `json:"startPoint"`
	EndPoint    string   `json:"endPoint"`
	Checkpoints []string `json:"checkpoints"`
}

// Marathon is a running event with its registered participants.
// Dates are formatted as YYYY-MM-DD.
type Marathon struct {
	ID                   int           `json:"id"`
	Name                 string        `json:"name"`
	Date                 string        `json:"date"`
	Location             string        `json:"location"`
	Distance             string        `json:"distance"`
	Coordinates          *Coordinate   `json:"coordinates"`
	Participants         []Participant `json:"participants"`
	RegistrationFee      int           `json:"registrationFee"`
	PrizeMoney           int           `json:"prizeMoney"`
	RegistrationDeadline string        `json:"registrationDeadline"`
	Categories           []string      `json:"categories"`
	Facilities           []string      `json:"facilities"`
	Route                MarathonRoute `json:"route"`
}

func (m Marathon) Position() *Coordinate { return m.Coordinates }
