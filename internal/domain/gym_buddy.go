package domain

type Achievement struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   int    `json:"year"`
}

type BuddySocialMedia struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
}

// GymBuddy is a training partner profile, served under the "gymbros" resource.
type GymBuddy struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Age             int              `json:"age"`
	Experience      string           `json:"experience"`
	Specialties     []string         `json:"specialties"`
	Availability    []string         `json:"availability"`
	Coordinates     *Coordinate      `json:"coordinates"`
	Bio             string           `json:"bio"`
	PreferredGym    string           `json:"preferredGym"`
	FitnessGoals    []string         `json:"fitnessGoals"`
	ExperienceLevel string           `json:"experienceLevel"`
	Achievements    []Achievement    `json:"achievements"`
	SocialMedia     BuddySocialMedia `json:"socialMedia"`
	Languages       []string         `json:"languages"`
	Certifications  []Certification  `json:"certifications"`
}

func (b GymBuddy) Position() *Coordinate { return b.Coordinates }
