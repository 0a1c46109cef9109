package mockdata

import (
	"fmt"

	"nearby-fitness-service/internal/domain"
)

var (
	marathonCities = []string{
		"Dhaka", "Chittagong", "Sylhet", "Rajshahi", "Khulna", "Barishal",
		"Rangpur", "Mymensingh", "Comilla", "Narayanganj", "Gazipur", "Cox's Bazar",
	}
	marathonTypes      = []string{"City", "Coastal", "Hill", "Heritage", "Charity", "Corporate"}
	marathonDistances  = []string{"5", "10", "21", "42"}
	runnerCategories   = []string{"Professional", "Amateur", "Beginner"}
	runnerGenders      = []string{"Male", "Female", "Other"}
	runnerNationality  = []string{"Bangladesh", "India", "Nepal", "Sri Lanka", "International"}
	marathonFacilities = []string{"Water Stations", "Medical Support", "Timing Chip", "Medal", "T-Shirt", "Refreshments"}
)

// Marathons generates n marathons with ids 1..n.
func (g *Generator) Marathons(n int) []domain.Marathon {
	out := make([]domain.Marathon, 0, n)

	for i := 0; i < n; i++ {
		f := g.faker
		city := f.RandomString(marathonCities)
		year := g.now.Year() + f.IntRange(0, 1)

		participants := make([]domain.Participant, f.IntRange(10, 30))
		for j := range participants {
			participants[j] = domain.Participant{
				Name:        f.Name(),
				Time:        g.clock(),
				Rank:        j + 1,
				Age:         f.IntRange(18, 65),
				Gender:      f.RandomString(runnerGenders),
				Category:    f.RandomString(runnerCategories),
				Nationality: f.RandomString(runnerNationality),
			}
		}

		checkpoints := make([]string, f.IntRange(3, 8))
		for j := range checkpoints {
			checkpoints[j] = f.Street()
		}

		out = append(out, domain.Marathon{
			ID:                   i + 1,
			Name:                 fmt.Sprintf("%s %s Marathon %d", city, f.RandomString(marathonTypes), year),
			Date:                 g.futureDate(),
			Location:             city + " " + f.Street(),
			Distance:             f.RandomString(marathonDistances) + "km",
			Coordinates:          g.coordinate(),
			Participants:         participants,
			RegistrationFee:      f.IntRange(500, 2000),
			PrizeMoney:           f.IntRange(10000, 100000),
			RegistrationDeadline: g.futureDate(),
			Categories:           append([]string(nil), runnerCategories...),
			Facilities:           append([]string(nil), marathonFacilities...),
			Route: domain.MarathonRoute{
				StartPoint:  f.Street(),
				EndPoint:    f.Street(),
				Checkpoints: checkpoints,
			},
		})
	}

	return out
}
