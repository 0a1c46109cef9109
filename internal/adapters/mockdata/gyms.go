package mockdata

import (
	"fmt"

	"nearby-fitness-service/internal/domain"
)

var (
	gymAreas = []string{
		"Dhanmondi", "Gulshan", "Mirpur", "Uttara", "Banani", "Mohammadpur",
		"Lalmatia", "Bashundhara", "Wari", "Motijheel", "Farmgate", "Tejgaon",
	}
	gymFacilities = []string{
		"Cardio", "Weights", "Yoga", "Swimming Pool", "Sauna", "Personal Training",
		"CrossFit", "Boxing", "Zumba", "Martial Arts", "Steam Room", "Jacuzzi",
		"Basketball Court", "Tennis Court", "Squash Court", "Indoor Track",
		"Nutrition Consultation", "Massage Therapy", "Physical Therapy",
	}
	membershipTypes = []string{"Basic", "Premium", "VIP", "Family", "Student", "Corporate"}
	gymAmenities    = []string{"Parking", "Locker Room", "Shower Facilities", "Towel Service", "WiFi", "Cafe", "Pro Shop"}
)

// Gyms generates n gyms with ids 1..n.
func (g *Generator) Gyms(n int) []domain.Gym {
	out := make([]domain.Gym, 0, n)

	for i := 0; i < n; i++ {
		f := g.faker

		trainers := make([]domain.Trainer, f.IntRange(3, 8))
		for j := range trainers {
			trainers[j] = domain.Trainer{
				Name:       f.Name(),
				Specialty:  f.RandomString(gymFacilities),
				Experience: g.years(1, 15),
			}
		}

		reviews := make([]domain.GymReview, f.IntRange(5, 15))
		for j := range reviews {
			reviews[j] = domain.GymReview{
				Rating:  round(f.Float64Range(1, 5), 1),
				Comment: g.sentence(),
				Date:    g.pastDate(),
			}
		}

		out = append(out, domain.Gym{
			ID:              i + 1,
			Name:            f.Company(),
			Location:        fmt.Sprintf("%s, %s", f.RandomString(gymAreas), f.Street()),
			Rating:          round(f.Float64Range(3.5, 5), 1),
			MonthlyFee:      f.IntRange(2000, 15000),
			Facilities:      g.pick(gymFacilities, f.IntRange(5, 10)),
			Coordinates:     g.coordinate(),
			OpeningHours:    fmt.Sprintf("%d:00 AM - %d:00 PM", f.IntRange(6, 8), f.IntRange(8, 10)),
			MembershipTypes: g.pick(membershipTypes, f.IntRange(2, 4)),
			Trainers:        trainers,
			Amenities:       append([]string(nil), gymAmenities...),
			SocialMedia: domain.GymSocialMedia{
				Facebook:  f.URL(),
				Instagram: f.URL(),
				Website:   f.URL(),
			},
			Reviews: reviews,
		})
	}

	return out
}
