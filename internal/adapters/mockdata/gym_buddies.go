package mockdata

import (
	"nearby-fitness-service/internal/domain"
)

var (
	buddySpecialties = []string{
		"Weight Training", "Nutrition", "Yoga", "CrossFit", "Bodybuilding", "Cardio",
		"Boxing", "Martial Arts", "Powerlifting", "Olympic Lifting", "Calisthenics",
		"HIIT", "Pilates", "Swimming", "Cycling", "Running",
	}
	buddyAvailability = []string{"Morning", "Evening", "Night", "Weekends", "Weekdays"}
	fitnessGoals      = []string{
		"Weight Loss", "Muscle Gain", "Endurance", "Strength", "Flexibility",
		"General Fitness", "Sports Specific", "Rehabilitation",
	}
	experienceLevels = []string{"Beginner", "Intermediate", "Advanced", "Professional"}
	buddyLanguages   = []string{"Bengali", "English", "Hindi", "Arabic"}
)

// GymBuddies generates n gym buddy profiles with ids 1..n.
func (g *Generator) GymBuddies(n int) []domain.GymBuddy {
	out := make([]domain.GymBuddy, 0, n)

	for i := 0; i < n; i++ {
		f := g.faker

		achievements := make([]domain.Achievement, f.IntRange(1, 5))
		for j := range achievements {
			achievements[j] = domain.Achievement{
				Title:       g.words(3),
				Date:        g.pastDate(),
				Description: g.sentence(),
			}
		}

		certifications := make([]domain.Certification, f.IntRange(1, 4))
		for j := range certifications {
			certifications[j] = domain.Certification{
				Name:   g.words(3),
				Issuer: f.Company(),
				Year:   f.IntRange(2015, 2024),
			}
		}

		out = append(out, domain.GymBuddy{
			ID:              i + 1,
			Name:            f.Name(),
			Age:             f.IntRange(18, 45),
			Experience:      g.years(1, 15),
			Specialties:     g.pick(buddySpecialties, f.IntRange(2, 4)),
			Availability:    g.pick(buddyAvailability, f.IntRange(2, 4)),
			Coordinates:     g.coordinate(),
			Bio:             g.paragraph(),
			PreferredGym:    f.Company(),
			FitnessGoals:    g.pick(fitnessGoals, f.IntRange(1, 3)),
			ExperienceLevel: f.RandomString(experienceLevels),
			Achievements:    achievements,
			SocialMedia: domain.BuddySocialMedia{
				Instagram: f.URL(),
				Facebook:  f.URL(),
				LinkedIn:  f.URL(),
			},
			Languages:      g.pick(buddyLanguages, f.IntRange(1, 3)),
			Certifications: certifications,
		})
	}

	return out
}
