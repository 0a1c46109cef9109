package domain

import "time"

// Snapshot holds every entity collection served by the API.
// It is built once at startup and must be treated as read-only afterwards,
// which is what lets concurrent queries share it without locking.
type Snapshot struct {
	Marathons   []Marathon
	Gyms        []Gym
	GymBuddies  []GymBuddy
	GeneratedAt time.Time
}
