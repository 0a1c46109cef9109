// Package mockdata generates the synthetic marathons, gyms and gym buddies
// served by the API.
package mockdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"nearby-fitness-service/internal/domain"
	"nearby-fitness-service/internal/ports"
)

const dateLayout = "2006-01-02"

// Config controls the size and randomness of a generated snapshot.
// A zero Seed draws a random one; a zero Now uses the wall clock.
type Config struct {
	Seed       uint64
	Marathons  int
	Gyms       int
	GymBuddies int
	Now        time.Time
}

// DefaultConfig mirrors the collection sizes of the public demo.
func DefaultConfig() Config {
	return Config{Marathons: 20, Gyms: 30, GymBuddies: 50}
}

var _ ports.SnapshotSource = (*Generator)(nil)

// Generator implements ports.SnapshotSource with faker-backed records.
type Generator struct {
	cfg   Config
	faker *gofakeit.Faker
	now   time.Time
}

func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Marathons < 0 || cfg.Gyms < 0 || cfg.GymBuddies < 0 {
		return nil, errors.New("new generator: collection sizes must not be negative")
	}

	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &Generator{
		cfg:   cfg,
		faker: gofakeit.New(cfg.Seed),
		now:   now.UTC(),
	}, nil
}

// Load builds a fresh snapshot. It is meant to run once, at startup.
func (g *Generator) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate snapshot: %w", err)
	}

	return &domain.Snapshot{
		Marathons:   g.Marathons(g.cfg.Marathons),
		Gyms:        g.Gyms(g.cfg.Gyms),
		GymBuddies:  g.GymBuddies(g.cfg.GymBuddies),
		GeneratedAt: g.now,
	}, nil
}

// pick returns n distinct elements of items in random order.
func (g *Generator) pick(items []string, n int) []string {
	out := append([]string(nil), items...)
	g.faker.ShuffleStrings(out)
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

func (g *Generator) futureDate() string {
	return g.faker.DateRange(g.now, g.now.AddDate(1, 0, 0)).Format(dateLayout)
}

func (g *Generator) pastDate() string {
	return g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now).Format(dateLayout)
}

func (g *Generator) clock() string {
	return fmt.Sprintf("%02d:%02d", g.faker.IntRange(0, 23), g.faker.IntRange(0, 59))
}

func (g *Generator) years(min, max int) string {
	return fmt.Sprintf("%d years", g.faker.IntRange(min, max))
}

func (g *Generator) words(n int) string {
	w := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w = append(w, g.faker.Word())
	}
	return strings.Join(w, " ")
}

func (g *Generator) sentence() string {
	s := g.words(g.faker.IntRange(5, 12))
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (g *Generator) paragraph() string {
	n := g.faker.IntRange(3, 6)
	s := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, g.sentence())
	}
	return strings.Join(s, " ")
}
