package ports

import "context"

// SeedResult reports which gaps a seeding run filled.
type SeedResult struct {
	AdminCreated     bool
	AdminUsername    string
	MenuItemsCreated int
}

// Seeder bootstraps default data. Running it any number of times is safe.
type Seeder interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
