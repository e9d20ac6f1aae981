package main

import (
	"context"
	"fmt"
	"log"

	"starcatalog/internal/config"
	"starcatalog/internal/database"
	"starcatalog/internal/domain"
	"starcatalog/internal/repository"

	"gorm.io/gorm"
)

func str(s string) *string { return &s }

func num(n int64) *int64 { return &n }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	seedErr := seed(context.Background(), db, cfg.CurrentUserID)

	if err := database.Close(db); err != nil {
		log.Printf("close database: %v", err)
	}
	if seedErr != nil {
		log.Fatal(seedErr)
	}
	log.Println("Seed complete")
}

// seed migrates the schema and inserts the current user and the reference
// data. Rows that already exist are left untouched.
func seed(ctx context.Context, db *gorm.DB, currentUserID int64) error {
	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	seeder := repository.NewSeeder(db)

	// ================== USERS ==================
	n, err := seeder.SeedUser(ctx, &domain.User{
		ID:       currentUserID,
		Username: "luke",
		Email:    "luke@rebelalliance.org",
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	log.Printf("users inserted: %d", n)

	// ================== PEOPLE ==================
	n, err = seeder.SeedPeople(ctx, []domain.Person{
		{ID: 1, Name: "Luke Skywalker", BirthYear: str("19BBY"), Gender: str("male"), EyeColor: str("blue"), HairColor: str("blond")},
		{ID: 2, Name: "C-3PO", BirthYear: str("112BBY"), Gender: str("n/a"), EyeColor: str("yellow"), HairColor: str("n/a")},
		{ID: 3, Name: "R2-D2", BirthYear: str("33BBY"), Gender: str("n/a"), EyeColor: str("red"), HairColor: str("n/a")},
		{ID: 4, Name: "Darth Vader", BirthYear: str("41.9BBY"), Gender: str("male"), EyeColor: str("yellow"), HairColor: str("none")},
		{ID: 5, Name: "Leia Organa", BirthYear: str("19BBY"), Gender: str("female"), EyeColor: str("brown"), HairColor: str("brown")},
		{ID: 10, Name: "Obi-Wan Kenobi", BirthYear: str("57BBY"), Gender: str("male"), EyeColor: str("blue-gray"), HairColor: str("auburn")},
		{ID: 13, Name: "Chewbacca", BirthYear: str("200BBY"), Gender: str("male"), EyeColor: str("blue"), HairColor: str("brown")},
		{ID: 14, Name: "Han Solo", BirthYear: str("29BBY"), Gender: str("male"), EyeColor: str("brown"), HairColor: str("brown")},
	})
	if err != nil {
		return fmt.Errorf("seed people: %w", err)
	}
	log.Printf("people inserted: %d", n)

	// ================== PLANETS ==================
	n, err = seeder.SeedPlanets(ctx, []domain.Planet{
		{ID: 1, Name: "Tatooine", Climate: str("arid"), Terrain: str("desert"), Population: num(200000)},
		{ID: 2, Name: "Alderaan", Climate: str("temperate"), Terrain: str("grasslands, mountains"), Population: num(2000000000)},
		{ID: 3, Name: "Yavin IV", Climate: str("temperate, tropical"), Terrain: str("jungle, rainforests"), Population: num(1000)},
		{ID: 4, Name: "Hoth", Climate: str("frozen"), Terrain: str("tundra, ice caves, mountain ranges")},
		{ID: 5, Name: "Dagobah", Climate: str("murky"), Terrain: str("swamp, jungles")},
		{ID: 8, Name: "Naboo", Climate: str("temperate"), Terrain: str("grassy hills, swamps, forests, mountains"), Population: num(4500000000)},
	})
	if err != nil {
		return fmt.Errorf("seed planets: %w", err)
	}
	log.Printf("planets inserted: %d", n)

	if err := seeder.SyncSequences(ctx); err != nil {
		return fmt.Errorf("sync sequences: %w", err)
	}
	return nil
}
