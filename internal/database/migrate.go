package database

import (
	"fmt"
	"log/slog"

	"mojicode/internal/models"
	"mojicode/internal/observability"

	"gorm.io/gorm"
)

// migrationStep creates the stores and indexes introduced at one schema
// version. Steps are additive only: they create what is missing and never
// drop or rewrite existing data, so re-running a step against a partially
// created schema from an interrupted upgrade is safe.
type migrationStep struct {
	Version int
	Name    string
	Models  []interface{}
}

var steps = []migrationStep{
	{
		Version: 1,
		Name:    "core_entities",
		Models: []interface{}{
			&models.User{},
			&models.Post{},
			&models.Media{},
			&models.Comment{},
			&models.Like{},
			&models.Follow{},
		},
	},
	{
		Version: 2,
		Name:    "pending_requests",
		Models: []interface{}{
			&models.PendingRequest{},
		},
	},
}

// CurrentVersion reads the schema version last recorded in the database.
func CurrentVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Migrate upgrades the schema to target. Opening with a version higher than
// previously seen applies every step in between; opening with the same or a
// lower version is a no-op. The recorded version only advances after each
// step commits, so an interrupted upgrade resumes from the incomplete step.
func Migrate(db *gorm.DB, target int) error {
	current, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step.Version <= current || step.Version > target {
			continue
		}

		if err := db.AutoMigrate(step.Models...); err != nil {
			return fmt.Errorf("migration %d (%s): %w", step.Version, step.Name, err)
		}
		if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", step.Version)).Error; err != nil {
			return fmt.Errorf("migration %d (%s): record version: %w", step.Version, step.Name, err)
		}

		observability.GlobalLogger.Info("Applied schema migration",
			slog.Int("version", step.Version),
			slog.String("name", step.Name),
		)
	}

	return nil
}

// MaxVersion returns the highest schema version this build knows about.
func MaxVersion() int {
	return steps[len(steps)-1].Version
}
