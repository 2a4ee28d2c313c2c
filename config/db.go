package config

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gmls/domain"
)

// SchemaVersion tags the relational schema via sqlite's user_version
// pragma. Any structural change bumps it; a mismatch triggers a
// destructive reset of the cached tables. There is no forward migration
// chain — the remote store is authoritative and the cache is rebuilt from
// it on the next sync.
const SchemaVersion = 2

func GetDatabasePath() string {
	env := os.Getenv("GMLS_DB_PATH")
	if env != "" {
		return env
	}
	return "gmls.db"
}

func GetPreferencesPath() string {
	env := os.Getenv("GMLS_PREFS_PATH")
	if env != "" {
		return env
	}
	return "gmls_prefs.db"
}

func BootDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(GetDatabasePath()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// the foreign_keys pragma is per-connection, so the pool is pinned to
	// a single connection; this also serializes transactions on the one
	// on-device store
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// sqlite only honors the cascade rule with this pragma on
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	var current int
	if err := db.Raw("PRAGMA user_version").Scan(&current).Error; err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	if current != 0 && current != SchemaVersion {
		err := db.Migrator().DropTable(
			&domain.HouseholdMemberRow{},
			&domain.UserProfile{},
			&domain.DisasterRecord{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reset schema: %w", err)
		}
	}

	err = db.AutoMigrate(
		&domain.UserProfile{},
		&domain.HouseholdMemberRow{},
		&domain.DisasterRecord{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)).Error; err != nil {
		return nil, fmt.Errorf("failed to stamp schema version: %w", err)
	}

	return db, nil
}

// BootPreferencesDB opens the key-value flag store. It lives in its own
// file so resetting the relational schema never touches onboarding or
// theme state.
func BootPreferencesDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(GetPreferencesPath()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences: %w", err)
	}

	return db, nil
}
