package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"skyouth_backend/internals/configs"
	formSeeds "skyouth_backend/internals/seeds/forms"
)

// RunAllSeeds dijalankan saat startup bila SEED_FORMS_FILE di-set.
func RunAllSeeds(db *gorm.DB, cfg configs.Config) {
	if strings.TrimSpace(cfg.SeedFile) == "" {
		return
	}

	//* Forms
	if err := formSeeds.SeedFormsFromJSON(db, cfg.SeedFile); err != nil {
		log.Printf("[ERROR] seed forms: %v", err)
	}
}
