package forms

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"

	"skyouth_backend/internals/features/forms/forms/model"
)

// EventSeed: event opsional tempat form digantung.
type EventSeed struct {
	Title    string     `json:"event_title"`
	Date     *time.Time `json:"event_date"`
	Location *string    `json:"event_location"`
}

// FormSeed mirrors the admin create payload. form_fields may be an array, or a
// string holding the array (legacy rows were stored that way).
type FormSeed struct {
	Title         string          `json:"form_title"`
	Description   *string         `json:"form_description"`
	Fields        json.RawMessage `json:"form_fields"`
	IsActive      *bool           `json:"form_is_active"`
	PublishStatus string          `json:"form_publish_status"`
	Limit         *int            `json:"form_submission_limit"`
	Deadline      *time.Time      `json:"form_submission_deadline"`
	Event         *EventSeed      `json:"event"`
}

func LoadFormSeeds(filePath string) ([]FormSeed, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []FormSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return seeds, nil
}

// ToModel builds the form; the stored field text is normalized by the model hooks.
func (s FormSeed) ToModel() *model.Form {
	f := &model.Form{
		FormTitle:              strings.TrimSpace(s.Title),
		FormDescription:        s.Description,
		FormFieldsRaw:          string(s.Fields),
		FormIsActive:           true,
		FormPublishStatus:      model.PublishStatusPublished,
		FormSubmissionLimit:    s.Limit,
		FormSubmissionDeadline: s.Deadline,
	}
	if s.IsActive != nil {
		f.FormIsActive = *s.IsActive
	}
	if ps := strings.ToUpper(strings.TrimSpace(s.PublishStatus)); ps != "" {
		f.FormPublishStatus = ps
	}
	f.LoadFields()
	return f
}

func SeedFormsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)
	seeds, err := LoadFormSeeds(filePath)
	if err != nil {
		return err
	}

	for _, s := range seeds {
		var n int64
		if err := db.Model(&model.Form{}).Where("form_title = ?", s.Title).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("ℹ️ Form %q sudah ada, lewati...", s.Title)
			continue
		}

		form := s.ToModel()
		err := db.Transaction(func(tx *gorm.DB) error {
			if s.Event != nil && strings.TrimSpace(s.Event.Title) != "" {
				ev := model.Event{EventTitle: s.Event.Title, EventDate: s.Event.Date, EventLocation: s.Event.Location}
				if err := tx.Create(&ev).Error; err != nil {
					return err
				}
				form.FormEventID = &ev.EventID
			}
			return tx.Create(form).Error
		})
		if err != nil {
			return fmt.Errorf("seed form %q: %w", s.Title, err)
		}
		log.Printf("✅ Form %q dibuat (%d fields)", form.FormTitle, len(form.Fields))
	}
	return nil
}
