package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	YouthProfileStatusActive   = "Active"
	YouthProfileStatusInactive = "Inactive"
)

// Age groups used by the youth office.
const (
	AgeGroupChildYouth = "Child Youth (15-17)"
	AgeGroupCoreYouth  = "Core Youth (18-24)"
	AgeGroupYoungAdult = "Young Adult (25-30)"
)

type YouthProfile struct {
	YouthProfileID         uuid.UUID `gorm:"column:youth_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"youth_profile_id"`
	YouthProfileTrackingID string    `gorm:"column:youth_profile_tracking_id;type:varchar(20);not null;uniqueIndex" json:"youth_profile_tracking_id"`

	// Personal
	YouthProfileFullName    string    `gorm:"column:youth_profile_full_name;type:varchar(255);not null;index:idx_youth_profile_identity,priority:1" json:"youth_profile_full_name"`
	YouthProfileFirstName   *string   `gorm:"column:youth_profile_first_name;type:varchar(100)" json:"youth_profile_first_name,omitempty"`
	YouthProfileMiddleName  *string   `gorm:"column:youth_profile_middle_name;type:varchar(100)" json:"youth_profile_middle_name,omitempty"`
	YouthProfileLastName    *string   `gorm:"column:youth_profile_last_name;type:varchar(100)" json:"youth_profile_last_name,omitempty"`
	YouthProfileSuffix      *string   `gorm:"column:youth_profile_suffix;type:varchar(20)" json:"youth_profile_suffix,omitempty"`
	YouthProfileDateOfBirth time.Time `gorm:"column:youth_profile_date_of_birth;type:date;not null;index:idx_youth_profile_identity,priority:3" json:"youth_profile_date_of_birth"`
	YouthProfileAge         int       `gorm:"column:youth_profile_age;not null" json:"youth_profile_age"`
	YouthProfileGender      *string   `gorm:"column:youth_profile_gender;type:varchar(30)" json:"youth_profile_gender,omitempty"`
	YouthProfileCivilStatus *string   `gorm:"column:youth_profile_civil_status;type:varchar(30)" json:"youth_profile_civil_status,omitempty"`
	YouthProfileReligion    *string   `gorm:"column:youth_profile_religion;type:varchar(100)" json:"youth_profile_religion,omitempty"`

	// Contact & address
	YouthProfileMobileNumber string  `gorm:"column:youth_profile_mobile_number;type:varchar(30);not null;default:'';index:idx_youth_profile_identity,priority:2" json:"youth_profile_mobile_number"`
	YouthProfileEmail        *string `gorm:"column:youth_profile_email;type:varchar(255)" json:"youth_profile_email,omitempty"`
	YouthProfileAddress      *string `gorm:"column:youth_profile_address;type:text" json:"youth_profile_address,omitempty"`
	YouthProfilePurok        *string `gorm:"column:youth_profile_purok;type:varchar(100)" json:"youth_profile_purok,omitempty"`
	YouthProfileBarangay     *string `gorm:"column:youth_profile_barangay;type:varchar(100)" json:"youth_profile_barangay,omitempty"`
	YouthProfileMunicipality *string `gorm:"column:youth_profile_municipality;type:varchar(100)" json:"youth_profile_municipality,omitempty"`
	YouthProfileProvince     *string `gorm:"column:youth_profile_province;type:varchar(100)" json:"youth_profile_province,omitempty"`
	YouthProfileRegion       *string `gorm:"column:youth_profile_region;type:varchar(100)" json:"youth_profile_region,omitempty"`

	// Demographics
	YouthProfileClassification *string `gorm:"column:youth_profile_classification;type:varchar(100)" json:"youth_profile_classification,omitempty"`
	YouthProfileAgeGroup       string  `gorm:"column:youth_profile_age_group;type:varchar(50)" json:"youth_profile_age_group"`
	YouthProfileEducationLevel *string `gorm:"column:youth_profile_education_level;type:varchar(100)" json:"youth_profile_education_level,omitempty"`
	YouthProfileSchoolName     *string `gorm:"column:youth_profile_school_name;type:varchar(255)" json:"youth_profile_school_name,omitempty"`
	YouthProfileWorkStatus     *string `gorm:"column:youth_profile_work_status;type:varchar(100)" json:"youth_profile_work_status,omitempty"`
	YouthProfileOccupation     *string `gorm:"column:youth_profile_occupation;type:varchar(100)" json:"youth_profile_occupation,omitempty"`

	// Civic participation
	YouthProfileRegisteredSkVoter       *bool `gorm:"column:youth_profile_registered_sk_voter" json:"youth_profile_registered_sk_voter,omitempty"`
	YouthProfileRegisteredNationalVoter *bool `gorm:"column:youth_profile_registered_national_voter" json:"youth_profile_registered_national_voter,omitempty"`
	YouthProfileVotedLastElection       *bool `gorm:"column:youth_profile_voted_last_election" json:"youth_profile_voted_last_election,omitempty"`
	YouthProfileAttendedKkAssembly      *bool `gorm:"column:youth_profile_attended_kk_assembly" json:"youth_profile_attended_kk_assembly,omitempty"`

	// Special cases
	YouthProfileIsPwd        bool           `gorm:"column:youth_profile_is_pwd;not null;default:false" json:"youth_profile_is_pwd"`
	YouthProfileIsIndigenous bool           `gorm:"column:youth_profile_is_indigenous;not null;default:false" json:"youth_profile_is_indigenous"`
	YouthProfileIsSoloParent bool           `gorm:"column:youth_profile_is_solo_parent;not null;default:false" json:"youth_profile_is_solo_parent"`
	YouthProfileSpecialNeeds pq.StringArray `gorm:"column:youth_profile_special_needs;type:text[]" json:"youth_profile_special_needs"`
	YouthProfileSkills       pq.StringArray `gorm:"column:youth_profile_skills;type:text[]" json:"youth_profile_skills"`

	// Emergency contact
	YouthProfileEmergencyContactName     *string `gorm:"column:youth_profile_emergency_contact_name;type:varchar(255)" json:"youth_profile_emergency_contact_name,omitempty"`
	YouthProfileEmergencyContactNumber   *string `gorm:"column:youth_profile_emergency_contact_number;type:varchar(30)" json:"youth_profile_emergency_contact_number,omitempty"`
	YouthProfileEmergencyContactRelation *string `gorm:"column:youth_profile_emergency_contact_relation;type:varchar(50)" json:"youth_profile_emergency_contact_relation,omitempty"`

	// Bookkeeping
	YouthProfileStatus             string     `gorm:"column:youth_profile_status;type:varchar(20);not null;default:'Active'" json:"youth_profile_status"`
	YouthProfileParticipation      int        `gorm:"column:youth_profile_participation;not null;default:0" json:"youth_profile_participation"`
	YouthProfileIdentityHash       string     `gorm:"column:youth_profile_identity_hash;type:char(64);not null;uniqueIndex" json:"-"`
	YouthProfileSourceSubmissionID *uuid.UUID `gorm:"column:youth_profile_source_submission_id;type:uuid;index" json:"youth_profile_source_submission_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:youth_profile_created_at;autoCreateTime" json:"youth_profile_created_at"`
	UpdatedAt time.Time      `gorm:"column:youth_profile_updated_at;autoUpdateTime" json:"youth_profile_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:youth_profile_deleted_at;index" json:"-"`
}

func (YouthProfile) TableName() string { return "youth_profiles" }
