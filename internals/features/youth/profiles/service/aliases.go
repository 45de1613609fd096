package service

import "skyouth_backend/internals/features/forms/resolver"

// Canonical profile attributes.
const (
	AttrFullName                 = "fullName"
	AttrFirstName                = "firstName"
	AttrMiddleName               = "middleName"
	AttrLastName                 = "lastName"
	AttrSuffix                   = "suffix"
	AttrDateOfBirth              = "dateOfBirth"
	AttrGender                   = "gender"
	AttrCivilStatus              = "civilStatus"
	AttrReligion                 = "religion"
	AttrMobileNumber             = "mobileNumber"
	AttrEmail                    = "email"
	AttrAddress                  = "address"
	AttrPurok                    = "purok"
	AttrBarangay                 = "barangay"
	AttrMunicipality             = "municipality"
	AttrProvince                 = "province"
	AttrRegion                   = "region"
	AttrYouthClassification      = "youthClassification"
	AttrYouthAgeGroup            = "youthAgeGroup"
	AttrEducationLevel           = "educationLevel"
	AttrSchoolName               = "schoolName"
	AttrWorkStatus               = "workStatus"
	AttrOccupation               = "occupation"
	AttrRegisteredSkVoter        = "registeredSkVoter"
	AttrRegisteredNationalVoter  = "registeredNationalVoter"
	AttrVotedLastElection        = "votedLastElection"
	AttrAttendedKkAssembly       = "attendedKkAssembly"
	AttrIsPwd                    = "isPwd"
	AttrIsIndigenous             = "isIndigenous"
	AttrIsSoloParent             = "isSoloParent"
	AttrSpecialNeeds             = "specialNeeds"
	AttrSkills                   = "skills"
	AttrEmergencyContactName     = "emergencyContactName"
	AttrEmergencyContactNumber   = "emergencyContactNumber"
	AttrEmergencyContactRelation = "emergencyContactRelation"
)

// Profile maps registration form keys onto youth profile attributes. The first
// alias with a non-empty value wins, so keep the most specific labels first.
var Profile = resolver.MustTable(
	resolver.Entry{Attr: AttrFullName, Aliases: []string{"Full Name", "fullName", "full_name", "Complete Name", "Name", "name", "Enter your Full Name", "Your Name"}},
	resolver.Entry{Attr: AttrFirstName, Aliases: []string{"First Name", "firstName", "first_name", "Given Name"}},
	resolver.Entry{Attr: AttrMiddleName, Aliases: []string{"Middle Name", "middleName", "middle_name", "Middle Initial"}},
	resolver.Entry{Attr: AttrLastName, Aliases: []string{"Last Name", "lastName", "last_name", "Surname", "Family Name"}},
	resolver.Entry{Attr: AttrSuffix, Aliases: []string{"Suffix", "suffix", "Name Extension", "Extension Name"}},
	resolver.Entry{Attr: AttrDateOfBirth, Aliases: []string{"Date of Birth", "dateOfBirth", "date_of_birth", "Birthdate", "birthdate", "Birthday", "birthday", "Birth Date", "dob"}},
	resolver.Entry{Attr: AttrGender, Aliases: []string{"Gender", "gender", "Sex", "sex"}},
	resolver.Entry{Attr: AttrCivilStatus, Aliases: []string{"Civil Status", "civilStatus", "civil_status", "Marital Status"}},
	resolver.Entry{Attr: AttrReligion, Aliases: []string{"Religion", "religion"}},
	resolver.Entry{Attr: AttrMobileNumber, Aliases: []string{"Mobile Number", "mobileNumber", "mobile_number", "Contact Number", "contactNumber", "contact_number", "Phone Number", "phone", "Cellphone Number"}},
	resolver.Entry{Attr: AttrEmail, Aliases: []string{"Email", "email", "Email Address", "emailAddress", "email_address", "E-mail"}},
	resolver.Entry{Attr: AttrAddress, Aliases: []string{"Address", "address", "Complete Address", "Home Address", "Street Address"}},
	resolver.Entry{Attr: AttrPurok, Aliases: []string{"Purok", "purok", "Purok/Sitio", "Sitio", "Zone"}},
	resolver.Entry{Attr: AttrBarangay, Aliases: []string{"Barangay", "barangay", "Brgy"}},
	resolver.Entry{Attr: AttrMunicipality, Aliases: []string{"Municipality", "municipality", "City/Municipality", "City", "city"}},
	resolver.Entry{Attr: AttrProvince, Aliases: []string{"Province", "province"}},
	resolver.Entry{Attr: AttrRegion, Aliases: []string{"Region", "region"}},
	resolver.Entry{Attr: AttrYouthClassification, Aliases: []string{"Youth Classification", "youthClassification", "youth_classification", "Classification"}},
	resolver.Entry{Attr: AttrYouthAgeGroup, Aliases: []string{"Youth Age Group", "youthAgeGroup", "youth_age_group", "Age Group"}},
	resolver.Entry{Attr: AttrEducationLevel, Aliases: []string{"Education Level", "educationLevel", "education_level", "Current Education Level", "level", "Educational Attainment", "Highest Educational Attainment"}},
	resolver.Entry{Attr: AttrSchoolName, Aliases: []string{"School Name", "schoolName", "school_name", "School", "Name of School"}},
	resolver.Entry{Attr: AttrWorkStatus, Aliases: []string{"Work Status", "workStatus", "work_status", "Employment Status"}},
	resolver.Entry{Attr: AttrOccupation, Aliases: []string{"Occupation", "occupation", "Job", "Profession"}},
	resolver.Entry{Attr: AttrRegisteredSkVoter, Aliases: []string{"Registered SK Voter", "registeredSkVoter", "registered_sk_voter", "SK Voter", "Are you a registered SK voter?"}},
	resolver.Entry{Attr: AttrRegisteredNationalVoter, Aliases: []string{"Registered National Voter", "registeredNationalVoter", "registered_national_voter", "National Voter", "Are you a registered national voter?"}},
	resolver.Entry{Attr: AttrVotedLastElection, Aliases: []string{"Voted Last Election", "votedLastElection", "voted_last_election", "Did you vote last election?", "Voted in Last SK Election"}},
	resolver.Entry{Attr: AttrAttendedKkAssembly, Aliases: []string{"Attended KK Assembly", "attendedKkAssembly", "attended_kk_assembly", "Have you attended a KK Assembly?"}},
	resolver.Entry{Attr: AttrIsPwd, Aliases: []string{"PWD", "isPwd", "is_pwd", "Person with Disability"}},
	resolver.Entry{Attr: AttrIsIndigenous, Aliases: []string{"Indigenous", "isIndigenous", "is_indigenous", "Indigenous People"}},
	resolver.Entry{Attr: AttrIsSoloParent, Aliases: []string{"Solo Parent", "isSoloParent", "is_solo_parent"}},
	resolver.Entry{Attr: AttrSpecialNeeds, Aliases: []string{"Special Needs", "specialNeeds", "special_needs", "Disability Type"}},
	resolver.Entry{Attr: AttrSkills, Aliases: []string{"Skills", "skills", "Talents", "Skills/Talents"}},
	resolver.Entry{Attr: AttrEmergencyContactName, Aliases: []string{"Emergency Contact Name", "emergencyContactName", "emergency_contact_name", "Emergency Contact", "Contact Person"}},
	resolver.Entry{Attr: AttrEmergencyContactNumber, Aliases: []string{"Emergency Contact Number", "emergencyContactNumber", "emergency_contact_number", "Emergency Number", "Contact Person Number"}},
	resolver.Entry{Attr: AttrEmergencyContactRelation, Aliases: []string{"Emergency Contact Relation", "emergencyContactRelation", "emergency_contact_relation", "Relationship", "Relation"}},
)
