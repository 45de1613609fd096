package constants

import "fmt"

// Role yang dibawa claim "role" di JWT (lowercase).
const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Only youth office staff, admins or owners can access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admins or owners can access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// StaffAndAbove: kelola form, review submission, sync revenue, profil pemuda.
	StaffAndAbove = []string{RoleStaff, RoleAdmin, RoleOwner}

	// OwnerAndAbove: aksi destruktif (hapus form beserta submission-nya).
	OwnerAndAbove = []string{RoleOwner, RoleAdmin}
)
