package dto

// AutoCreateRequest: POST /api/a/youth-profiles/auto-create
type AutoCreateRequest struct {
	SubmissionID string `json:"submission_id" validate:"required,uuid"`
	FormTitle    string `json:"form_title" validate:"omitempty,max=255"`
}
