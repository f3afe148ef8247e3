package dto

import "garmentsync/internal/domain"

type InviteStakeholderRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Permissions string `json:"permissions"`
	Message     string `json:"message"`
}

// BulkInviteRequest carries a raw list of addresses separated by commas or
// newlines. Role and permissions apply to every entry.
type BulkInviteRequest struct {
	Emails      string `json:"emails"`
	Role        string `json:"role"`
	Permissions string `json:"permissions"`
	Message     string `json:"message"`
}

type UpdatePermissionsRequest struct {
	Permissions string `json:"permissions"`
}

type InviteResponse struct {
	Stakeholder    *domain.Stakeholder `json:"stakeholder"`
	InvitationSent bool                `json:"invitationSent"`
}

type BulkInviteStatus string

const (
	BulkInviteSuccess BulkInviteStatus = "success"
	BulkInviteError   BulkInviteStatus = "error"
	BulkInviteExists  BulkInviteStatus = "exists"
	BulkInviteInvalid BulkInviteStatus = "invalid"
)

type BulkInviteEntry struct {
	Email       string              `json:"email"`
	Status      BulkInviteStatus    `json:"status"`
	Reason      string              `json:"reason,omitempty"`
	Stakeholder *domain.Stakeholder `json:"stakeholder,omitempty"`
}

// BulkInviteResult lists one entry per non-empty input address, in input
// order. Added counts persisted stakeholders, Notified those whose invitation
// was delivered.
type BulkInviteResult struct {
	Total    int               `json:"total"`
	Added    int               `json:"added"`
	Notified int               `json:"notified"`
	Results  []BulkInviteEntry `json:"results"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
