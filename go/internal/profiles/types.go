package profiles

import "github.com/mcdev12/transferdesk/go/internal/models"

// CreateProfileRequest represents the data needed to create a new profile
type CreateProfileRequest struct {
	UserID      models.UserID
	DisplayName string
	Email       string
}
