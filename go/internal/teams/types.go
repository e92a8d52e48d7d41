package teams

import "github.com/mcdev12/transferdesk/go/internal/models"

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	ProfileID *models.ProfileID
	Name      string
	Country   string
}
