package agents

import "github.com/mcdev12/transferdesk/go/internal/models"

// CreateAgentRequest represents the data needed to create a new agent
type CreateAgentRequest struct {
	ProfileID *models.ProfileID
	Name      string
	Agency    string
}
