package request

import "console-rental/internal/usecase/commands"

type CreateGameRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Developers  string `json:"developers"`
}

func (r CreateGameRequest) ToCommand() commands.CreateGameRequest {
	return commands.CreateGameRequest{
		Title:       r.Title,
		Description: r.Description,
		Developers:  r.Developers,
	}
}
