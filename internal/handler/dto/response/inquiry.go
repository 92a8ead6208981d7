package response

import (
	"retreat-api/internal/usecase/commands"
)

type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		Success:   true,
		Message:   r.Message,
		Reference: r.Reference.String(),
	}
}

type ValidationDetail struct {
	Fields map[string]string `json:"fields"`
}
