package dto

// VerificationRequestDTO serves both actions of the verification endpoint.
type VerificationRequestDTO struct {
	Action   string `json:"action,omitempty" example:"send"`
	Email    string `json:"email" example:"investor@example.com"`
	NewPhone string `json:"newPhone,omitempty" example:"+234 801 234 5678"`
	Code     string `json:"code,omitempty" example:"482913"`
}

type VerificationResponseDTO struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	NewPhone string `json:"newPhone,omitempty"`
}
