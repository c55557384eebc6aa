package dto

// ToneContextRequest represents the tone parameters of a generation request
type ToneContextRequest struct {
	Formality            int    `json:"formality"`
	Directness           int    `json:"directness"`
	EmotionalSensitivity int    `json:"emotionalSensitivity"`
	PowerRelationship    string `json:"powerRelationship"`
	CulturalContext      string `json:"culturalContext"`
	Medium               string `json:"medium"`
}

// GenerateRequest represents the request body for an AI rewrite.
// Field limits are checked by the generation use case.
type GenerateRequest struct {
	MessageType        string             `json:"messageType" binding:"required"`
	MessageDescription string             `json:"messageDescription" binding:"required"`
	Context            ToneContextRequest `json:"context"`
	Locale             string             `json:"locale"`
	TargetLanguage     string             `json:"targetLanguage"`
}

// GenerateResponse represents the generated message with the remaining balance
type GenerateResponse struct {
	Message          string `json:"message"`
	Explanation      string `json:"explanation,omitempty"`
	RemainingCredits int64  `json:"remainingCredits"`
}
