package entity

// PowerRelationship describes the sender's standing relative to the recipient
type PowerRelationship string

// PowerRelationship constants
const (
	PowerMore  PowerRelationship = "more"
	PowerEqual PowerRelationship = "equal"
	PowerLess  PowerRelationship = "less"
)

// ToneContext holds the tone parameters of a generation request
type ToneContext struct {
	Formality            int
	Directness           int
	EmotionalSensitivity int
	PowerRelationship    PowerRelationship
	CulturalContext      string
	Medium               string
}

// GenerationRequest is a validated request for an AI rewrite
type GenerationRequest struct {
	UserID             string
	MessageType        string
	MessageDescription string
	Context            ToneContext
	Locale             string
	TargetLanguage     string
}

// GeneratedMessage is the generator's output
type GeneratedMessage struct {
	Message     string
	Explanation string
}

// GenerationResult is a generated message with the balance left after paying for it
type GenerationResult struct {
	Message          *GeneratedMessage
	RemainingCredits int64
}
