package domain

// Speaker identifies who authored a turn in a conversation.
type Speaker string

// Speakers understood by the hosted model.
const (
	SpeakerUser  Speaker = "user"
	SpeakerModel Speaker = "model"
)

// RoleAI is the role the web client uses for model-authored messages.
const RoleAI = "ai"

// ChatTurn is a single entry of a conversation history.
type ChatTurn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ChatReply is the result of a conversational generation call.
type ChatReply struct {
	Text string `json:"text"`
}

// SpeakerFromRole maps an application-level role to a model speaker.
// Only RoleAI maps to SpeakerModel; every other role is the user.
func SpeakerFromRole(role string) Speaker {
	if role == RoleAI {
		return SpeakerModel
	}
	return SpeakerUser
}
