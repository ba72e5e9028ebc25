package entities

// AgentLevel is the difficulty of questions asked by the simulated customer.
type AgentLevel int

const (
	AgentLevelUnrecognized AgentLevel = iota
	AgentLevelBeginner
	AgentLevelIntermediate
	AgentLevelAdvanced
)

// Tone is the attitude of the simulated customer.
type Tone int

const (
	ToneUnrecognized Tone = iota
	ToneFriendly
	ToneProfessional
	ToneCasual
	ToneNotSoFriendly
)

const (
	DefaultAgentLevel = "Beginner"
	DefaultTone       = "Friendly"
	DefaultLanguage   = "en"
)

// ParseAgentLevel never fails: unknown values map to AgentLevelUnrecognized.
func ParseAgentLevel(s string) AgentLevel {
	switch s {
	case "Beginner":
		return AgentLevelBeginner
	case "Intermediate":
		return AgentLevelIntermediate
	case "Advanced":
		return AgentLevelAdvanced
	default:
		return AgentLevelUnrecognized
	}
}

// ParseTone never fails: unknown values map to ToneUnrecognized.
func ParseTone(s string) Tone {
	switch s {
	case "Friendly":
		return ToneFriendly
	case "Professional":
		return ToneProfessional
	case "Casual":
		return ToneCasual
	case "Not So Friendly":
		return ToneNotSoFriendly
	default:
		return ToneUnrecognized
	}
}

// PersonaConfig shapes the simulated customer in interviewer mode. It is
// supplied per request and never persisted.
type PersonaConfig struct {
	AgentLevel AgentLevel
	Tone       Tone
	Language   string
}

// DefaultPersonaConfig is the configuration used when a request omits every field.
func DefaultPersonaConfig() PersonaConfig {
	return PersonaConfig{
		AgentLevel: ParseAgentLevel(DefaultAgentLevel),
		Tone:       ParseTone(DefaultTone),
		Language:   DefaultLanguage,
	}
}
