// Package persona turns a PersonaConfig into the system prompt that casts the
// generative backend as a simulated customer.
package persona

import (
	"fmt"

	"training-chatbot/internal/domain/entities"
)

const (
	complexityBeginner     = "Keep the questions simple and straightforward."
	complexityIntermediate = "Ask moderate difficulty questions, testing common problem-solving scenarios."
	complexityAdvanced     = "Ask complex, tricky customer situations that require deep policy knowledge."
	complexityFallback     = "Keep it realistic and engaging."

	toneFriendly      = "Be a warm and polite customer."
	toneProfessional  = "Be a formal, business-like customer."
	toneCasual        = "Be a relaxed, everyday customer."
	toneNotSoFriendly = "Be a direct, difficult, and slightly impatient customer."
	toneFallback      = "Be a neutral customer."

	promptTemplate = "%s %s You are a customer asking about %s. Your goal is to ask a question that a customer service agent would need to answer. Speak as if you're the customer."
)

// Configurator builds persona prompts. The zero value is ready to use.
type Configurator struct{}

func NewConfigurator() *Configurator {
	return &Configurator{}
}

// ComplexityInstruction maps an agent level to its instruction.
func (Configurator) ComplexityInstruction(level entities.AgentLevel) string {
	switch level {
	case entities.AgentLevelBeginner:
		return complexityBeginner
	case entities.AgentLevelIntermediate:
		return complexityIntermediate
	case entities.AgentLevelAdvanced:
		return complexityAdvanced
	default:
		return complexityFallback
	}
}

// ToneInstruction maps a tone to its instruction.
func (Configurator) ToneInstruction(tone entities.Tone) string {
	switch tone {
	case entities.ToneFriendly:
		return toneFriendly
	case entities.ToneProfessional:
		return toneProfessional
	case entities.ToneCasual:
		return toneCasual
	case entities.ToneNotSoFriendly:
		return toneNotSoFriendly
	default:
		return toneFallback
	}
}

// BuildSystemPrompt assembles the full system prompt for one interviewer turn.
// config.Language is carried on the request but does not affect the prompt.
func (c Configurator) BuildSystemPrompt(config entities.PersonaConfig, companyDetails string) string {
	return fmt.Sprintf(promptTemplate,
		c.ToneInstruction(config.Tone),
		c.ComplexityInstruction(config.AgentLevel),
		companyDetails,
	)
}
