package Iservices

import "training-chatbot/internal/domain/entities"

type IPersonaConfigurator interface {
	BuildSystemPrompt(config entities.PersonaConfig, companyDetails string) string
}
