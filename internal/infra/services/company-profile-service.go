package services

import (
	"context"
	"fmt"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/entities"
	"training-chatbot/internal/domain/interfaces/repository"
	"training-chatbot/internal/infra/logger"
)

type CompanyProfileService struct {
	CompanyProfileRepository repository.CompanyProfileRepository
	Logger                   *logger.Logger
}

func NewCompanyProfileService(companyProfileRepository repository.CompanyProfileRepository, logger *logger.Logger) *CompanyProfileService {
	return &CompanyProfileService{
		CompanyProfileRepository: companyProfileRepository,
		Logger:                   logger,
	}
}

func (cs *CompanyProfileService) Get(ctx context.Context) (entities.CompanyProfile, error) {
	profile, err := cs.CompanyProfileRepository.FindCompanyProfile(ctx)
	if err != nil {
		logger.FromContext(ctx, cs.Logger).Error(fmt.Sprintf("Failed to load company profile: %v", err))
		return entities.CompanyProfile{}, apperrors.StoreUnavailable("load company profile", err)
	}
	return profile, nil
}

func (cs *CompanyProfileService) Update(ctx context.Context, profile entities.CompanyProfile) error {
	if err := cs.CompanyProfileRepository.SaveCompanyProfile(ctx, profile); err != nil {
		logger.FromContext(ctx, cs.Logger).Error(fmt.Sprintf("Failed to save company profile: %v", err))
		return apperrors.StoreUnavailable("save company profile", err)
	}
	return nil
}
