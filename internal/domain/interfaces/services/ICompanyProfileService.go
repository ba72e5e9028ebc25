package Iservices

import (
	"context"

	"training-chatbot/internal/domain/entities"
)

type ICompanyProfileService interface {
	Get(ctx context.Context) (entities.CompanyProfile, error)
	Update(ctx context.Context, profile entities.CompanyProfile) error
}
