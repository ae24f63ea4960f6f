package contracts

import (
	"annuaire-service/internal/pkg/dto/requests"
	"annuaire-service/internal/pkg/dto/responses"
	"context"
)

type SearchUsecase interface {
	Search(ctx context.Context, request *requests.SearchPractitioners) (*responses.SearchEnvelope, error)
}
