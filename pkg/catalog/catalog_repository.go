package catalog

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/httpclient"
)

type (
	CatalogRepository interface {
		FetchIngredients(ctx context.Context) ([]entities.Ingredient, error)
	}

	catalogRepository struct {
		api *httpclient.Client
	}
)

func NewCatalogRepository(api *httpclient.Client) CatalogRepository {
	return &catalogRepository{api: api}
}

func (r *catalogRepository) FetchIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	var res struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    []entities.Ingredient `json:"data"`
	}

	if err := r.api.DoJSON(ctx, http.MethodGet, "/ingredients", "", nil, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		if res.Message != "" {
			return nil, errors.New(res.Message)
		}
		return nil, errors.New(domain.FallbackErrorMessage)
	}
	return res.Data, nil
}
