package feed

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/FallenAngelllll/stellar-burgers/domain"
	"github.com/FallenAngelllll/stellar-burgers/entities"
	"github.com/FallenAngelllll/stellar-burgers/internal/utils/httpclient"
)

type (
	FeedRepository interface {
		FetchFeed(ctx context.Context) (entities.Feed, error)
	}

	feedRepository struct {
		api *httpclient.Client
	}
)

func NewFeedRepository(api *httpclient.Client) FeedRepository {
	return &feedRepository{api: api}
}

func (r *feedRepository) FetchFeed(ctx context.Context) (entities.Feed, error) {
	var res struct {
		Success    bool             `json:"success"`
		Message    string           `json:"message"`
		Orders     []entities.Order `json:"orders"`
		Total      int              `json:"total"`
		TotalToday int              `json:"totalToday"`
	}

	if err := r.api.DoJSON(ctx, http.MethodGet, "/orders/all", "", nil, &res); err != nil {
		return entities.Feed{}, err
	}
	if !res.Success {
		if res.Message != "" {
			return entities.Feed{}, errors.New(res.Message)
		}
		return entities.Feed{}, errors.New(domain.FallbackErrorMessage)
	}

	return entities.Feed{
		Orders:     res.Orders,
		Total:      res.Total,
		TotalToday: res.TotalToday,
	}, nil
}
