package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-starwars-catalog/internal/config"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

type swapiAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewSWAPIAdapter constructs the HTTP implementation of [SWAPIAdapter].
// It normalises and validates the base URL from cfg.SWAPIURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error wrapping [ErrInvalidBaseURL] if cfg.SWAPIURL is empty or
// cannot be parsed as a valid URL.
func NewSWAPIAdapter(cfg config.Adapter, logger *logger.Logger) (SWAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.SWAPIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("creating SWAPI adapter")
	return &swapiAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPeople implements [SWAPIAdapter] by walking GET /people/.
func (a *swapiAdapter) FetchPeople(ctx context.Context, limit int) ([]models.People, error) {
	people, err := fetchAll[models.People](ctx, a, "/people/", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch people: %w", err)
	}
	return people, nil
}

// FetchPlanets implements [SWAPIAdapter] by walking GET /planets/.
func (a *swapiAdapter) FetchPlanets(ctx context.Context, limit int) ([]models.Planet, error) {
	planets, err := fetchAll[models.Planet](ctx, a, "/planets/", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch planets: %w", err)
	}
	return planets, nil
}
