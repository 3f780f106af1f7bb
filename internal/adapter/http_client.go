package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

// maxPages bounds pagination in case an upstream keeps returning a next link.
const maxPages = 1000

// page is one response of a SWAPI list endpoint.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// fetchAll follows the next links of a SWAPI list starting at path until the
// list ends or limit records have been collected.
func fetchAll[T any](ctx context.Context, a *swapiAdapter, path string, limit int) ([]T, error) {
	log := logger.FromContext(ctx)

	var (
		records []T
		url     = path
	)
	for n := 0; n < maxPages; n++ {
		var p page[T]

		resp, err := a.client.R().
			SetContext(ctx).
			SetHeader("Accept", "application/json").
			Get(url)
		if err != nil {
			log.Err(err).Str("func", "fetchAll").Str("url", url).Msg("SWAPI request failed")
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
		if err = mapHTTPError(resp); err != nil {
			log.Err(err).Str("func", "fetchAll").Str("url", url).Msg("SWAPI returned an error")
			return nil, err
		}
		if err = json.Unmarshal(resp.Body(), &p); err != nil {
			log.Err(err).Str("func", "fetchAll").Str("url", url).Msg("error decoding SWAPI page")
			return nil, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, url, err)
		}

		records = append(records, p.Results...)
		log.Debug().Str("url", url).Int("fetched", len(records)).Int("count", p.Count).Msg("SWAPI page fetched")

		if limit > 0 && len(records) >= limit {
			return records[:limit], nil
		}
		if p.Next == nil || *p.Next == "" {
			return records, nil
		}
		url = *p.Next
	}

	return records, nil
}
