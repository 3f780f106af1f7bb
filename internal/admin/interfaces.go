package admin

import (
	"context"
	"io"
)

// ModelView is one entity of the admin panel.
type ModelView interface {
	Name() string
	List(ctx context.Context) ([]map[string]any, error)
	Get(ctx context.Context, id int64) (map[string]any, error)
	// Create decodes a JSON body and stores the record it describes.
	Create(ctx context.Context, body io.Reader) (map[string]any, error)
	Delete(ctx context.Context, id int64) error
}
