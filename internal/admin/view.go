package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
	"github.com/MKhiriev/go-starwars-catalog/internal/validators"
	"github.com/MKhiriev/go-starwars-catalog/models"
)

// ViewFuncs are the operations a view delegates to. T is the stored model
// and R the request body Create decodes.
type ViewFuncs[T models.Serializer, R any] struct {
	List   func(ctx context.Context) ([]T, error)
	Get    func(ctx context.Context, id int64) (T, error)
	Create func(ctx context.Context, req R) (T, error)
	Delete func(ctx context.Context, id int64) error
}

type view[T models.Serializer, R any] struct {
	name      string
	funcs     ViewFuncs[T, R]
	validator validators.Validator
}

// NewView returns a ModelView named name. Decoded create requests are
// checked by validator before funcs.Create runs; a nil validator skips
// the check.
func NewView[T models.Serializer, R any](name string, funcs ViewFuncs[T, R], validator validators.Validator) ModelView {
	return &view[T, R]{name: name, funcs: funcs, validator: validator}
}

func (v *view[T, R]) Name() string {
	return v.name
}

func (v *view[T, R]) List(ctx context.Context) ([]map[string]any, error) {
	records, err := v.funcs.List(ctx)
	if err != nil {
		return nil, err
	}

	return models.SerializeAll(records), nil
}

func (v *view[T, R]) Get(ctx context.Context, id int64) (map[string]any, error) {
	rec, err := v.funcs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.Serialize(), nil
}

func (v *view[T, R]) Create(ctx context.Context, body io.Reader) (map[string]any, error) {
	var req R
	if err := utils.DecodeJSON(body, &req); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if v.validator != nil {
		if err := v.validator.Validate(ctx, req); err != nil {
			return nil, err
		}
	}

	rec, err := v.funcs.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return rec.Serialize(), nil
}

func (v *view[T, R]) Delete(ctx context.Context, id int64) error {
	return v.funcs.Delete(ctx, id)
}
