package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-starwars-catalog/internal/admin"
	"github.com/MKhiriev/go-starwars-catalog/internal/app"
	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
	"github.com/MKhiriev/go-starwars-catalog/internal/service"
	"github.com/MKhiriev/go-starwars-catalog/internal/store"
	"github.com/MKhiriev/go-starwars-catalog/internal/utils"
	"github.com/MKhiriev/go-starwars-catalog/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:        http.StatusBadRequest,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	utils.ErrEmptyBody:  http.StatusBadRequest,

	validators.ErrMissingField:  http.StatusBadRequest,
	validators.ErrInvalidUserID: http.StatusBadRequest,

	admin.ErrUnknownEntity: http.StatusNotFound,
	admin.ErrInvalidBody:   http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnknownFavoriteKind: http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrPeopleNotFound:        http.StatusNotFound,
	store.ErrPlanetNotFound:        http.StatusNotFound,
	store.ErrFavoriteNotFound:      http.StatusNotFound,
	store.ErrFavoriteAlreadyExists: http.StatusBadRequest,
	store.ErrReferenceNotFound:     http.StatusNotFound,
	store.ErrConstraintViolation:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the client message of a sentinel. Client errors
// without an entry report the error text itself.
var errorMessageMap = map[error]string{
	ErrInvalidID:        app.MsgInvalidID,
	ErrInvalidJSON:      app.MsgInvalidJSON,
	ErrRouteNotFound:    app.MsgNotFound,
	ErrMethodNotAllowed: app.MsgMethodNotAllowed,
	utils.ErrEmptyBody:  app.MsgEmptyBody,

	admin.ErrUnknownEntity: app.MsgUnknownEntity,
	admin.ErrInvalidBody:   app.MsgInvalidJSON,

	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,

	store.ErrEmailAlreadyExists:  app.MsgEmailAlreadyExists,
	store.ErrUserNotFound:        app.MsgUserNotFound,
	store.ErrPeopleNotFound:      app.MsgPersonNotFound,
	store.ErrPlanetNotFound:      app.MsgPlanetNotFound,
	store.ErrFavoriteNotFound:    app.MsgFavoriteNotFound,
	store.ErrReferenceNotFound:   app.MsgReferenceNotFound,
	store.ErrConstraintViolation: app.MsgConstraintViolation,
}

func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// toAPIError resolves err into the error reported to the client. An
// *service.APIError in the chain is used as is.
func toAPIError(err error) *service.APIError {
	var apiErr *service.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError {
		return service.NewAPIError(app.MsgInternalServerError, status).Wrap(err)
	}

	msg, ok := errorMessageMap[target]
	if !ok {
		msg = err.Error()
	}
	return service.NewAPIError(msg, status).Wrap(err)
}

// writeError writes err as {"message": ..., "status_code": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(err)

	log := logger.FromRequest(r)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", apiErr.StatusCode).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", apiErr.StatusCode).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, apiErr.ToMap(), apiErr.StatusCode); werr != nil {
		log.Err(werr).Str("func", "writeError").Msg("error writing error response")
	}
}
