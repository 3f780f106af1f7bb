package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-starwars-catalog/models"
)

// Field names as they appear in request bodies.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldIsActive = "is_active"

	FieldName      = "name"
	FieldBirthYear = "birth_year"
	FieldEyeColor  = "eye_color"
	FieldGender    = "gender"
	FieldHairColor = "hair_color"
	FieldHeight    = "height"
	FieldMass      = "mass"
	FieldSkinColor = "skin_color"
	FieldHomeworld = "homeworld"
	FieldURL       = "url"

	FieldClimate        = "climate"
	FieldDiameter       = "diameter"
	FieldGravity        = "gravity"
	FieldOrbitalPeriod  = "orbital_period"
	FieldPopulation     = "population"
	FieldRotationPeriod = "rotation_period"
	FieldSurfaceWater   = "surface_water"
	FieldTerrain        = "terrain"

	FieldUserID   = "user_id"
	FieldPlanetID = "planets_id"
	FieldPeopleID = "people_id"
)

var (
	userFields   = []string{FieldEmail, FieldPassword, FieldIsActive}
	peopleFields = []string{
		FieldName, FieldBirthYear, FieldEyeColor, FieldGender, FieldHairColor,
		FieldHeight, FieldMass, FieldSkinColor, FieldHomeworld, FieldURL,
	}
	planetFields = []string{
		FieldName, FieldClimate, FieldDiameter, FieldGravity, FieldOrbitalPeriod,
		FieldPopulation, FieldRotationPeriod, FieldSurfaceWater, FieldTerrain, FieldURL,
	}
	userIDFields   = []string{FieldUserID}
	favoriteFields = []string{FieldUserID}
)

// RequestValidator checks that decoded request bodies carry every required
// key. A key that is present with a zero value ("" or false) passes.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate implements [Validator]. Without fields, all required fields of
// the request type are checked; otherwise only the named ones.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateUserRequest(value, fields...)
	case *models.CreateUserRequest:
		return v.validateUserRequest(*value, fields...)

	case models.CreatePeopleRequest:
		return v.validatePeopleRequest(value, fields...)
	case *models.CreatePeopleRequest:
		return v.validatePeopleRequest(*value, fields...)

	case models.CreatePlanetRequest:
		return v.validatePlanetRequest(value, fields...)
	case *models.CreatePlanetRequest:
		return v.validatePlanetRequest(*value, fields...)

	case models.UserIDRequest:
		return v.validateUserIDRequest(value, fields...)
	case *models.UserIDRequest:
		return v.validateUserIDRequest(*value, fields...)

	case models.CreateFavoriteRequest:
		return v.validateFavoriteRequest(value, fields...)
	case *models.CreateFavoriteRequest:
		return v.validateFavoriteRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateUserRequest(req models.CreateUserRequest, fields ...string) error {
	return checkPresent(map[string]bool{
		FieldEmail:    req.Email != nil,
		FieldPassword: req.Password != nil,
		FieldIsActive: req.IsActive != nil,
	}, userFields, fields)
}

func (v *RequestValidator) validatePeopleRequest(req models.CreatePeopleRequest, fields ...string) error {
	return checkPresent(map[string]bool{
		FieldName:      req.Name != nil,
		FieldBirthYear: req.BirthYear != nil,
		FieldEyeColor:  req.EyeColor != nil,
		FieldGender:    req.Gender != nil,
		FieldHairColor: req.HairColor != nil,
		FieldHeight:    req.Height != nil,
		FieldMass:      req.Mass != nil,
		FieldSkinColor: req.SkinColor != nil,
		FieldHomeworld: req.Homeworld != nil,
		FieldURL:       req.URL != nil,
	}, peopleFields, fields)
}

func (v *RequestValidator) validatePlanetRequest(req models.CreatePlanetRequest, fields ...string) error {
	return checkPresent(map[string]bool{
		FieldName:           req.Name != nil,
		FieldClimate:        req.Climate != nil,
		FieldDiameter:       req.Diameter != nil,
		FieldGravity:        req.Gravity != nil,
		FieldOrbitalPeriod:  req.OrbitalPeriod != nil,
		FieldPopulation:     req.Population != nil,
		FieldRotationPeriod: req.RotationPeriod != nil,
		FieldSurfaceWater:   req.SurfaceWater != nil,
		FieldTerrain:        req.Terrain != nil,
		FieldURL:            req.URL != nil,
	}, planetFields, fields)
}

func (v *RequestValidator) validateUserIDRequest(req models.UserIDRequest, fields ...string) error {
	if err := checkPresent(map[string]bool{FieldUserID: req.UserID != nil}, userIDFields, fields); err != nil {
		return err
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// validateFavoriteRequest requires user_id and exactly one of planets_id
// and people_id.
func (v *RequestValidator) validateFavoriteRequest(req models.CreateFavoriteRequest, fields ...string) error {
	present := map[string]bool{
		FieldUserID:   req.UserID != nil,
		FieldPlanetID: req.PlanetID != nil,
		FieldPeopleID: req.PeopleID != nil,
	}
	if err := checkPresent(present, favoriteFields, fields); err != nil {
		return err
	}
	if req.UserID != nil && *req.UserID <= 0 {
		return ErrInvalidUserID
	}
	if len(fields) == 0 && present[FieldPlanetID] == present[FieldPeopleID] {
		return fmt.Errorf("%w: exactly one of %s and %s", ErrMissingField, FieldPlanetID, FieldPeopleID)
	}
	return nil
}

// checkPresent returns ErrMissingField for the first field in fields (or
// defaults when fields is empty) that present marks as absent.
func checkPresent(present map[string]bool, defaults, fields []string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		ok, known := present[f]
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	return nil
}
