package models

// CreateUserRequest is the body of POST /users.
// Pointer fields distinguish a missing key from a zero value.
type CreateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

// CreatePeopleRequest is the body of POST /people.
// An "id" key in the body is ignored: ids are always generated by the database.
type CreatePeopleRequest struct {
	Name      *string `json:"name"`
	BirthYear *string `json:"birth_year"`
	EyeColor  *string `json:"eye_color"`
	Gender    *string `json:"gender"`
	HairColor *string `json:"hair_color"`
	Height    *string `json:"height"`
	Mass      *string `json:"mass"`
	SkinColor *string `json:"skin_color"`
	Homeworld *string `json:"homeworld"`
	URL       *string `json:"url"`
}

// CreatePlanetRequest is the body accepted by the admin panel for planets.
type CreatePlanetRequest struct {
	Name           *string `json:"name"`
	Climate        *string `json:"climate"`
	Diameter       *string `json:"diameter"`
	Gravity        *string `json:"gravity"`
	OrbitalPeriod  *string `json:"orbital_period"`
	Population     *string `json:"population"`
	RotationPeriod *string `json:"rotation_period"`
	SurfaceWater   *string `json:"surface_water"`
	Terrain        *string `json:"terrain"`
	URL            *string `json:"url"`
}

// UserIDRequest carries the user a favorites operation acts on.
type UserIDRequest struct {
	UserID *int64 `json:"user_id"`
}

// CreateFavoriteRequest is the body accepted by the admin panel for favorites.
type CreateFavoriteRequest struct {
	UserID   *int64 `json:"user_id"`
	PlanetID *int64 `json:"planets_id"`
	PeopleID *int64 `json:"people_id"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToUser converts a validated request into an unsaved user with a plain
// password.
func (r CreateUserRequest) ToUser() User {
	return User{
		Email:    deref(r.Email),
		Password: deref(r.Password),
		IsActive: deref(r.IsActive),
	}
}

// ToPeople converts a validated request into an unsaved person.
func (r CreatePeopleRequest) ToPeople() People {
	return People{
		Name:      deref(r.Name),
		BirthYear: deref(r.BirthYear),
		EyeColor:  deref(r.EyeColor),
		Gender:    deref(r.Gender),
		HairColor: deref(r.HairColor),
		Height:    deref(r.Height),
		Mass:      deref(r.Mass),
		SkinColor: deref(r.SkinColor),
		Homeworld: deref(r.Homeworld),
		URL:       deref(r.URL),
	}
}

// ToPlanet converts a validated request into an unsaved planet.
func (r CreatePlanetRequest) ToPlanet() Planet {
	return Planet{
		Name:           deref(r.Name),
		Climate:        deref(r.Climate),
		Diameter:       deref(r.Diameter),
		Gravity:        deref(r.Gravity),
		OrbitalPeriod:  deref(r.OrbitalPeriod),
		Population:     deref(r.Population),
		RotationPeriod: deref(r.RotationPeriod),
		SurfaceWater:   deref(r.SurfaceWater),
		Terrain:        deref(r.Terrain),
		URL:            deref(r.URL),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
