// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// People is a Star Wars character. Every descriptive attribute is kept as
// free text, the way SWAPI publishes them ("172", "unknown", "19BBY").
type People struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthYear string `json:"birth_year"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	HairColor string `json:"hair_color"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	SkinColor string `json:"skin_color"`

	// Homeworld is a free-text reference (usually a SWAPI planet URL),
	// not a foreign key to planets.
	Homeworld string `json:"homeworld"`
	URL       string `json:"url"`
}

// TableName returns the name of the database table
// associated with the People model.
func (p People) TableName() string {
	return "people"
}

// Serialize returns the key-value representation of the person.
func (p People) Serialize() map[string]any {
	return map[string]any{
		"id":         p.ID,
		"name":       p.Name,
		"birth_year": p.BirthYear,
		"eye_color":  p.EyeColor,
		"gender":     p.Gender,
		"hair_color": p.HairColor,
		"height":     p.Height,
		"mass":       p.Mass,
		"skin_color": p.SkinColor,
		"homeworld":  p.Homeworld,
		"url":        p.URL,
	}
}
