// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Planet is a Star Wars planet. Like People, numeric-looking attributes are
// stored as text because the upstream catalog mixes numbers and "unknown".
type Planet struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Diameter       string `json:"diameter"`
	Gravity        string `json:"gravity"`
	OrbitalPeriod  string `json:"orbital_period"`
	Population     string `json:"population"`
	RotationPeriod string `json:"rotation_period"`
	SurfaceWater   string `json:"surface_water"`
	Terrain        string `json:"terrain"`
	URL            string `json:"url"`
}

// TableName returns the name of the database table
// associated with the Planet model.
func (p Planet) TableName() string {
	return "planets"
}

// Serialize returns the key-value representation of the planet.
func (p Planet) Serialize() map[string]any {
	return map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"climate":         p.Climate,
		"diameter":        p.Diameter,
		"gravity":         p.Gravity,
		"orbital_period":  p.OrbitalPeriod,
		"population":      p.Population,
		"rotation_period": p.RotationPeriod,
		"surface_water":   p.SurfaceWater,
		"terrain":         p.Terrain,
		"url":             p.URL,
	}
}
