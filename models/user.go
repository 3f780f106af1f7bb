// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account of the catalog.
//
// Password holds the stored credential and is never part of Serialize output.
type User struct {
	// ID is assigned by the database on insert.
	ID int64 `json:"id"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Password is the bcrypt hash once the user has been persisted.
	Password string `json:"-"`

	// IsActive marks whether the account is enabled.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Serialize returns the public key-value representation of the user.
func (u User) Serialize() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"is_active": u.IsActive,
	}
}
