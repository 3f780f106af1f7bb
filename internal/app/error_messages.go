// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// catalog HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of JSON responses. Keeping them in one place keeps the wording of the
// API consistent.
package app

const (
	// MsgInvalidJSON is returned when a request body is not valid JSON or a
	// value has the wrong type.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmptyBody is returned when an endpoint that needs a JSON body gets
	// none.
	MsgEmptyBody = "Request body is empty"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "Invalid id"

	// MsgInvalidDataProvided is returned when a body decodes but its values
	// are unusable (e.g. an empty email).
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInternalServerError is returned for any failure the client cannot
	// resolve.
	MsgInternalServerError = "Internal server error"

	// MsgNotFound is returned for unknown paths.
	MsgNotFound = "Not found"

	// MsgMethodNotAllowed is returned when the path exists but not for the
	// requested method.
	MsgMethodNotAllowed = "Method not allowed"

	MsgUserNotFound     = "User not found"
	MsgPersonNotFound   = "Person not found"
	MsgPlanetNotFound   = "Planet not found"
	MsgFavoriteNotFound = "Favorite not found"

	// MsgEmailAlreadyExists is returned when POST /users reuses an email.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgReferenceNotFound is returned when a favorite points to a user,
	// planet or person that does not exist.
	MsgReferenceNotFound = "Referenced record does not exist"

	// MsgConstraintViolation is returned when a record breaks a table rule
	// the request validation did not catch.
	MsgConstraintViolation = "Record violates a table constraint"

	// MsgUnknownEntity is returned by the admin panel for an entity name
	// that is not registered.
	MsgUnknownEntity = "Unknown admin entity"

	// MsgPersonDeleted and MsgPlanetDeleted are fmt formats taking the id;
	// MsgRecordDeleted takes the admin entity name and the id.
	MsgPersonDeleted = "Person with id %d has been deleted."
	MsgPlanetDeleted = "Planet with id %d has been deleted."
	MsgRecordDeleted = "Record of %s with id %d has been deleted."
)
