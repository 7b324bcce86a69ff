// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is a single secret stored in the vault.
//
// OwnerID is stamped once at creation and never reassigned. Website, Username
// and Password are required when the record is created; Notes defaults to an
// empty string.
type Credential struct {
	// ID is a UUIDv7 assigned by the store. UUIDv7 ids sort by creation time.
	ID string `json:"id"`

	// OwnerID is the identifier of the user who created the record.
	OwnerID int64 `json:"owner"`

	// Website is the service label the secret belongs to (e.g. "github.com").
	Website string `json:"website"`

	// Username is the login identifier used on Website.
	Username string `json:"username"`

	// Password is the secret value. It is stored verbatim.
	Password string `json:"password"`

	// Notes is optional free text.
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Version is a revision counter incremented on every write. It guards
	// read-check-write sequences against concurrent modification.
	Version int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialInput carries the mutable fields of a [Credential]. It is the
// payload of both create and update; update replaces all four fields.
type CredentialInput struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}
