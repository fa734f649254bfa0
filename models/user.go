// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the password-free view of an account. It is the only user value
// that leaves the storage layer, so it is safe to log and serialize.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userId"`

	// Username is the unique login name chosen at registration.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the storage-level account record. It carries the bcrypt
// hash of the password and is only ever produced by the user repository.
type Credentials struct {
	UserID    int64
	Username  string
	CreatedAt time.Time

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`
}

// User strips the password hash and returns the public view of the account.
func (c Credentials) User() User {
	return User{
		UserID:    c.UserID,
		Username:  c.Username,
		CreatedAt: c.CreatedAt,
	}
}

// UserCredentialsInput is the request body of /auth/register and /auth/login.
type UserCredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
