package service

import (
	"context"
)

type UserService interface {
	// GetUsers returns the users eligible as team members, with only the
	// requested fields set. No fields means all fields.
	GetUsers(ctx context.Context, fields []string) ([]DirectoryUser, error)
}

// UserDirectoryAPI reads the raw user directory export.
type UserDirectoryAPI interface {
	ListUsers(ctx context.Context) ([]DirectoryEntry, error)
}

// DirectoryEntry is a row from the user directory export.
type DirectoryEntry struct {
	DisplayName       string
	UserPrincipalName string
	Mail              string
}

const (
	UserFieldName       = "name"
	UserFieldEmail      = "email"
	UserFieldEmailShort = "email_short"
)

// AllUserFields in the order they are written.
var AllUserFields = []string{UserFieldName, UserFieldEmail, UserFieldEmailShort}

// DirectoryUser is a user as returned by the users endpoint, fields that were
// not requested are nil.
type DirectoryUser struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	EmailShort *string `json:"email_short,omitempty"`
}
