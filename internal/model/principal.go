package model

import "github.com/google/uuid"

// Principal is the authenticated caller resolved from the access token.
type Principal struct {
	UserID uuid.UUID
	Role   string
}
