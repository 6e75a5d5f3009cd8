package models

import (
	"time"

	"github.com/google/uuid"
)

// Token kinds embedded in the `token_type` claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// BlacklistedToken is a revoked token, keyed by its JTI claim. Rows are
// written only by the logout / revocation flow, never mutated, and
// become garbage once `ExpiresAt` passes, since an expired token fails
// validation on its own.
type BlacklistedToken struct {
	ID            uuid.UUID `json:"id"`
	TokenID       string    `json:"token_id"`   // JTI (JWT ID) claim from the token
	TokenType     string    `json:"token_type"` // access | refresh
	UserID        uuid.UUID `json:"user_id"`
	BlacklistedAt time.Time `json:"blacklisted_at"`
	ExpiresAt     time.Time `json:"expires_at"` // the token's own exp claim
	Reason        string    `json:"reason,omitempty"`
}
