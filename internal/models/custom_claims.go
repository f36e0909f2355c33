package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TenantClaims are the claims carried by bearer tokens on the categorization API.
// The subject is the user id.
type TenantClaims struct {
	jwt.RegisteredClaims
	TenantID string `json:"tenant_id"`
	Role     string `json:"role,omitempty"`
}

// TenantUUID parses the tenant claim.
func (c *TenantClaims) TenantUUID() (uuid.UUID, error) {
	return uuid.Parse(c.TenantID)
}

// UserUUID parses the subject claim.
func (c *TenantClaims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
