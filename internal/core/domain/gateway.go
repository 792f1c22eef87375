package domain

import (
	"strings"
	"time"
)

// GatewayConfig stores the settings for a payment gateway. Configs are stored
// and surfaced to the admin UI; the payment protocol itself is never executed
// by this service.
type GatewayConfig struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Provider       string    `json:"provider" bson:"provider"`
	Label          string    `json:"label" bson:"label"`
	PublishableKey string    `json:"publishable_key" bson:"publishable_key"`
	SecretKey      string    `json:"-" bson:"secret_key"`
	Fund           string    `json:"fund,omitempty" bson:"fund,omitempty"`
	Active         bool      `json:"active" bson:"active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// MaskedSecret returns the secret key reduced to its last four characters,
// suitable for display. Full secret material never leaves the service.
func (g *GatewayConfig) MaskedSecret() string {
	if g.SecretKey == "" {
		return ""
	}
	if len(g.SecretKey) <= 4 {
		return strings.Repeat("*", len(g.SecretKey))
	}
	return strings.Repeat("*", len(g.SecretKey)-4) + g.SecretKey[len(g.SecretKey)-4:]
}
