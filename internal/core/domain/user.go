package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEngineer = "engineer"
)

const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// User models an authenticated actor. The ID matches the identity
// provider's subject claim; the profile row is upserted on first sign-in.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name,omitempty"`
	AvatarURL          string    `json:"avatar_url,omitempty"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	SubscriptionPlan   string    `json:"subscription_plan"`
	SubscriptionStatus string    `json:"subscription_status"`
	SimulationsUsed    int       `json:"simulations_used"`
	SimulationsLimit   int       `json:"simulations_limit"`
	StripeCustomerID   string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SubscriptionIsActive reports whether the user may admit new runs.
func (u *User) SubscriptionIsActive() bool {
	return u.SubscriptionStatus == SubscriptionActive
}
