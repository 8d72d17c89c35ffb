package domain

// AuthUser is the identity of the currently signed-in user as observed from
// the auth provider. A nil *AuthUser anywhere in the app means "anonymous".
type AuthUser struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}
