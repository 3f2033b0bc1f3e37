package domain

// Parent is a registered user of the community. The ID is the external
// sign-in subject, not a generated surrogate key.
type Parent struct {
	ID           string
	Email        string
	Nickname     string
	PasswordHash *string // nil for provider-based sign-in
	SignInMethod string
	PhotoRef     *string
	Description  *string
}
