package auth

// ProviderIdentity is the account identity returned by an OAuth provider
// after a successful code exchange.
type ProviderIdentity struct {
	ProviderID string
	Email      string
	Nickname   *string
	PhotoURL   *string
}
