package auth

// OAuthIdentity is the normalized profile a provider verifier returns after
// exchanging an authorization code. The auth service upserts users from it; Name
// and AvatarURL stay nil when the provider does not expose them.
type OAuthIdentity struct {
	Email      string
	Name       *string
	AvatarURL  *string
	ProviderID string
}
