package auth

// OAuthIdentity is the profile a provider vouches for after a successful
// code exchange. Only verified emails make it this far.
type OAuthIdentity struct {
	Provider   string
	ProviderID string
	Email      string
	Name       *string
	AvatarURL  *string
}
