package port

import "context"

// Profile is the public identity of an external correspondent.
type Profile struct {
	Name       string
	PictureURL string
}

// Gateway is the outbound contract to the messaging platform's Graph API.
// FetchProfile is best-effort: callers must tolerate failure. SendMessage and
// SubscribePage act on behalf of a linked page using its access token.
type Gateway interface {
	FetchProfile(ctx context.Context, userID, accessToken string) (Profile, error)
	SendMessage(ctx context.Context, pageID, recipientID, text, accessToken string) error
	SubscribePage(ctx context.Context, pageID, accessToken string) error
}
