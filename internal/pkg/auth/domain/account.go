package auth

import (
	"errors"
	"strings"
	"time"
)

// Account is an operator identity. Each account may link at most one
// Facebook page; re-linking overwrites the previous link.
type Account struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`

	// Page is populated on lookups that need the outbound credential
	// (inbound routing, reply delivery). Nil when no page is linked.
	Page *PageLink
}

// PageLink holds the linked page's identity and outbound credential. The
// PageID is the join key used to route inbound webhook events to the account.
type PageLink struct {
	AccountID   string    `db:"account_id"`
	PageID      string    `db:"page_id"`
	PageName    string    `db:"page_name"`
	AccessToken string    `db:"access_token"`
	PictureURL  string    `db:"picture_url"`
	ConnectedAt time.Time `db:"connected_at"`
}

// NewAccount validates a registration candidate. Password hashing happens in
// the use case; the domain only sees the hash.
func NewAccount(a Account) (*Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Name == "" || a.Email == "" || a.PasswordHash == "" {
		return nil, errors.New("name, email and password are required")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return &a, nil
}

// CanSend reports whether the account holds a usable outbound credential.
func (a *Account) CanSend() bool {
	return a != nil && a.Page != nil && a.Page.AccessToken != ""
}
