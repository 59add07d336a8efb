package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	auth "github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/domain"
)

type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func (r *PgAccountRepository) Create(ctx context.Context, a auth.Account) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgAccountRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO helpdesk.account (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, a.Name, a.Email, a.PasswordHash, a.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgAccountRepository) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	return r.findOne(ctx, `
		SELECT id::text, name, email, password_hash, created_at
		FROM helpdesk.account WHERE email = $1
	`, email)
}

func (r *PgAccountRepository) FindByID(ctx context.Context, id string) (*auth.Account, error) {
	return r.findOne(ctx, `
		SELECT id::text, name, email, password_hash, created_at
		FROM helpdesk.account WHERE id = $1::uuid
	`, id)
}

func (r *PgAccountRepository) findOne(ctx context.Context, query string, arg any) (*auth.Account, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgAccountRepository: nil pool")
	}
	var a auth.Account
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByPageID joins account and page_link. When the same page was linked by
// several accounts over time, the most recent link wins.
func (r *PgAccountRepository) FindByPageID(ctx context.Context, pageID string) (*auth.Account, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgAccountRepository: nil pool")
	}
	var (
		a auth.Account
		l auth.PageLink
	)
	err := r.pool.QueryRow(ctx, `
		SELECT a.id::text, a.name, a.email, a.password_hash, a.created_at,
		       l.account_id::text, l.page_id, l.page_name, l.access_token, l.picture_url, l.connected_at
		FROM helpdesk.page_link l
		JOIN helpdesk.account a ON a.id = l.account_id
		WHERE l.page_id = $1
		ORDER BY l.connected_at DESC
		LIMIT 1
	`, pageID).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt,
		&l.AccountID, &l.PageID, &l.PageName, &l.AccessToken, &l.PictureURL, &l.ConnectedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Page = &l
	return &a, nil
}

func (r *PgAccountRepository) UpsertPageLink(ctx context.Context, link auth.PageLink) error {
	if r == nil || r.pool == nil {
		return errors.New("PgAccountRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO helpdesk.page_link (account_id, page_id, page_name, access_token, picture_url, connected_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id)
		DO UPDATE SET page_id = EXCLUDED.page_id,
		              page_name = EXCLUDED.page_name,
		              access_token = EXCLUDED.access_token,
		              picture_url = EXCLUDED.picture_url,
		              connected_at = EXCLUDED.connected_at
	`, link.AccountID, link.PageID, link.PageName, link.AccessToken, link.PictureURL, link.ConnectedAt)
	return err
}

func (r *PgAccountRepository) GetPageLink(ctx context.Context, accountID string) (*auth.PageLink, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgAccountRepository: nil pool")
	}
	var l auth.PageLink
	err := r.pool.QueryRow(ctx, `
		SELECT account_id::text, page_id, page_name, access_token, picture_url, connected_at
		FROM helpdesk.page_link WHERE account_id = $1::uuid
	`, accountID).Scan(&l.AccountID, &l.PageID, &l.PageName, &l.AccessToken, &l.PictureURL, &l.ConnectedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgAccountRepository) DeletePageLink(ctx context.Context, accountID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgAccountRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM helpdesk.page_link WHERE account_id = $1::uuid`, accountID)
	return err
}
