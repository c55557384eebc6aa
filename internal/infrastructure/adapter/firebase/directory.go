package firebase

import (
	"context"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"
)

var _ external.IdentityDirectory = (*Directory)(nil)

// Firebase caps a user listing page at 1000 records
const maxPageSize = 1000

// userAdmin is the subset of *auth.Client used by the retention sweep
type userAdmin interface {
	Users(ctx context.Context, nextPageToken string) *auth.UserIterator
	DeleteUser(ctx context.Context, uid string) error
}

// Directory pages through and deletes Firebase users
type Directory struct {
	client userAdmin
}

// NewDirectory creates a directory backed by the auth client
func NewDirectory(client userAdmin) *Directory {
	return &Directory{client: client}
}

// ListIdentities returns one page of users and the next page token
func (d *Directory) ListIdentities(ctx context.Context, pageToken string, pageSize int) ([]entity.IdentityRecord, string, error) {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var users []*auth.ExportedUserRecord
	pager := iterator.NewPager(d.client.Users(ctx, ""), pageSize, pageToken)
	next, err := pager.NextPage(&users)
	if err != nil {
		return nil, "", err
	}

	records := make([]entity.IdentityRecord, 0, len(users))
	for _, u := range users {
		if u == nil || u.UserRecord == nil || u.UserInfo == nil {
			continue
		}
		records = append(records, toRecord(u.UserRecord))
	}
	return records, next, nil
}

// DeleteIdentity removes the user, treating an already deleted user as success
func (d *Directory) DeleteIdentity(ctx context.Context, userID string) error {
	if err := d.client.DeleteUser(ctx, userID); err != nil && !auth.IsUserNotFound(err) {
		return err
	}
	return nil
}

func toRecord(u *auth.UserRecord) entity.IdentityRecord {
	providers := make([]string, 0, len(u.ProviderUserInfo))
	for _, p := range u.ProviderUserInfo {
		if p != nil {
			providers = append(providers, p.ProviderID)
		}
	}

	var created time.Time
	if u.UserMetadata != nil {
		created = time.UnixMilli(u.UserMetadata.CreationTimestamp).UTC()
	}

	record := entity.IdentityRecord{
		ProviderIDs: providers,
		CreatedAt:   created,
	}
	if u.UserInfo != nil {
		record.UserID = u.UID
		record.Email = u.Email
	}
	return record
}
