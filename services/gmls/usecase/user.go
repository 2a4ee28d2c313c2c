package usecase

import (
	"context"
	"fmt"
	"time"

	"gmls/domain"
	"gmls/services/gmls/mapper"
)

type userUC struct {
	userRepo domain.UserRepo
	remote   domain.RemoteStore
	auth     domain.AuthService
	TimeOut  time.Duration
}

func NewUserUseCase(repo domain.UserRepo, remote domain.RemoteStore, auth domain.AuthService, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo: repo,
		remote:   remote,
		auth:     auth,
		TimeOut:  timeOut,
	}
}

// SyncProfile pulls the authoritative document for the signed-in user,
// coerces it into the domain form and replaces the local cache in one
// transaction. A malformed document never fails the sync; a remote or
// store failure does, so the caller can decide between retrying and
// serving the stale cache.
func (u *userUC) SyncProfile(ctx context.Context) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	uid, err := u.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := u.remote.Get(ctx, domain.CollectionUsers, uid)
	if err != nil {
		return nil, fmt.Errorf("could not fetch remote profile: %v", err)
	}

	user := mapper.UserFromDocument(uid, doc)

	profile := mapper.UserToProfileRow(user)
	rows := mapper.MembersToRows(uid, user.HouseholdMembers)

	// generated member identifiers stay stable across later edits
	for i := range rows {
		user.HouseholdMembers[i].ID = rows[i].MemberID
	}

	if err := u.userRepo.SaveUserWithHouseholdMembers(ctx, profile, rows); err != nil {
		return nil, err
	}

	user.FamilyMemberCount = len(rows)
	return user, nil
}

// SaveProfile persists a locally edited user: relational cache first, then
// the remote document.
func (u *userUC) SaveProfile(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	profile := mapper.UserToProfileRow(user)
	rows := mapper.MembersToRows(user.UID, user.HouseholdMembers)

	for i := range rows {
		user.HouseholdMembers[i].ID = rows[i].MemberID
	}

	if err := u.userRepo.SaveUserWithHouseholdMembers(ctx, profile, rows); err != nil {
		return err
	}

	user.FamilyMemberCount = len(rows)

	if err := u.remote.Set(ctx, domain.CollectionUsers, user.UID, mapper.UserToDocument(user)); err != nil {
		return fmt.Errorf("could not push profile to remote: %v", err)
	}

	return nil
}

func (u *userUC) GetUser(ctx context.Context) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	uid, err := u.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	join, err := u.userRepo.GetUserWithHouseholdMembers(ctx, uid)
	if err != nil {
		return nil, err
	}

	return mapper.UserFromJoin(join), nil
}

func (u *userUC) WatchUser(ctx context.Context) (<-chan *domain.User, error) {
	uid, err := u.auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	joins, err := u.userRepo.WatchUserWithHouseholdMembers(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make(chan *domain.User, 1)
	go func() {
		defer close(out)
		for join := range joins {
			var user *domain.User
			if join != nil {
				user = mapper.UserFromJoin(join)
			}

			select {
			case out <- user:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// UpdatePushToken persists a delivery token string on the remote document.
// Token refresh and delivery are the messaging collaborator's concern.
func (u *userUC) UpdatePushToken(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	uid, err := u.auth.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	err = u.remote.Update(ctx, domain.CollectionUsers, uid, domain.Document{"fcmToken": token})
	if err != nil {
		return fmt.Errorf("could not update push token: %v", err)
	}

	return nil
}

// Logout drops the cached profile; the cascade rule removes the household
// members with it.
func (u *userUC) Logout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, u.TimeOut)
	defer cancel()

	if err := u.userRepo.DeleteProfile(ctx); err != nil {
		return err
	}

	return u.auth.SignOut(ctx)
}
