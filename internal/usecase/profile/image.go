package profile

import (
	"context"
	"io"

	"github.com/BruksfildServices01/hirely-api/internal/audit"
	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/imaging"
	"github.com/BruksfildServices01/hirely-api/internal/infra/cache"
	"github.com/BruksfildServices01/hirely-api/internal/infra/storage"
)

// UploadImage converts a profile picture to WebP, stores it and points
// the user's profile_pic at it.
type UploadImage struct {
	users    user.Repository
	uploader storage.Uploader
	cache    cache.Cache
	audit    *audit.Dispatcher
}

// NewUploadImage accepts a nil uploader when storage is not configured.
func NewUploadImage(
	users user.Repository,
	uploader storage.Uploader,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UploadImage {
	return &UploadImage{users: users, uploader: uploader, cache: c, audit: audit}
}

func (uc *UploadImage) Execute(
	ctx context.Context,
	actor user.Actor,
	userID uint,
	image io.Reader,
) (string, error) {

	if uc.uploader == nil {
		return "", httperr.ErrBusiness("storage_disabled")
	}
	if !actor.CanActFor(userID) {
		return "", httperr.ErrBusiness("forbidden")
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	data, err := imaging.ToWebP(image)
	if err != nil {
		return "", err
	}

	url, err := uc.uploader.Upload(ctx, storage.ProfileImageKey(u.ID), imaging.ContentType, data)
	if err != nil {
		return "", err
	}

	u.ProfilePic = url
	if err := uc.users.Update(ctx, u); err != nil {
		return "", err
	}

	if u.Role == user.RoleProvider {
		cache.Invalidate(ctx, uc.cache, cache.PrefixProviders)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.Ref(actor.UserID),
		Action:   "profile_image_updated",
		Entity:   "user",
		EntityID: audit.Ref(u.ID),
	})

	return url, nil
}
