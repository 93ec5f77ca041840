package profiles

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type profilePresenter struct {
	Storage    contracts.Storage
	BucketName string
	URLExpiry  time.Duration
	Log        *zap.Logger
}

func NewProfilePresenter(storage contracts.Storage, bucketName string, urlExpiry time.Duration, logger *zap.Logger) contracts.ProfilePresenter {
	return &profilePresenter{
		Storage:    storage,
		BucketName: bucketName,
		URLExpiry:  urlExpiry,
		Log:        logger,
	}
}

// Present turns a user record into the profile the browser shows. A stored object name is
// exchanged for a presigned URL; a picture that is already a URL is passed through.
func (p *profilePresenter) Present(ctx context.Context, user *responses.User) *responses.Profile {
	if user == nil {
		return nil
	}

	profile := &responses.Profile{
		ID:                  user.ID,
		Name:                user.Name,
		Email:               user.Email,
		PhoneNumber:         user.PhoneNumber,
		MaskedPhoneNumber:   utils.MaskPhoneNumber(user.PhoneNumber),
		Role:                roleOf(user),
		IsAdmin:             user.IsAdmin,
		IsDoctor:            user.IsDoctor,
		SeenNotifications:   append([]responses.Notification{}, user.SeenNotifications...),
		UnseenNotifications: append([]responses.Notification{}, user.UnseenNotifications...),
	}
	if !user.CreatedAt.IsZero() {
		profile.CreatedAt = utils.FormatDisplayDate(user.CreatedAt.Format(constvars.CalendarDateLayout))
	}

	profile.ProfilePictureURL = p.pictureURL(ctx, user.ProfilePicture)
	return profile
}

func (p *profilePresenter) pictureURL(ctx context.Context, picture string) string {
	switch {
	case picture == "":
		return ""
	case strings.HasPrefix(picture, "http://"), strings.HasPrefix(picture, "https://"):
		return picture
	case p.Storage == nil:
		return ""
	}

	url, err := p.Storage.GetObjectUrlWithExpiryTime(ctx, p.BucketName, picture, p.URLExpiry)
	if err != nil {
		p.Log.Error("profilePresenter.pictureURL error presigning profile picture",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectNameKey, picture),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func roleOf(user *responses.User) string {
	switch {
	case user.IsAdmin:
		return constvars.RoleAdmin
	case user.IsDoctor:
		return constvars.RoleDoctor
	default:
		return constvars.RoleUser
	}
}
