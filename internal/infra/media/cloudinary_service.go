// Package media stores uploaded video content on Cloudinary.
package media

import (
	"context"
	"log/slog"
	"time"

	"vestira/config"
	domainerrors "vestira/internal/domain/errors"
	"vestira/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cloudinaryService is a concrete implementation of the MediaStorage
// interface backed by Cloudinary's upload API.
type cloudinaryService struct {
	client  *cloudinary.Cloudinary
	timeout time.Duration
	folder  string
	logger  *slog.Logger
}

// Params holds dependencies for the Cloudinary service, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCloudinaryService is the constructor for cloudinaryService.
func NewCloudinaryService(params Params) (service.MediaStorage, error) {
	if params.Config.Media == nil || params.Config.Media.CloudinaryURL == "" {
		return nil, errors.New("cloudinary url must be provided")
	}

	client, err := cloudinary.NewFromURL(params.Config.Media.CloudinaryURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}

	return &cloudinaryService{
		client:  client,
		timeout: params.Config.Media.UploadTimeout,
		folder:  params.Config.Media.Folder,
		logger:  params.Logger,
	}, nil
}

// UploadVideo sends the base64 data URI (or remote URL) to Cloudinary and
// returns the delivery URL. Uploads past the deadline surface as the
// timeout error so the handler can answer 408.
func (s *cloudinaryService) UploadVideo(ctx context.Context, video string, fileName string) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.Upload.Upload(uploadCtx, video, uploader.UploadParams{
		PublicID:     fileName,
		Folder:       s.folder,
		ResourceType: "video",
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(uploadCtx.Err(), context.DeadlineExceeded) {
			return "", domainerrors.ErrUploadTimeout.WrapMessage("cloudinary upload timed out")
		}

		return "", errors.Wrap(err, "failed to upload video to cloudinary")
	}

	s.logger.Debug("Video uploaded",
		slog.String("publicID", result.PublicID),
		slog.String("url", result.SecureURL),
	)

	return result.SecureURL, nil
}
