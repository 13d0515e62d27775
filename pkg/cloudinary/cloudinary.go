package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client uploads images to media storage. Kept as an interface so tests
// can substitute a fake.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
}

// Optimized delivery params for avatar images.
const (
	imageEager = "q_auto,f_auto,w_400,c_fill"
	imageWidth = 400
)

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName string
	cld       *cloudinary.Cloudinary
}

func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &clientImpl{cloudName: cloudName, cld: cld}, nil
}

// UploadImage uploads with eager optimization (auto quality and format,
// resized for avatar display) and returns the delivery URL.
func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if len(result.Eager) > 0 && result.Eager[0].SecureURL != "" {
		return result.Eager[0].SecureURL, nil
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
		c.cloudName, imageWidth, result.PublicID), nil
}
