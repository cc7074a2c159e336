package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadFolder holds every menu image.
const uploadFolder = "InatFoodPOS"

// CloudinaryService wraps the Cloudinary SDK: it signs upload parameters
// for direct frontend uploads and proxies server-side uploads.
type CloudinaryService struct {
	cld       *cloudinary.Cloudinary
	apiSecret string
}

func NewCloudinaryService() *CloudinaryService {
	return newCloudinaryService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
}

func newCloudinaryService(cloudName, apiKey, apiSecret string) *CloudinaryService {
	s := &CloudinaryService{apiSecret: apiSecret}
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return s
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return s
	}
	s.cld = cld
	return s
}

func (s *CloudinaryService) Configured() bool {
	return s.cld != nil
}

// SignRequest produces the Cloudinary request signature for the given
// upload parameters. File, api_key, resource_type and cloud_name never
// participate in the signature.
func (s *CloudinaryService) SignRequest(params map[string]string) (string, error) {
	if s.apiSecret == "" {
		return "", errors.New("cloudinary api secret is not configured")
	}

	signable := url.Values{}
	for k, v := range params {
		switch k {
		case "file", "api_key", "resource_type", "cloud_name":
			continue
		}
		signable.Set(k, v)
	}
	return api.SignParameters(signable, s.apiSecret)
}

type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Upload sends a base64 data-URI image to Cloudinary and returns the
// hosted URL. All menu images live in one folder.
func (s *CloudinaryService) Upload(ctx context.Context, file string) (*UploadResult, error) {
	if !s.Configured() {
		return nil, errors.New("cloudinary is not configured")
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &UploadResult{SecureURL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
