package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"regexp"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "hood-eatery/menu"

// CloudinaryService uploads and removes menu item images.
type CloudinaryService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryService constructs a CloudinaryService from a CLOUDINARY_URL
// style connection string. An empty URL leaves the service disabled.
func NewCloudinaryService(cloudinaryURL string) *CloudinaryService {
	if cloudinaryURL == "" {
		log.Println("[Cloudinary] not configured, image upload disabled")
		return &CloudinaryService{}
	}

	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("[Cloudinary] invalid configuration: %v", err)
		return &CloudinaryService{}
	}

	return &CloudinaryService{client: client}
}

// Enabled reports whether the service has a working client.
func (s *CloudinaryService) Enabled() bool {
	return s.client != nil
}

// UploadImage stores the uploaded file and returns its public URL. Images
// are capped at 800x800 on the Cloudinary side.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File) (string, error) {
	if s.client == nil {
		return "", errors.New("cloudinary is not configured")
	}

	result, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadFolder,
		Transformation: "c_limit,w_800,h_800",
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}

// DeleteImage removes a previously uploaded image by its URL. Callers treat
// failures as best-effort cleanup.
func (s *CloudinaryService) DeleteImage(ctx context.Context, imageURL string) error {
	if s.client == nil || imageURL == "" {
		return nil
	}

	publicID := ExtractPublicID(imageURL)
	if publicID == "" {
		return nil
	}

	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

var publicIDPattern = regexp.MustCompile(`/v\d+/(.+)\.\w+$`)

// ExtractPublicID pulls the Cloudinary public ID out of a delivery URL.
// https://res.cloudinary.com/demo/image/upload/v123/hood-eatery/menu/dish.jpg
// yields hood-eatery/menu/dish.
func ExtractPublicID(imageURL string) string {
	matches := publicIDPattern.FindStringSubmatch(imageURL)
	if len(matches) != 2 {
		return ""
	}
	return matches[1]
}
