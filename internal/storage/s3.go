package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadPrefix is the namespace all uploaded photos live under. Photo
// references in student and attendance records are bare object names
// resolved against this prefix.
const UploadPrefix = "uploads/"

// URLExpiry is the validity window of a minted upload credential.
const URLExpiry = time.Hour

// PresignAPI is the slice of the S3 presign client the service calls.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var _ PresignAPI = (*s3.PresignClient)(nil)

// Storage mints direct-upload credentials against the photo bucket and
// resolves photo names to their public display URLs.
type Storage struct {
	Presigner     PresignAPI
	Bucket        string
	PublicBaseURL string
}

func New(awsCfg aws.Config, bucket, publicBaseURL string) *Storage {
	return &Storage{
		Presigner:     s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		Bucket:        bucket,
		PublicBaseURL: publicBaseURL,
	}
}

// PresignUpload returns a URL authorizing exactly one PUT of fileType
// content at uploads/<fileName>, valid for one hour. The object exists
// only once the holder performs the PUT; whether that happens is never
// visible here. Two callers choosing the same fileName write to the same
// key, last PUT wins.
func (s *Storage) PresignUpload(ctx context.Context, fileName, fileType string) (string, error) {
	req, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(UploadPrefix + fileName),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(URLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PhotoURL resolves a stored photo name to the public-read URL the
// dashboard displays it from.
func (s *Storage) PhotoURL(name string) string {
	return s.PublicBaseURL + "/" + UploadPrefix + name
}
