package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Bucket policy: which buckets exist and how large their files may be.
// The limit is declared to callers but not enforced against the uploaded
// bytes; real storage lives behind a separate service.
var bucketMaxSizes = map[string]int64{
	"avatars":    5 * 1024 * 1024,
	"resumes":    10 * 1024 * 1024,
	"post-media": 50 * 1024 * 1024,
}

type UploadResult struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	Bucket    string `json:"bucket"`
}

type UploadUsecase interface {
	Upload(userID uuid.UUID, bucket, fileName string, fileSize int64) (UploadResult, error)
}

type Uploads struct {
	publicBaseURL string
}

func NewUploadUsecase(publicBaseURL string) *Uploads {
	return &Uploads{publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (u *Uploads) Upload(userID uuid.UUID, bucket, fileName string, fileSize int64) (UploadResult, error) {
	if userID == uuid.Nil {
		return UploadResult{}, ErrUnauthorized
	}

	bucket = strings.TrimSpace(bucket)
	if _, ok := bucketMaxSizes[bucket]; !ok {
		return UploadResult{}, ErrInvalidBucket
	}

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return UploadResult{}, ErrInvalidInput
	}

	path := fmt.Sprintf("%s/%s/%s", bucket, userID, fileName)

	return UploadResult{
		Path:      path,
		PublicURL: u.publicBaseURL + "/" + path,
		FileName:  fileName,
		FileSize:  fileSize,
		Bucket:    bucket,
	}, nil
}

// MaxSizeForBucket reports the declared byte limit for a known bucket.
func MaxSizeForBucket(bucket string) (int64, bool) {
	size, ok := bucketMaxSizes[bucket]
	return size, ok
}

var _ UploadUsecase = (*Uploads)(nil)
