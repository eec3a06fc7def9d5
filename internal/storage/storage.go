// Package storage archives submitted advertisement files in an S3-compatible
// object store. Implementations stream uploads and never touch local disk.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// submissionPrefix namespaces archived uploads inside the bucket.
const submissionPrefix = "submissions/"

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store used for submission archives.
type Storage interface {
	// Put uploads an object under key from r.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// SubmissionKey returns the object key for the file behind check id,
// keeping the lower-cased extension of filename.
func SubmissionKey(id, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "." {
		ext = ""
	}
	return submissionPrefix + id + ext
}
