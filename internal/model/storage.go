package model

import (
	"context"
	"io"
)

// Storage reads objects from a bucket.
type Storage interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
