// Package media uploads post images to an object store and removes them
// again through the returned deletion handle.
package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/rohits-web03/myspace/internal/config"
)

var ErrNotImage = errors.New("file is not an image")

// Uploaded describes a stored image. ID is the deletion handle.
type Uploaded struct {
	URL string
	ID  string
}

// Store is an image host. Delete must treat a missing object as success.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (Uploaded, error)
	Delete(ctx context.Context, id string) error
}

// Image is a sniffed upload.
type Image struct {
	ContentType string
	Extension   string
}

// DetectImage inspects the content itself; the client supplied content type
// is never trusted.
func DetectImage(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrNotImage
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	ct, _, _ := strings.Cut(mt.String(), ";")
	return Image{ContentType: ct, Extension: mt.Extension()}, nil
}

// objectKey lays images out as posts/<yyyy>/<mm>/<uuid><ext>.
func objectKey(now time.Time, ext string) string {
	return path.Join("posts", now.UTC().Format("2006"), now.UTC().Format("01"), uuid.NewString()+ext)
}

func extensionFor(contentType string) string {
	if mt := mimetype.Lookup(contentType); mt != nil {
		return mt.Extension()
	}
	return ""
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

// New builds the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.MediaConfig, log *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.MediaR2:
		return NewR2Store(cfg, log)
	case config.MediaMinio:
		return NewMinioStore(ctx, cfg, log)
	case config.MediaMemory:
		return NewMemoryStore(cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Driver)
	}
}
