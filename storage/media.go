package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log"
	"path"
	"strings"

	"github.com/disintegration/imaging"

	"shakwa-be/locale"
)

const (
	// MaxImageSize is enforced before any network write is attempted.
	MaxImageSize = 5 * 1024 * 1024
	// MaxVideoSize is enforced before upload; there is no video compression.
	MaxVideoSize = 20 * 1024 * 1024

	compressWidth   = 1280
	compressQuality = 70
)

// ImageMode selects how a complaint image is persisted: uploaded to object
// storage (URL recorded) or inlined as a base64 data URI on the document.
type ImageMode string

const (
	ImageModeUpload ImageMode = "upload"
	ImageModeInline ImageMode = "inline"
)

// MediaHelper resolves complaint media to stored URLs. Two uploads for the
// same complaint id are independent calls; there is no dedup between them.
type MediaHelper struct {
	store ObjectStore
	mode  ImageMode
}

func NewMediaHelper(store ObjectStore, mode ImageMode) *MediaHelper {
	if mode != ImageModeInline {
		mode = ImageModeUpload
	}
	return &MediaHelper{store: store, mode: mode}
}

// Compress downscales the image to 1280px wide and re-encodes it as JPEG.
// Best effort: on any decode/encode failure the input comes back unchanged,
// so compression can never fail an upload.
func Compress(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("image compress: decode failed, keeping original: %v", err)
		return data
	}

	resized := imaging.Resize(img, compressWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(compressQuality)); err != nil {
		log.Printf("image compress: encode failed, keeping original: %v", err)
		return data
	}
	return buf.Bytes()
}

// ResolveImage turns picked image bytes into the value stored on the
// complaint document: an object storage URL, or a data URI in inline mode.
// Size limits are checked before anything touches the network.
func (m *MediaHelper) ResolveImage(ctx context.Context, data []byte, complaintID string) (string, error) {
	if len(data) == 0 {
		return "", errors.New(locale.MsgImageEmpty)
	}
	if len(data) > MaxImageSize {
		return "", errors.New(locale.MsgImageTooLarge)
	}

	compressed := Compress(data)

	if m.mode == ImageModeInline {
		return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(compressed), nil
	}

	key := fmt.Sprintf("complaints/%s.jpg", complaintID)
	return m.putWithFallback(ctx, key, "image/jpeg", compressed)
}

// UploadVideo stores picked video bytes under the per-complaint video key.
// Content type is derived from the filename extension, defaulting to mp4.
func (m *MediaHelper) UploadVideo(ctx context.Context, data []byte, filename, complaintID string) (string, error) {
	if len(data) == 0 || len(data) > MaxVideoSize {
		return "", errors.New(locale.MsgVideoTooLarge)
	}

	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "mp4"
	}
	key := fmt.Sprintf("complaints/%s_video.%s", complaintID, ext)
	return m.putWithFallback(ctx, key, "video/"+ext, data)
}

// putWithFallback tries the primary upload path, then retries exactly once
// via the lower-level direct put. Transport problems (blocked CORS-style
// endpoints, proxy resets) have been seen to fail the managed path while the
// single-shot path still goes through.
func (m *MediaHelper) putWithFallback(ctx context.Context, key, contentType string, data []byte) (string, error) {
	url, err := m.store.Put(ctx, key, contentType, data)
	if err == nil {
		return url, nil
	}
	log.Printf("upload of %s failed, retrying via direct put: %v", key, err)

	url, directErr := m.store.PutDirect(ctx, key, contentType, data)
	if directErr != nil {
		log.Printf("direct put of %s also failed: %v", key, directErr)
		return "", errors.New(locale.MsgStorageUnreachable)
	}
	return url, nil
}
