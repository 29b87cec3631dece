package storage_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"shakwa-be/locale"
	"shakwa-be/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls so tests can assert which upload path ran and that
// oversize inputs never reach the network.
type fakeStore struct {
	putErr      error
	directErr   error
	putCalls    int
	directCalls int
	lastKey     string
	lastCT      string
}

func (f *fakeStore) Put(_ context.Context, key, contentType string, _ []byte) (string, error) {
	f.putCalls++
	f.lastKey = key
	f.lastCT = contentType
	if f.putErr != nil {
		return "", f.putErr
	}
	return "https://cdn.example/" + key, nil
}

func (f *fakeStore) PutDirect(_ context.Context, key, contentType string, _ []byte) (string, error) {
	f.directCalls++
	f.lastKey = key
	f.lastCT = contentType
	if f.directErr != nil {
		return "", f.directErr
	}
	return "https://cdn.example/" + key, nil
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResolveImage_RejectsOversizeBeforeUpload(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	data := make([]byte, storage.MaxImageSize+1)
	_, err := helper.ResolveImage(context.Background(), data, "123456")

	assert.EqualError(t, err, locale.MsgImageTooLarge)
	assert.Zero(t, store.putCalls, "oversize image must be rejected before any network write")
	assert.Zero(t, store.directCalls)
}

func TestResolveImage_RejectsEmpty(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	_, err := helper.ResolveImage(context.Background(), nil, "123456")

	assert.EqualError(t, err, locale.MsgImageEmpty)
	assert.Zero(t, store.putCalls)
}

func TestResolveImage_UploadsUnderComplaintKey(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	url, err := helper.ResolveImage(context.Background(), pngBytes(t, 40, 30), "654321")

	require.NoError(t, err)
	assert.Equal(t, "complaints/654321.jpg", store.lastKey)
	assert.Equal(t, "image/jpeg", store.lastCT)
	assert.Equal(t, "https://cdn.example/complaints/654321.jpg", url)
	assert.Equal(t, 1, store.putCalls)
	assert.Zero(t, store.directCalls, "fallback path must not run on success")
}

// TestResolveImage_FallbackOnTransportFailure exercises the single retry via
// the direct put path when the managed upload fails.
func TestResolveImage_FallbackOnTransportFailure(t *testing.T) {
	store := &fakeStore{putErr: errors.New("connection reset")}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	url, err := helper.ResolveImage(context.Background(), pngBytes(t, 40, 30), "654321")

	require.NoError(t, err)
	assert.Equal(t, 1, store.putCalls)
	assert.Equal(t, 1, store.directCalls, "exactly one fallback attempt")
	assert.Equal(t, "https://cdn.example/complaints/654321.jpg", url)
}

func TestResolveImage_BothPathsFail(t *testing.T) {
	store := &fakeStore{
		putErr:    errors.New("connection reset"),
		directErr: errors.New("still unreachable"),
	}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	_, err := helper.ResolveImage(context.Background(), pngBytes(t, 40, 30), "654321")

	assert.EqualError(t, err, locale.MsgStorageUnreachable)
	assert.Equal(t, 1, store.putCalls)
	assert.Equal(t, 1, store.directCalls)
}

// TestResolveImage_InlineMode stores the image as a base64 data URI on the
// record instead of touching object storage.
func TestResolveImage_InlineMode(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeInline)

	uri, err := helper.ResolveImage(context.Background(), pngBytes(t, 40, 30), "654321")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"), "inline mode must produce a jpeg data URI")
	assert.Zero(t, store.putCalls)
	assert.Zero(t, store.directCalls)
}

func TestUploadVideo_SizeLimit(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	data := make([]byte, storage.MaxVideoSize+1)
	_, err := helper.UploadVideo(context.Background(), data, "clip.mp4", "123456")

	assert.EqualError(t, err, locale.MsgVideoTooLarge)
	assert.Zero(t, store.putCalls)
}

func TestUploadVideo_ExtensionDerivedContentType(t *testing.T) {
	store := &fakeStore{}
	helper := storage.NewMediaHelper(store, storage.ImageModeUpload)

	_, err := helper.UploadVideo(context.Background(), []byte("video-bytes"), "clip.mov", "123456")
	require.NoError(t, err)
	assert.Equal(t, "complaints/123456_video.mov", store.lastKey)
	assert.Equal(t, "video/mov", store.lastCT)

	_, err = helper.UploadVideo(context.Background(), []byte("video-bytes"), "no-extension", "123456")
	require.NoError(t, err)
	assert.Equal(t, "complaints/123456_video.mp4", store.lastKey, "extension defaults to mp4")
	assert.Equal(t, "video/mp4", store.lastCT)
}

// TestCompress_BestEffort: garbage input must come back unchanged, a real
// image must come back as a 1280px-wide JPEG.
func TestCompress_BestEffort(t *testing.T) {
	garbage := []byte("definitely not an image")
	assert.Equal(t, garbage, storage.Compress(garbage), "undecodable input must pass through unchanged")

	out := storage.Compress(pngBytes(t, 2000, 1500))
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1280, cfg.Width)
}
