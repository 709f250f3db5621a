// Package materializer turns provider output into stored image objects:
// the original render plus a watermarked preview derivative.
package materializer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"wallpaperverse/services/generator/internal/provider"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	thumbWidth  = 540
	thumbHeight = 960

	watermarkText = "WALLPAPERVERSE"
	watermarkSize = 40
)

// BlobStore is the slice of the object storage client the materializer
// needs.
type BlobStore interface {
	UploadBytes(key string, data []byte, contentType string) (string, error)
	Download(key string) ([]byte, error)
	DeleteFile(key string) error
}

type Materializer struct {
	store      BlobStore
	httpClient *http.Client
	face       font.Face
}

func New(store BlobStore, httpClient *http.Client) (*Materializer, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watermark font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: watermarkSize,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build watermark face: %w", err)
	}

	return &Materializer{
		store:      store,
		httpClient: httpClient,
		face:       face,
	}, nil
}

// Resolve fetches the image bytes behind a handle. Inline bytes pass
// through, URL handles are downloaded.
func (m *Materializer) Resolve(ctx context.Context, handle *provider.ImageHandle) ([]byte, error) {
	if len(handle.Data) > 0 {
		return handle.Data, nil
	}
	if handle.URL == "" {
		return nil, fmt.Errorf("image handle carries neither bytes nor a url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, handle.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image download request: %w", err)
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return data, nil
}

func originalKey(ownerID, jobID string) string {
	return fmt.Sprintf("protected/users/%s/generations/%s/full.jpg", ownerID, jobID)
}

func thumbnailKey(ownerID, jobID string) string {
	return fmt.Sprintf("protected/users/%s/generations/%s/thumb.jpg", ownerID, jobID)
}

// PersistOriginal stores the full-resolution render as JPEG under the
// owner's protected prefix and returns the object key.
func (m *Materializer) PersistOriginal(ownerID, jobID string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode render: %w", err)
	}

	encoded, err := encodeJPEG(img, 90)
	if err != nil {
		return "", err
	}

	key := originalKey(ownerID, jobID)
	if _, err := m.store.UploadBytes(key, encoded, "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to upload original: %w", err)
	}
	return key, nil
}

// PersistThumbnail derives a watermarked 540x960 cover-fit preview from
// the stored original and returns the object key. The preview is what
// clients may show before the item is unlocked.
func (m *Materializer) PersistThumbnail(ownerID, jobID string) (string, error) {
	data, err := m.store.Download(originalKey(ownerID, jobID))
	if err != nil {
		return "", fmt.Errorf("failed to load stored original: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode render: %w", err)
	}

	thumb := imaging.Fill(img, thumbWidth, thumbHeight, imaging.Center, imaging.Lanczos)
	marked := m.watermark(thumb)

	encoded, err := encodeJPEG(marked, 85)
	if err != nil {
		return "", err
	}

	key := thumbnailKey(ownerID, jobID)
	if _, err := m.store.UploadBytes(key, encoded, "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	return key, nil
}

// DiscardOriginal removes a stored original, for cleanup when the
// derivative step fails and the job will not succeed.
func (m *Materializer) DiscardOriginal(ownerID, jobID string) error {
	return m.store.DeleteFile(originalKey(ownerID, jobID))
}

// watermark stamps translucent diagonal text across the center of the
// preview.
func (m *Materializer) watermark(img image.Image) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(m.face)
	dc.SetRGBA(1, 1, 1, 0.3)

	cx := float64(thumbWidth) / 2
	cy := float64(thumbHeight) / 2
	dc.RotateAbout(gg.Radians(-45), cx, cy)
	dc.DrawStringAnchored(watermarkText, cx, cy, 0.5, 0.5)

	return dc.Image()
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
