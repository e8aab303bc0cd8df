package imagepkg

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/youruser/caseprint/internal/util"
)

// ErrEmptyRef is returned for a blank image reference.
var ErrEmptyRef = errors.New("empty image reference")

// Decoder turns an image reference into pixels.
type Decoder interface {
	Decode(ctx context.Context, ref string) (image.Image, error)
}

// AssetDecoder resolves data: URLs, http(s) URLs and paths relative to
// AssetDir. Asset paths may not leave AssetDir.
type AssetDecoder struct {
	AssetDir string
	Client   *http.Client
}

func NewAssetDecoder(assetDir string, client *http.Client) *AssetDecoder {
	return &AssetDecoder{AssetDir: assetDir, Client: client}
}

func (d *AssetDecoder) Decode(ctx context.Context, ref string) (image.Image, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil, ErrEmptyRef
	case strings.HasPrefix(ref, "data:"):
		b, err := decodeDataURL(ref)
		if err != nil {
			return nil, err
		}
		return DecodeBytes(b)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		b, err := util.GetBytes(ctx, d.Client, ref)
		if err != nil {
			return nil, err
		}
		return DecodeBytes(b)
	default:
		if d.AssetDir == "" {
			return nil, fmt.Errorf("no asset directory for %q", ref)
		}
		path, err := util.SafeJoin(d.AssetDir, ref)
		if err != nil {
			return nil, err
		}
		return imaging.Open(path, imaging.AutoOrientation(true))
	}
}

// DecodeBytes decodes any registered format, honouring EXIF orientation.
func DecodeBytes(b []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// decodeDataURL handles data:[<mime>][;base64],<payload>.
func decodeDataURL(ref string) ([]byte, error) {
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, errors.New("malformed data URL")
	}
	meta, payload := ref[len("data:"):comma], ref[comma+1:]
	if strings.HasSuffix(meta, ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// Some clients strip padding.
			b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, fmt.Errorf("data URL payload: %w", err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("data URL payload: %w", err)
	}
	return []byte(s), nil
}
