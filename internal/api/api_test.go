package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/caseprint/internal/image"
	"github.com/youruser/caseprint/internal/layout"
)

type stubDecoder map[string]image.Image

func (s stubDecoder) Decode(_ context.Context, ref string) (image.Image, error) {
	img, ok := s[ref]
	if !ok {
		return nil, fmt.Errorf("no asset %q", ref)
	}
	return img, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	reg := layout.Default()
	dec := stubDecoder{"photo": imaging.New(40, 20, color.NRGBA{R: 0xcc, G: 0x22, B: 0x44, A: 0xff})}
	h := NewHandler(reg, imagepkg.NewCompositor(reg, dec), dec, 4)
	r := gin.New()
	RegisterRoutes(r, h)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodePNG(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
	return img
}

const validDesign = `{"model":"iPhone 15 Pro","width_mm":70,"height_mm":150,"images":[{"src":"photo"}],"text":"hi"}`

func TestHealth(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("health = %d %s", w.Code, w.Body)
	}
}

func TestLayoutHandler(t *testing.T) {
	r := newRouter()
	tests := []struct {
		model      string
		wantFamily string
		wantMatch  string
	}{
		{"iPhone 17 Pro Max", layout.FamilyIPhoneProMax, "exact"},
		{"iphone-17-pro-max", layout.FamilyIPhoneProMax, "normalized"},
		{"Nokia 3310", layout.DefaultFamily, "default"},
	}
	for _, tt := range tests {
		w := do(r, http.MethodGet, "/api/layouts/"+strings.ReplaceAll(tt.model, " ", "%20"), "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d", tt.model, w.Code)
		}
		var body struct {
			Family   string `json:"family"`
			Match    string `json:"match"`
			ClipPath struct {
				ID string `json:"id"`
			} `json:"clip_path"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.Family != tt.wantFamily || body.Match != tt.wantMatch || body.ClipPath.ID != tt.wantFamily {
			t.Errorf("%s: got %+v", tt.model, body)
		}
	}

	w := do(r, http.MethodGet, "/api/layouts", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "iPhone 15 Pro") {
		t.Errorf("models = %d %s", w.Code, w.Body)
	}
}

func TestComposeHandler(t *testing.T) {
	r := newRouter()

	t.Run("png", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/compose", validDesign)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body)
		}
		if ct := w.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("content type = %q", ct)
		}
		if w.Header().Get("X-Design-ID") == "" {
			t.Error("missing X-Design-ID")
		}
		img := decodePNG(t, w.Body.Bytes())
		if b := img.Bounds(); b.Dx() != 1390 || b.Dy() != 2979 {
			t.Errorf("bounds = %v", b)
		}
	})

	t.Run("data url with skipped asset", func(t *testing.T) {
		body := `{"id":"d-1","model":"Pixel 9","width_mm":70,"height_mm":150,"stickers":[{"kind":"image","src":"missing.png"}]}`
		w := do(r, http.MethodPost, "/api/compose?format=dataurl", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body)
		}
		var out struct {
			ID      string             `json:"id"`
			DataURL string             `json:"data_url"`
			Skipped []imagepkg.Skipped `json:"skipped"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatal(err)
		}
		if out.ID != "d-1" || !strings.HasPrefix(out.DataURL, "data:image/png;base64,") {
			t.Errorf("out = %s %.40s", out.ID, out.DataURL)
		}
		if len(out.Skipped) != 1 || out.Skipped[0].Kind != "sticker" {
			t.Errorf("skipped = %+v", out.Skipped)
		}
	})

	errTests := []struct {
		name      string
		body      string
		wantCode  int
		wantField string
	}{
		{"bad json", `{"model":`, http.StatusBadRequest, ""},
		{"narrow case", `{"model":"iPhone 15","width_mm":10,"height_mm":150}`, http.StatusUnprocessableEntity, "width_mm"},
		{"square case", `{"model":"iPhone 15","width_mm":100,"height_mm":110}`, http.StatusUnprocessableEntity, "aspect_ratio"},
		{"missing size", `{"model":"iPhone 15"}`, http.StatusUnprocessableEntity, ""},
		{"bad sticker", `{"model":"iPhone 15","width_mm":70,"height_mm":150,"stickers":[{"kind":"glyph"}]}`, http.StatusUnprocessableEntity, ""},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/compose", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantCode, w.Body)
			}
			if tt.wantField != "" && !strings.Contains(w.Body.String(), `"field":"`+tt.wantField+`"`) {
				t.Errorf("body %s does not name %s", w.Body, tt.wantField)
			}
		})
	}
}

func TestPreviewHandler(t *testing.T) {
	r := newRouter()
	w := do(r, http.MethodPost, "/api/preview?ratio=2", validDesign)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	img := decodePNG(t, w.Body.Bytes())
	if b := img.Bounds(); b.Dx() != 600 {
		t.Errorf("preview width = %d, want 600", b.Dx())
	}

	for _, ratio := range []string{"0", "-1", "9", "abc"} {
		if w := do(r, http.MethodPost, "/api/preview?ratio="+ratio, validDesign); w.Code != http.StatusBadRequest {
			t.Errorf("ratio %s: status = %d, want 400", ratio, w.Code)
		}
	}
}

func TestLabelHandler(t *testing.T) {
	w := do(newRouter(), http.MethodPost, "/api/label", validDesign)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	img := decodePNG(t, w.Body.Bytes())
	if b := img.Bounds(); b.Dx() != imagepkg.LabelWidth || b.Dy() != imagepkg.LabelHeight {
		t.Errorf("label bounds = %v", b)
	}
}

func TestClipParseHandler(t *testing.T) {
	w := do(newRouter(), http.MethodPost, "/api/clip/parse", `{"path":"M0 0 L10 0 A1 1 0 0 1 5 5 Z","transform":"translate(2,3)"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	var out struct {
		Count    int `json:"count"`
		Commands []struct {
			Op string `json:"op"`
		} `json:"commands"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 3 {
		t.Errorf("count = %d, want 3 (arc dropped): %s", out.Count, w.Body)
	}
}

func TestQRHandler(t *testing.T) {
	r := newRouter()
	w := do(r, http.MethodGet, "/api/qr?design=abc&size=128", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	if b := decodePNG(t, w.Body.Bytes()).Bounds(); b.Dx() != 128 {
		t.Errorf("qr width = %d, want 128", b.Dx())
	}
	if w := do(r, http.MethodGet, "/api/qr", ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing text: status = %d, want 400", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter()
	do(r, http.MethodGet, "/api/health", "")
	w := do(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "caseprint_http_requests_total") {
		t.Errorf("metrics = %d, missing request counter", w.Code)
	}
}
