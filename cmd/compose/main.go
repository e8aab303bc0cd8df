// Command compose renders a design request JSON file to a print PNG without
// running the server.
//
//	compose -in design.json -out out/case.png [-label out/label.png] [-preview 2]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"

	"github.com/youruser/caseprint/internal/config"
	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/editor"
	imagepkg "github.com/youruser/caseprint/internal/image"
	"github.com/youruser/caseprint/internal/layout"
	"github.com/youruser/caseprint/internal/util"
	"github.com/youruser/caseprint/pkg/logging"
)

func main() {
	in := flag.String("in", "", "design request JSON (- for stdin)")
	out := flag.String("out", "case.png", "output PNG path")
	label := flag.String("label", "", "also write the print job label PNG here")
	preview := flag.Float64("preview", 0, "write an editor preview at this pixel ratio instead of the print file")
	flag.Parse()

	_ = godotenv.Load()
	logging.Setup()

	if err := run(*in, *out, *label, *preview); err != nil {
		slog.Error("compose failed", "error", err)
		os.Exit(1)
	}
}

func run(in, out, label string, preview float64) error {
	if in == "" {
		return fmt.Errorf("-in is required")
	}
	req, err := readRequest(in)
	if err != nil {
		return err
	}
	if req.ID == "" {
		req.ID = design.NewID()
	}

	cfg := config.Load()
	reg := layout.Default()
	if aliases, err := layout.LoadAliasesFromDataDir(cfg.DataDir); err != nil {
		return err
	} else if len(aliases) > 0 {
		if reg, err = layout.NewRegistry(aliases); err != nil {
			return err
		}
	}
	dec := imagepkg.NewAssetDecoder(cfg.AssetDir, &http.Client{Timeout: cfg.FetchTimeout})
	ctx := context.Background()

	if err := util.EnsureDir(filepath.Dir(out)); err != nil {
		return err
	}

	if preview > 0 {
		stage, err := editor.FromRequest(ctx, reg, dec, req, editor.Options{PhoneAssets: true, LoadLimit: cfg.LoadConcurrency})
		if err != nil {
			return err
		}
		img, err := stage.ExportRasterAtScale(preview)
		if err != nil {
			return err
		}
		slog.Info("wrote preview", "path", out, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))
		return imaging.Save(img, out)
	}

	comp := imagepkg.NewCompositor(reg, dec)
	comp.LoadLimit = cfg.LoadConcurrency
	res, err := comp.Compose(ctx, req)
	if err != nil {
		return err
	}
	if err := writePNG(out, res); err != nil {
		return err
	}
	slog.Info("wrote print file", "path", out, "id", res.ID, "skipped", len(res.Skipped))

	if label != "" {
		sheet, err := imagepkg.ComposeJobLabel(res, req)
		if err != nil {
			return err
		}
		if err := util.EnsureDir(filepath.Dir(label)); err != nil {
			return err
		}
		if err := writePNG(label, &imagepkg.Result{ID: res.ID, Image: sheet}); err != nil {
			return err
		}
		slog.Info("wrote label", "path", label)
	}
	return nil
}

func readRequest(path string) (design.Request, error) {
	var req design.Request
	f := os.Stdin
	if path != "-" {
		var err error
		if f, err = os.Open(path); err != nil {
			return req, err
		}
		defer f.Close()
	}
	if err := json.NewDecoder(f).Decode(&req); err != nil {
		return req, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}

func writePNG(path string, res *imagepkg.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
