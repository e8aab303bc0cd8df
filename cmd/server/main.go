package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/caseprint/internal/api"
	"github.com/youruser/caseprint/internal/config"
	imagepkg "github.com/youruser/caseprint/internal/image"
	"github.com/youruser/caseprint/internal/layout"
	"github.com/youruser/caseprint/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Model aliases are best-effort: a bad file is reported and ignored.
	reg := layout.Default()
	aliases, err := layout.LoadAliasesFromDataDir(cfg.DataDir)
	if err != nil {
		slog.Warn("failed to load model aliases", "dir", cfg.DataDir, "error", err)
	} else if len(aliases) > 0 {
		if r, err := layout.NewRegistry(aliases); err != nil {
			slog.Warn("ignoring model aliases", "error", err)
		} else {
			reg = r
			slog.Info("loaded model aliases", "count", len(aliases))
		}
	}

	loadFonts(cfg.FontDir)

	dec := imagepkg.NewAssetDecoder(cfg.AssetDir, &http.Client{Timeout: cfg.FetchTimeout})
	comp := imagepkg.NewCompositor(reg, dec)
	comp.LoadLimit = cfg.LoadConcurrency

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(reg, comp, dec, cfg.PreviewMaxRatio))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	slog.Info("starting server", "addr", "http://localhost:"+cfg.Port, "env", cfg.Environment, "assets", cfg.AssetDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loadFonts registers every .ttf/.otf in dir under its base name.
func loadFonts(dir string) {
	if dir == "" {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("failed to read font dir", "dir", dir, "error", err)
		return
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			slog.Warn("failed to read font", "file", e.Name(), "error", err)
			continue
		}
		name := e.Name()[:len(e.Name())-len(ext)]
		if err := imagepkg.RegisterFont(name, b); err != nil {
			slog.Warn("skipping font", "file", e.Name(), "error", err)
			continue
		}
		slog.Info("registered font", "name", name)
	}
}
