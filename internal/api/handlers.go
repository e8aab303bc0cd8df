package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/caseprint/internal/clippath"
	"github.com/youruser/caseprint/internal/design"
	"github.com/youruser/caseprint/internal/editor"
	imagepkg "github.com/youruser/caseprint/internal/image"
	"github.com/youruser/caseprint/internal/layout"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2048
)

type Handler struct {
	Layouts         *layout.Registry
	Compositor      *imagepkg.Compositor
	Decoder         imagepkg.Decoder
	PreviewMaxRatio float64
}

func NewHandler(reg *layout.Registry, comp *imagepkg.Compositor, dec imagepkg.Decoder, previewMaxRatio float64) *Handler {
	return &Handler{
		Layouts:         reg,
		Compositor:      comp,
		Decoder:         dec,
		PreviewMaxRatio: previewMaxRatio,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listModels(c *gin.Context) {
	models := h.Layouts.Models()
	c.JSON(http.StatusOK, gin.H{"count": len(models), "models": models})
}

// layoutHandler returns everything the storefront needs to draw a model:
// geometry, mask position, display sizes and the clip path.
func (h *Handler) layoutHandler(c *gin.Context) {
	model := c.Param("model")
	fam, match := h.Layouts.Family(model)
	spec, _ := clippath.Lookup(fam.ClipPathID)
	c.JSON(http.StatusOK, gin.H{
		"model":         model,
		"family":        fam.Name,
		"match":         match,
		"layout":        fam.Layout(model),
		"mask_position": fam.MaskPosition,
		"dimensions": gin.H{
			"editor":    fam.Editor,
			"thumbnail": fam.Thumbnail,
		},
		"clip_path": spec,
	})
}

func (h *Handler) bindRequest(c *gin.Context) (design.Request, bool) {
	var req design.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	if req.ID == "" {
		req.ID = design.NewID()
	}
	return req, true
}

// composeHandler renders the print file. It answers with the PNG, or with a
// JSON body carrying a data URL when format=dataurl.
func (h *Handler) composeHandler(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	res, err := h.Compositor.Compose(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	if c.Query("format") == "dataurl" {
		url, err := res.DataURL()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       res.ID,
			"width":    res.Width,
			"height":   res.Height,
			"data_url": url,
			"skipped":  res.Skipped,
		})
		return
	}

	b, err := res.PNG()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Design-ID", res.ID)
	c.Header("X-Skipped-Assets", strconv.Itoa(len(res.Skipped)))
	c.Data(http.StatusOK, "image/png", b)
}

// previewHandler renders the editor scene at ?ratio= (default 1) for quick
// thumbnails. It is not a print file.
func (h *Handler) previewHandler(c *gin.Context) {
	ratio := 1.0
	if s := c.Query("ratio"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 || v > h.PreviewMaxRatio {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ratio must be in (0, " + strconv.FormatFloat(h.PreviewMaxRatio, 'g', -1, 64) + "]"})
			return
		}
		ratio = v
	}
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	stage, err := editor.FromRequest(c.Request.Context(), h.Layouts, h.Decoder, req, editor.Options{PhoneAssets: true})
	if err != nil {
		writeError(c, err)
		return
	}
	img, err := stage.ExportRasterAtScale(ratio)
	if err != nil {
		writeError(c, err)
		return
	}
	res := &imagepkg.Result{ID: req.ID, Image: img, Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
	b, err := res.PNG()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// labelHandler composes the design and returns its print job label.
func (h *Handler) labelHandler(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	res, err := h.Compositor.Compose(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	sheet, err := imagepkg.ComposeJobLabel(res, req)
	if err != nil {
		writeError(c, err)
		return
	}
	b, err := (&imagepkg.Result{ID: res.ID, Image: sheet}).PNG()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Design-ID", res.ID)
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) clipParseHandler(c *gin.Context) {
	var body struct {
		Path      string `json:"path"`
		Transform string `json:"transform"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmds := clippath.ParsePath(body.Path)
	if cmds == nil {
		cmds = []clippath.Command{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(cmds),
		"commands":  cmds,
		"transform": clippath.ParseTransform(body.Transform),
	})
}

// qrHandler returns a PNG QR code for the text query param.
func (h *Handler) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		if id := c.Query("design"); id != "" {
			text = imagepkg.QRPayload(id)
		}
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text or design is required"})
		return
	}
	size := defaultQRSize
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= maxQRSize {
			size = v
		}
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// writeError maps compose errors to status codes: bad designs and sizes are
// 422, a bad pixel ratio is 400, anything else is 500.
func writeError(c *gin.Context, err error) {
	var de *imagepkg.DimensionError
	switch {
	case errors.As(err, &de):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"field": de.Field,
			"value": de.Value,
			"min":   de.Min,
			"max":   de.Max,
		})
	case errors.Is(err, imagepkg.ErrMissingDimensions), errors.Is(err, design.ErrInvalidRequest):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, editor.ErrPixelRatio):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled):
		slog.Info("request cancelled", "path", c.FullPath())
		c.Status(499)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
