package controllers

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DownloadController streams the fixed app package and upgrade image
type DownloadController struct {
	appsDir    string
	upgradeDir string
	logger     *zap.Logger
}

// NewDownloadController creates a new download controller
func NewDownloadController(appsDir, upgradeDir string, logger *zap.Logger) *DownloadController {
	return &DownloadController{
		appsDir:    appsDir,
		upgradeDir: upgradeDir,
		logger:     logger,
	}
}

// AppPackage handles GET /apps/download/nrd-1.1-dlink.dsm380.zip/ on the dir host
func (c *DownloadController) AppPackage(w http.ResponseWriter, r *http.Request) {
	c.Serve(w, r, c.appsDir, AppPackageFile, AppPackageFile)
}

// UpgradeImage handles GET /version/dlink.dsm380/1.5.1.23735/boxee.iso on the dl host
func (c *DownloadController) UpgradeImage(w http.ResponseWriter, r *http.Request) {
	c.Serve(w, r, c.upgradeDir, UpgradeImageFile, UpgradeImageFile)
}

// Serve streams dir/file as an attachment named downloadName.
// dir and file always come from configuration, never from the request.
func (c *DownloadController) Serve(w http.ResponseWriter, r *http.Request, dir, file, downloadName string) {
	path := filepath.Join(dir, file)

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Error("failed to open download", zap.String("path", path), zap.Error(err))
		}
		NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		NotFound(w, r)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": downloadName}))
	http.ServeContent(w, r, downloadName, info.ModTime(), f)
}
