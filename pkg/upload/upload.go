package upload

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// MaxFileSize caps each uploaded image at 5MB
	MaxFileSize = 5 * 1024 * 1024
	// MaxProductFiles caps product uploads at 4 files per request
	MaxProductFiles = 4

	baseDir         = "uploads"
	shopLogoDir     = "uploads/shop-logos"
	productImageDir = "uploads/product-images"
)

var (
	ErrFileTooLarge = errors.New("File too large. Maximum size is 5MB")
	ErrInvalidType  = errors.New("Only image files are allowed (jpeg, jpg, png, gif, webp)")
	ErrTooManyFiles = errors.New("Too many files. Maximum 4 images allowed")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// EnsureDirs creates the upload directory tree if it does not exist
func EnsureDirs() error {
	for _, dir := range []string{baseDir, shopLogoDir, productImageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// ValidateImage checks size, extension and declared content type of an upload
func ValidateImage(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrInvalidType
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !allowedMimeTypes[contentType] {
		return ErrInvalidType
	}
	return nil
}

// Filename builds a unique stored name for an upload, keeping its extension
func Filename(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return prefix + "-" + uuid.New().String() + ext
}

// SaveShopLogo validates and stores a shop logo, returning its public URL path
func SaveShopLogo(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := ValidateImage(file); err != nil {
		return "", err
	}
	name := Filename("shop-logo", file.Filename)
	if err := c.SaveFile(file, filepath.Join(shopLogoDir, name)); err != nil {
		return "", err
	}
	return "/uploads/shop-logos/" + name, nil
}

// SaveProductImages validates and stores up to MaxProductFiles product
// images, returning their public URL paths in upload order
func SaveProductImages(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxProductFiles {
		return nil, ErrTooManyFiles
	}
	for _, file := range files {
		if err := ValidateImage(file); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		name := Filename("product-image", file.Filename)
		if err := c.SaveFile(file, filepath.Join(productImageDir, name)); err != nil {
			// Stored files from earlier iterations become orphans; the
			// database has no reference to them yet, so remove what we can.
			for _, url := range urls {
				Remove(url)
			}
			return nil, err
		}
		urls = append(urls, "/uploads/product-images/"+name)
	}
	return urls, nil
}

// Remove deletes a stored upload by its public URL path, best effort. A
// failure is logged and swallowed: a stale file on disk is preferable to
// failing the request that replaced it.
func Remove(urlPath string) {
	if urlPath == "" {
		return
	}
	rel := strings.TrimPrefix(urlPath, "/")
	if !strings.HasPrefix(rel, baseDir+"/") {
		return
	}
	if err := os.Remove(filepath.FromSlash(rel)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", rel).Warn("failed to remove uploaded file")
	}
}
