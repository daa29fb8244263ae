package upload

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateImage_AcceptsAllowedTypes(t *testing.T) {
	for _, name := range []string{"photo.jpg", "photo.jpeg", "photo.PNG", "anim.gif", "modern.webp"} {
		assert.NoError(t, ValidateImage(fileHeader(name, "", 1024)), name)
	}
}

func TestValidateImage_RejectsWrongExtension(t *testing.T) {
	err := ValidateImage(fileHeader("document.pdf", "", 1024))
	assert.ErrorIs(t, err, ErrInvalidType)

	err = ValidateImage(fileHeader("noextension", "", 1024))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidateImage_RejectsWrongContentType(t *testing.T) {
	// Image extension but non-image declared type
	err := ValidateImage(fileHeader("sneaky.png", "application/octet-stream", 1024))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestValidateImage_RejectsOversized(t *testing.T) {
	err := ValidateImage(fileHeader("big.png", "image/png", MaxFileSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	assert.NoError(t, ValidateImage(fileHeader("exact.png", "image/png", MaxFileSize)))
}

func TestFilename_KeepsExtensionAndPrefix(t *testing.T) {
	name := Filename("shop-logo", "My Photo.JPG")
	assert.True(t, strings.HasPrefix(name, "shop-logo-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// Names must be unique per call
	other := Filename("shop-logo", "My Photo.JPG")
	require.NotEqual(t, name, other)
}

func TestRemove_IgnoresPathsOutsideUploads(t *testing.T) {
	// Must not attempt deletion outside the uploads tree; these calls simply
	// return without touching the filesystem
	Remove("/etc/passwd")
	Remove("../secret")
	Remove("")
}
