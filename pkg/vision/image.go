package vision

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"
)

// EncodeImageBase64 encodes an image to base64 JPEG format.
func EncodeImageBase64(img image.Image) (string, error) {
	var buf bytes.Buffer

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeBytesBase64 encodes already-compressed image bytes to base64.
func EncodeBytesBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// MIMETypeForPath returns the image MIME type for a file path.
// Only JPEG and PNG are accepted.
func MIMETypeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	}
	return "", fmt.Errorf("vision: unsupported image extension %q", filepath.Ext(path))
}
