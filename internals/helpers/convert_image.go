// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const maxPhotoSide = 512

// ConvertProfilePhotoToWebP decodifica la foto subida (jpeg/png/webp),
// la reduce a 512px máximo por lado y la re-encodea como webp (quality 80).
func ConvertProfilePhotoToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la imagen: %w", err)
	}

	img, err := decodePhoto(raw, fileHeader)
	if err != nil {
		return nil, err
	}

	// keep aspect; Lanczos para calidad
	b := img.Bounds()
	if b.Dx() > maxPhotoSide || b.Dy() > maxPhotoSide {
		img = imaging.Fit(img, maxPhotoSide, maxPhotoSide, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decodePhoto(raw []byte, fileHeader *multipart.FileHeader) (image.Image, error) {
	ct := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "jpg"):
		return jpeg.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(raw))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(raw))
	}

	// fallback por extensión
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(raw))
	case ".png":
		return png.Decode(bytes.NewReader(raw))
	case ".webp":
		return webp.Decode(bytes.NewReader(raw))
	}
	return nil, fmt.Errorf("formato de imagen no soportado: %s / %s", ct, fileHeader.Filename)
}
