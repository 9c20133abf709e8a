package usecase

import (
	"strings"

	"bands-console/internal/domain"

	"github.com/gabriel-vasile/mimetype"
)

// MaxPhotoSize: максимальный размер фото профиля.
const MaxPhotoSize = 5 << 20

var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// inspectPhoto определяет тип фото по содержимому, а не по заголовку клиента.
func inspectPhoto(file domain.PhotoFile) (domain.PhotoFile, error) {
	if len(file.Data) == 0 {
		return file, domain.ErrUnsupportedPhoto
	}
	if len(file.Data) > MaxPhotoSize {
		return file, domain.ErrPhotoTooLarge
	}

	mt := mimetype.Detect(file.Data)
	if !mimetype.EqualsAny(mt.String(), allowedPhotoTypes...) {
		return file, domain.ErrUnsupportedPhoto
	}

	file.ContentType = mt.String()
	if strings.TrimSpace(file.FileName) == "" {
		file.FileName = "photo" + mt.Extension()
	}
	return file, nil
}
