package qrcode

import (
	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateLocationQR renders the note's geo URI as a PNG QR code. Scanning it
// opens the coordinate in whatever maps application the device prefers.
func (s *qrcodeService) GenerateLocationQR(note *entity.Note) ([]byte, error) {
	if !note.Located() {
		return nil, domainerrors.ErrNoteUnlocated
	}

	qrCode, err := qrcode.New(note.Location.GeoURI(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
