package service

import "geonote/internal/domain/entity"

// QRCodeService renders a located note's coordinate as a scannable QR image,
// used for handing a note's position off to an external maps application.
type QRCodeService interface {
	// GenerateLocationQR returns a PNG QR code encoding the note's geo URI.
	GenerateLocationQR(note *entity.Note) ([]byte, error)
}
