package service

// QRCodeService renders share links as QR images.
type QRCodeService interface {
	// GenerateLinkQR encodes the given URL into a PNG QR code.
	GenerateLinkQR(link string) ([]byte, error)
}
