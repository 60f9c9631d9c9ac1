package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateBusinessQR renders a PNG QR code encoding the public
	// detail-page URL of a business.
	GenerateBusinessQR(businessID string) ([]byte, error)
}
