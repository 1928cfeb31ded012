package models

// QRCode is a freshly issued QR code pointing at a pending transaction
// swagger:model QRCode
type QRCode struct {
	// Store identifier of the placeholder transaction
	// example: 3f6c1d0e-8a55-4c1b-9f0e-2b7c4c2a9d11
	TransactionID string `json:"transactionId"`

	// Customer-facing reference
	// example: LC-PST-20250101-093015-K3F9QZ
	Reference string `json:"reference"`

	// URL encoded in the QR code
	// example: https://app.qr-drive.uk/t/3f6c1d0e-8a55-4c1b-9f0e-2b7c4c2a9d11?ref=LC-PST-20250101-093015-K3F9QZ
	TransactionURL string `json:"transactionUrl"`

	// PNG image as a data URL
	// example: data:image/png;base64,iVBORw0KGgo...
	QRCodeDataURL string `json:"qrCodeDataUrl"`

	// Seconds until the reference expires and the display should rotate
	// example: 120
	ExpiresIn int `json:"expiresIn"`
}
