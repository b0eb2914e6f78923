package service

// QRCodeService renders QR codes as PNG images.
type QRCodeService interface {
	// GenerateReferralQR encodes a referral sign-up link.
	GenerateReferralQR(link string) ([]byte, error)
}
