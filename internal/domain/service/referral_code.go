package service

// ReferralCodeGenerator produces candidate referral codes.
type ReferralCodeGenerator interface {
	Generate() (string, error)
}
