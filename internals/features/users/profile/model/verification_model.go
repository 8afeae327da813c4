// file: internals/features/users/profile/model/verification_model.go
package model

import "time"

/* ===================== Updatable field targets ===================== */
/* Sensitive profile fields may only change through a confirmed OTP
   verification. The wire format uses dot-paths ("bank.linkedPhone");
   internally each path maps onto an explicit target with a typed
   setter so there is no dynamic field indexing. */

type Field string

const (
	FieldEmail             Field = "email"
	FieldPhone             Field = "phone"
	FieldBankLinkedPhone   Field = "bank.linkedPhone"
	FieldBankPhoneVerified Field = "bank.phoneVerified"
	FieldAddressLine1      Field = "address.line1"
	FieldAddressLine2      Field = "address.line2"
	FieldAddressCity       Field = "address.city"
	FieldAddressState      Field = "address.state"
	FieldAddressPincode    Field = "address.pincode"
	FieldEmergencyName     Field = "emergencyContact.name"
	FieldEmergencyPhone    Field = "emergencyContact.phone"
)

var fields = map[Field]struct{}{
	FieldEmail:             {},
	FieldPhone:             {},
	FieldBankLinkedPhone:   {},
	FieldBankPhoneVerified: {},
	FieldAddressLine1:      {},
	FieldAddressLine2:      {},
	FieldAddressCity:       {},
	FieldAddressState:      {},
	FieldAddressPincode:    {},
	FieldEmergencyName:     {},
	FieldEmergencyPhone:    {},
}

// ParseField validates a wire dot-path against the known targets.
func ParseField(s string) (Field, bool) {
	f := Field(s)
	_, ok := fields[f]
	return f, ok
}

// Apply writes value onto the profile field this target names.
// Confirming the bank-linked phone also marks it verified.
func (f Field) Apply(p *Profile, value string) {
	switch f {
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldBankLinkedPhone:
		p.Bank.LinkedPhone = value
		p.Bank.PhoneVerified = true
	case FieldBankPhoneVerified:
		p.Bank.PhoneVerified = true
	case FieldAddressLine1:
		p.Address.Line1 = value
	case FieldAddressLine2:
		p.Address.Line2 = value
	case FieldAddressCity:
		p.Address.City = value
	case FieldAddressState:
		p.Address.State = value
	case FieldAddressPincode:
		p.Address.Pincode = value
	case FieldEmergencyName:
		p.EmergencyContact.Name = value
	case FieldEmergencyPhone:
		p.EmergencyContact.Phone = value
	}
}

/* ===================== Verification request ===================== */

// VerificationRequest is a single-use, time-boxed OTP challenge gating
// one sensitive profile mutation. Expired requests are never reaped;
// they are only rejected on a late confirm.
type VerificationRequest struct {
	VerificationID string    `json:"verificationId"`
	Field          Field     `json:"field"`
	NewValue       string    `json:"newValue"`
	OTP            string    `json:"-"`
	ExpiresAt      time.Time `json:"expiresAt"`
}
