// file: internals/features/users/profile/model/profile_model.go
package model

import "time"

type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Bank struct {
	BankName      string `json:"bankName"`
	AccountMasked string `json:"accountMasked"`
	AccountLast4  string `json:"accountLast4"`
	IFSC          string `json:"ifsc"`
	LinkedPhone   string `json:"linkedPhone"`
	PhoneVerified bool   `json:"phoneVerified"`
}

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Profile struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	RegNo            string           `json:"regNo"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	DOB              string           `json:"dob"`
	Course           string           `json:"course"`
	Year             int              `json:"year"`
	Address          Address          `json:"address"`
	Bank             Bank             `json:"bank"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
