// file: internals/features/users/profile/service/verification_broker.go
package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/profile/model"
)

var (
	ErrVerificationNotFound = errors.New("verification request not found")
	ErrInvalidCode          = errors.New("invalid otp")
	ErrExpired              = errors.New("otp expired")
	ErrUnknownField         = errors.New("unknown profile field")
)

// DefaultOTPTTL is the fixed expiry horizon of a verification request.
const DefaultOTPTTL = 5 * time.Minute

/* =======================================================================
   Broker
======================================================================= */
/* Broker issues short-lived OTP challenges for sensitive profile
   fields and applies the pending value on a successful confirm.
   Requests are single-use: a consumed id is gone, so replaying the
   confirm fails with not-found. Expired requests are never swept;
   they just fail when confirmed too late. */

type Broker struct {
	Store *datastore.Store
	TTL   time.Duration
	Now   func() time.Time
	OTP   func() string
}

func NewBroker(store *datastore.Store) *Broker {
	return &Broker{
		Store: store,
		TTL:   DefaultOTPTTL,
		Now:   time.Now,
		OTP:   randomOTP,
	}
}

func randomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1_000_000))
}

type InitiateResult struct {
	VerificationID string
	OTP            string
}

// Initiate registers a pending update for field and returns the
// challenge. The OTP is returned so the demo transport can expose it;
// a real deployment would send it out of band instead.
func (b *Broker) Initiate(field, newValue string) (*InitiateResult, error) {
	target, ok := model.ParseField(field)
	if !ok {
		return nil, ErrUnknownField
	}

	b.Store.Lock()
	defer b.Store.Unlock()

	req := &model.VerificationRequest{
		VerificationID: "VER-" + uuid.NewString(),
		Field:          target,
		NewValue:       newValue,
		OTP:            b.OTP(),
		ExpiresAt:      b.Now().Add(b.TTL),
	}
	b.Store.Verifications[req.VerificationID] = req
	return &InitiateResult{VerificationID: req.VerificationID, OTP: req.OTP}, nil
}

// Confirm checks the code and, if it matches before expiry, applies
// the pending value to the profile and consumes the request. A wrong
// code leaves the request intact for another attempt.
func (b *Broker) Confirm(verificationID, otp string) (*model.Profile, error) {
	b.Store.Lock()
	defer b.Store.Unlock()

	req, ok := b.Store.Verifications[verificationID]
	if !ok {
		return nil, ErrVerificationNotFound
	}
	if req.OTP != otp {
		return nil, ErrInvalidCode
	}
	if b.Now().After(req.ExpiresAt) {
		return nil, ErrExpired
	}

	req.Field.Apply(b.Store.Profile, req.NewValue)
	b.Store.Profile.UpdatedAt = b.Now()
	delete(b.Store.Verifications, verificationID)

	cp := *b.Store.Profile
	return &cp, nil
}
