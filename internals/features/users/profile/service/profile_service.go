// file: internals/features/users/profile/service/profile_service.go
package service

import (
	"time"

	"feeportal_backend/internals/datastore"
	"feeportal_backend/internals/features/users/profile/model"
)

/* =======================================================================
   ProfileService
======================================================================= */
/* Direct profile reads and writes. Only non-sensitive fields go
   through here; email, phone and bank details change exclusively via
   the verification broker. */

type ProfileService struct {
	Store *datastore.Store
	Now   func() time.Time
}

func NewProfileService(store *datastore.Store) *ProfileService {
	return &ProfileService{Store: store, Now: time.Now}
}

func (s *ProfileService) Get() *model.Profile {
	s.Store.Lock()
	defer s.Store.Unlock()

	cp := *s.Store.Profile
	return &cp
}

// UpdateInput carries the updatable non-sensitive fields. Nil means
// "leave unchanged".
type UpdateInput struct {
	FirstName        *string
	LastName         *string
	DOB              *string
	Course           *string
	Year             *int
	Address          *model.Address
	EmergencyContact *model.EmergencyContact
}

func (s *ProfileService) Update(in UpdateInput) *model.Profile {
	s.Store.Lock()
	defer s.Store.Unlock()

	p := s.Store.Profile
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.DOB != nil {
		p.DOB = *in.DOB
	}
	if in.Course != nil {
		p.Course = *in.Course
	}
	if in.Year != nil {
		p.Year = *in.Year
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.EmergencyContact != nil {
		p.EmergencyContact = *in.EmergencyContact
	}
	p.UpdatedAt = s.Now()

	cp := *p
	return &cp
}
