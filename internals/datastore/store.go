// file: internals/datastore/store.go
package datastore

import (
	"fmt"
	"sync"

	complaintmodel "feeportal_backend/internals/features/complaints/model"
	feemodel "feeportal_backend/internals/features/finance/fees/model"
	txmodel "feeportal_backend/internals/features/finance/transactions/model"
	authmodel "feeportal_backend/internals/features/users/auth/model"
	profilemodel "feeportal_backend/internals/features/users/profile/model"
)

/* =======================================================================
   Store
======================================================================= */
/* One Store owns every collection the portal serves. It is built per
   process (and per test), never package-level, so runs cannot leak
   state into each other. Callers take the lock around any read or
   mutation; the payment/idempotence guarantees rely on it once Fiber
   serves requests concurrently. */

type Store struct {
	mu sync.Mutex

	StudentID       string
	CurrentSemester int

	Semesters []*feemodel.Semester
	Fees      []*feemodel.FeeRecord

	Complaints   []*complaintmodel.Complaint
	complaintSeq int

	Profile       *profilemodel.Profile
	Verifications map[string]*profilemodel.VerificationRequest

	Transactions []*txmodel.Transaction

	Users []*authmodel.User
}

type Seed struct {
	StudentID       string
	CurrentSemester int
	Semesters       []*feemodel.Semester
	Fees            []*feemodel.FeeRecord
	Complaints      []*complaintmodel.Complaint
	ComplaintSeq    int
	Profile         *profilemodel.Profile
	Transactions    []*txmodel.Transaction
	Users           []*authmodel.User
}

func New(seed Seed) *Store {
	s := &Store{
		StudentID:       seed.StudentID,
		CurrentSemester: seed.CurrentSemester,
		Semesters:       seed.Semesters,
		Fees:            seed.Fees,
		Complaints:      seed.Complaints,
		complaintSeq:    seed.ComplaintSeq,
		Profile:         seed.Profile,
		Verifications:   map[string]*profilemodel.VerificationRequest{},
		Transactions:    seed.Transactions,
		Users:           seed.Users,
	}
	if s.complaintSeq < 1 {
		s.complaintSeq = 1
	}
	return s
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

/* ===================== Lookups (caller holds the lock) ===================== */

func (s *Store) FeeByID(id string) *feemodel.FeeRecord {
	for _, f := range s.Fees {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (s *Store) ComplaintByID(id string) *complaintmodel.Complaint {
	for _, c := range s.Complaints {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) TransactionByID(id string) *txmodel.Transaction {
	for _, t := range s.Transactions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) UserByID(id string) *authmodel.User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) UserByUsername(username string) *authmodel.User {
	for _, u := range s.Users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// NextComplaintID issues the next id in the year-coded CMP-YYYY-NNNN
// sequence. Caller holds the lock.
func (s *Store) NextComplaintID(year int) string {
	id := fmt.Sprintf("CMP-%d-%04d", year, s.complaintSeq)
	s.complaintSeq++
	return id
}
