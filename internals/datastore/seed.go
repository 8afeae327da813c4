// file: internals/datastore/seed.go
package datastore

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	complaintmodel "feeportal_backend/internals/features/complaints/model"
	feemodel "feeportal_backend/internals/features/finance/fees/model"
	txmodel "feeportal_backend/internals/features/finance/transactions/model"
	authmodel "feeportal_backend/internals/features/users/auth/model"
	profilemodel "feeportal_backend/internals/features/users/profile/model"
)

const (
	DemoStudentID = "STU-1001"
	DemoUsername  = "john.doe"
	DemoPassword  = "password123"
)

// DemoSeed builds the demo dataset: 7 semesters of fees (1-4 settled,
// 5 partially paid), one in-progress complaint, 25 transactions and
// the demo student profile.
func DemoSeed() Seed {
	fees, semesters := demoFees()
	return Seed{
		StudentID:       DemoStudentID,
		CurrentSemester: 5,
		Semesters:       semesters,
		Fees:            fees,
		Complaints:      demoComplaints(),
		ComplaintSeq:    2,
		Profile:         demoProfile(),
		Transactions:    demoTransactions(25),
		Users:           demoUsers(),
	}
}

func demoFees() ([]*feemodel.FeeRecord, []*feemodel.Semester) {
	var fees []*feemodel.FeeRecord
	var semesters []*feemodel.Semester

	paidPast := mustTime("2023-05-10T10:00:00Z")
	paidExam := mustTime("2023-05-18T10:00:00Z")

	for i := 1; i <= 7; i++ {
		semID := fmt.Sprintf("sem%d", i)
		isPast := i < 5
		isCurrent := i == 5

		due := func(past, current, future string) string {
			if isPast {
				return past
			}
			if isCurrent {
				return current
			}
			return future
		}

		tuition := &feemodel.FeeRecord{
			ID:          semID + "_tuition",
			SemesterID:  semID,
			Code:        strings.ToUpper(semID) + "_TUITION",
			Description: fmt.Sprintf("Tuition Fee - Semester %d", i),
			Type:        feemodel.FeeTypeTuition,
			DueDate:     due("2023-05-15", "2025-11-15", "2026-05-15"),
			Amount:      6000,
			Currency:    "INR",
			Status:      feemodel.FeeStatusUnpaid,
		}
		if isPast || isCurrent {
			markPaid(tuition, paidPast, "REC_"+semID+"_TUITION")
		}

		exam := &feemodel.FeeRecord{
			ID:          semID + "_exam",
			SemesterID:  semID,
			Code:        strings.ToUpper(semID) + "_EXAM",
			Description: fmt.Sprintf("Exam Fee - Semester %d", i),
			Type:        feemodel.FeeTypeExam,
			DueDate:     due("2023-05-20", "2025-11-20", "2026-05-20"),
			Amount:      2000,
			Currency:    "INR",
			Status:      feemodel.FeeStatusUnpaid,
		}
		if isPast {
			markPaid(exam, paidExam, "REC_"+semID+"_EXAM")
		}

		bus := &feemodel.FeeRecord{
			ID:          semID + "_bus",
			SemesterID:  semID,
			Code:        strings.ToUpper(semID) + "_BUS",
			Description: fmt.Sprintf("Bus Fee - Semester %d", i),
			Type:        feemodel.FeeTypeBus,
			DueDate:     due("2023-05-15", "2025-11-15", "2026-05-15"),
			Amount:      2000,
			Currency:    "INR",
			Status:      feemodel.FeeStatusUnpaid,
		}
		if isPast {
			markPaid(bus, paidPast, "REC_"+semID+"_BUS")
		}

		fees = append(fees, tuition, exam, bus)
		semesters = append(semesters, &feemodel.Semester{
			ID:     semID,
			Title:  fmt.Sprintf("Semester %d", i),
			Number: i,
		})
	}
	return fees, semesters
}

func markPaid(f *feemodel.FeeRecord, at time.Time, receipt string) {
	f.Status = feemodel.FeeStatusPaid
	f.PaidAt = &at
	f.ReceiptID = &receipt
}

func demoComplaints() []*complaintmodel.Complaint {
	now := time.Now()
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	return []*complaintmodel.Complaint{
		{
			ID:           "CMP-2025-0001",
			StudentID:    DemoStudentID,
			Title:        "Fee receipt not reflected",
			Description:  "I paid tuition for Sem 5 but status still shows unpaid.",
			Confidential: false,
			Attachments: []complaintmodel.Attachment{
				{ID: "att-1", Name: "payment_screenshot.jpg", Size: 1024 * 500, URL: "#"},
			},
			CreatedAt:    daysAgo(5),
			UpdatedAt:    daysAgo(2),
			CurrentStage: complaintmodel.StageHA,
			Status:       complaintmodel.ComplaintStatusInProgress,
			Timeline: []complaintmodel.TimelineEntry{
				{StageID: complaintmodel.StageSubmitted, StageName: "Submitted", Actor: "Student", Timestamp: daysAgo(5)},
				{StageID: complaintmodel.StageC3, StageName: "C3 Section", Actor: "C3 Section Officer", Note: "Assigned to HA for verification", Timestamp: daysAgo(4)},
				{StageID: complaintmodel.StageHA, StageName: "HA", Actor: "Head Assistant", Note: "Under review. Checking bank statement.", Timestamp: daysAgo(2)},
			},
		},
	}
}

func demoProfile() *profilemodel.Profile {
	return &profilemodel.Profile{
		ID:        "123",
		FirstName: "John",
		LastName:  "Doe",
		RegNo:     "DTE2023001",
		Email:     "john@example.com",
		Phone:     "9876543210",
		DOB:       "2003-05-15",
		Course:    "B.Tech Computer Science",
		Year:      3,
		Address: profilemodel.Address{
			Line1:   "Room 304, Men's Hostel",
			Line2:   "College of Engineering",
			City:    "Trivandrum",
			State:   "Kerala",
			Pincode: "695016",
		},
		Bank: profilemodel.Bank{
			BankName:      "State Bank of India",
			AccountMasked: "XXXXXX1234",
			AccountLast4:  "1234",
			IFSC:          "SBIN0001234",
			LinkedPhone:   "9876543210",
			PhoneVerified: false,
		},
		EmergencyContact: profilemodel.EmergencyContact{
			Name:  "Jane Doe",
			Phone: "9876543211",
		},
		UpdatedAt: time.Now(),
	}
}

// demoTransactions generates count transactions from a fixed rand seed
// so every run (and every test) sees the same ledger.
func demoTransactions(count int) []*txmodel.Transaction {
	rng := rand.New(rand.NewSource(2025))

	types := []string{txmodel.TxTypeExamFee, txmodel.TxTypeSemFee, txmodel.TxTypeOther}
	methods := []string{txmodel.TxMethodCard, txmodel.TxMethodUPI, txmodel.TxMethodNetbank, txmodel.TxMethodWallet, txmodel.TxMethodChallan}
	statuses := []string{txmodel.TxStatusSuccess, txmodel.TxStatusPending, txmodel.TxStatusFailed}
	semesters := []string{"Semester 1", "Semester 2", "Semester 3", "Semester 4", "Semester 5"}

	now := time.Now()
	txs := make([]*txmodel.Transaction, 0, count)
	for i := 0; i < count; i++ {
		status := statuses[rng.Intn(len(statuses))]
		date := now.Add(-time.Duration(rng.Int63n(115*24*3600)) * time.Second)

		tx := &txmodel.Transaction{
			ID:            fmt.Sprintf("TXN-2025-%04d", i+1),
			Date:          date,
			Amount:        int64(rng.Intn(10000) + 500),
			Currency:      "INR",
			Type:          types[rng.Intn(len(types))],
			PaymentMethod: methods[rng.Intn(len(methods))],
			Semester:      semesters[rng.Intn(len(semesters))],
			Payer: txmodel.Payer{
				Name:      "John Doe",
				RegNo:     "DTE2023001",
				StudentID: DemoStudentID,
			},
			Status: status,
			GatewayResponse: &txmodel.GatewayResponse{
				TransactionID: fmt.Sprintf("GW-%08x", rng.Uint32()),
				ResponseCode:  "00",
				Message:       "Approved",
			},
		}
		if status == txmodel.TxStatusSuccess {
			tx.ReceiptID = fmt.Sprintf("REC-%d-%d", date.Unix(), i)
		} else {
			tx.GatewayResponse.ResponseCode = "99"
			tx.GatewayResponse.Message = "Failed"
		}

		final := "Completed"
		if status != txmodel.TxStatusSuccess {
			final = "Failed"
		}
		tx.Timeline = []txmodel.TimelineEntry{
			{Event: "Initiated", Actor: "User", Timestamp: date},
			{Event: "Processing", Actor: "System", Timestamp: date.Add(1 * time.Second)},
			{Event: final, Actor: "Gateway", Timestamp: date.Add(2 * time.Second)},
		}
		txs = append(txs, tx)
	}
	return txs
}

func demoUsers() []*authmodel.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[ERROR] seed: hash demo password: %v", err)
	}
	return []*authmodel.User{
		{ID: "123", Username: DemoUsername, Name: "John Doe", PasswordHash: string(hash)},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
