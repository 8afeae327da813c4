// file: internals/route/routes_test.go
package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"feeportal_backend/internals/configs"
	"feeportal_backend/internals/datastore"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.GatewayFailureRate = 0

	app := fiber.New()
	SetupRoutes(app, datastore.New(datastore.DemoSeed()))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": datastore.DemoUsername,
		"password": datastore.DemoPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"user"`
	}
	decode(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned empty token")
	}
	return body.Token
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "fail",
		"password": "whatever",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": datastore.DemoUsername,
		"password": "not-the-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginValidationEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "john.doe",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body struct {
		Code    int               `json:"code"`
		Status  string            `json:"status"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decode(t, resp, &body)
	if body.Code != http.StatusBadRequest || body.Status != "error" {
		t.Errorf("envelope = %+v", body)
	}
	if body.Errors["Password"] != "required" {
		t.Errorf("errors = %v, want Password:required", body.Errors)
	}
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/user/fees",
		"/api/transactions",
		"/api/complaints",
		"/api/user/me",
	} {
		resp := doJSON(t, app, "GET", path, "", nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s without token: status = %d, want 401", path, resp.StatusCode)
		}
	}

	resp := doJSON(t, app, "GET", "/api/user/fees", "garbage.token.here", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", resp.StatusCode)
	}
}

func TestFeesSnapshotWithToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "GET", "/api/user/fees", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var snap struct {
		StudentID string `json:"studentId"`
		Semesters []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"semesters"`
		Fees []struct {
			ID string `json:"id"`
		} `json:"fees"`
	}
	decode(t, resp, &snap)
	if snap.StudentID != datastore.DemoStudentID {
		t.Errorf("studentId = %q", snap.StudentID)
	}
	if len(snap.Semesters) != 7 {
		t.Errorf("semesters = %d, want 7", len(snap.Semesters))
	}
	if len(snap.Fees) == 0 {
		t.Error("fees list is empty")
	}
}

func TestPayThenReceiptFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	// Find an unpaid fee in the seed.
	resp := doJSON(t, app, "GET", "/api/user/fees", token, nil)
	var snap struct {
		Fees []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"fees"`
	}
	decode(t, resp, &snap)

	var unpaid string
	for _, f := range snap.Fees {
		if f.Status == "UNPAID" {
			unpaid = f.ID
			break
		}
	}
	if unpaid == "" {
		t.Fatal("seed has no unpaid fee")
	}

	// Receipt before payment is a 404.
	resp = doJSON(t, app, "GET", "/api/payments/"+unpaid+"/receipt", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("receipt before pay: status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/payments/pay", token, fiber.Map{
		"feeId":  unpaid,
		"method": "UPI",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pay: status = %d, want 200", resp.StatusCode)
	}
	var result struct {
		PaymentID     string   `json:"paymentId"`
		FeeIDsUpdated []string `json:"feeIdsUpdated"`
		Status        string   `json:"status"`
	}
	decode(t, resp, &result)
	if result.Status != "SUCCESS" {
		t.Errorf("pay status = %q, want SUCCESS", result.Status)
	}
	if len(result.FeeIDsUpdated) != 1 || result.FeeIDsUpdated[0] != unpaid {
		t.Errorf("feeIdsUpdated = %v, want [%s]", result.FeeIDsUpdated, unpaid)
	}
	if !strings.HasPrefix(result.PaymentID, "PAY_") {
		t.Errorf("paymentId = %q", result.PaymentID)
	}

	resp = doJSON(t, app, "GET", "/api/payments/"+unpaid+"/receipt", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt after pay: status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	defer resp.Body.Close()
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("receipt body is not a PDF")
	}
}

func TestPayRejectsEmptyTarget(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "POST", "/api/payments/pay", token, fiber.Map{
		"method": "UPI",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestComplaintLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "POST", "/api/complaints", token, fiber.Map{
		"title":       "Bus fee charged twice",
		"description": "Semester 5 bus fee shows duplicate entries.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID           string `json:"id"`
		CurrentStage string `json:"currentStage"`
		Status       string `json:"status"`
	}
	decode(t, resp, &created)
	if created.CurrentStage != "submitted" || created.Status != "OPEN" {
		t.Errorf("created = %+v", created)
	}

	resp = doJSON(t, app, "POST", "/api/complaints/"+created.ID+"/escalate", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("escalate: status = %d, want 200", resp.StatusCode)
	}
	var escalated struct {
		CurrentStage string `json:"currentStage"`
		Status       string `json:"status"`
	}
	decode(t, resp, &escalated)
	if escalated.CurrentStage != "c3" || escalated.Status != "IN_PROGRESS" {
		t.Errorf("escalated = %+v", escalated)
	}

	resp = doJSON(t, app, "POST", "/api/complaints/"+created.ID+"/comment", token, fiber.Map{
		"note": "Please expedite.",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("comment: status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/complaints/"+created.ID+"/comment", token, fiber.Map{
		"note": "   ",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank comment: status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/complaints/CMP-1999-0000/escalate", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown escalate: status = %d, want 404", resp.StatusCode)
	}
}

func TestVerificationFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "POST", "/api/verify/send", token, fiber.Map{
		"field":    "email",
		"newValue": "new@example.com",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send: status = %d, want 200", resp.StatusCode)
	}
	var sent struct {
		VerificationID string `json:"verificationId"`
		MockOTP        string `json:"mockOtp"`
	}
	decode(t, resp, &sent)
	if sent.VerificationID == "" || sent.MockOTP == "" {
		t.Fatalf("send body = %+v", sent)
	}

	resp = doJSON(t, app, "POST", "/api/verify/confirm", token, fiber.Map{
		"verificationId": sent.VerificationID,
		"otp":            "000000",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("wrong otp: status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/verify/confirm", token, fiber.Map{
		"verificationId": sent.VerificationID,
		"otp":            sent.MockOTP,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm: status = %d, want 200", resp.StatusCode)
	}
	var confirmed struct {
		Verified       bool `json:"verified"`
		UpdatedProfile struct {
			Email string `json:"email"`
		} `json:"updatedProfile"`
	}
	decode(t, resp, &confirmed)
	if !confirmed.Verified || confirmed.UpdatedProfile.Email != "new@example.com" {
		t.Errorf("confirm body = %+v", confirmed)
	}

	resp = doJSON(t, app, "POST", "/api/verify/confirm", token, fiber.Map{
		"verificationId": sent.VerificationID,
		"otp":            sent.MockOTP,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("replayed confirm: status = %d, want 404", resp.StatusCode)
	}
}

func TestTransactionsListAndExport(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "GET", "/api/transactions?page=1&limit=5", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status = %d, want 200", resp.StatusCode)
	}
	var page struct {
		Total        int `json:"total"`
		Limit        int `json:"limit"`
		Transactions []struct {
			ID string `json:"id"`
		} `json:"transactions"`
	}
	decode(t, resp, &page)
	if page.Total != 25 {
		t.Errorf("total = %d, want 25", page.Total)
	}
	if len(page.Transactions) != 5 {
		t.Errorf("items = %d, want 5", len(page.Transactions))
	}

	resp = doJSON(t, app, "POST", "/api/transactions/export", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 26 {
		t.Errorf("csv lines = %d, want 26 (header + 25 rows)", len(lines))
	}
}

func TestChangePasswordUsesTokenIdentity(t *testing.T) {
	app := newTestApp(t)

	// Well-formed token for a user id the store does not hold: the
	// middleware lets it through, the password change must not land.
	claims := jwt.MapClaims{
		"id":        "999",
		"user_name": "Ghost",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, "POST", "/api/user/change-password", token, fiber.Map{
		"oldPassword": datastore.DemoPassword,
		"newPassword": "brand-new-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unknown user id: status = %d, want 401", resp.StatusCode)
	}

	// The seeded user's password is untouched.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": datastore.DemoUsername,
		"password": datastore.DemoPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("login after rejected change: status = %d, want 200", resp.StatusCode)
	}
}

func TestChangePassword(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	resp := doJSON(t, app, "POST", "/api/user/change-password", token, fiber.Map{
		"oldPassword": "wrong-password",
		"newPassword": "brand-new-pass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong old password: status = %d, want 401", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/api/user/change-password", token, fiber.Map{
		"oldPassword": datastore.DemoPassword,
		"newPassword": "brand-new-pass",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("change: status = %d, want 200", resp.StatusCode)
	}

	// Old password no longer logs in; the new one does.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": datastore.DemoUsername,
		"password": datastore.DemoPassword,
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("old password after change: status = %d, want 401", resp.StatusCode)
	}
	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": datastore.DemoUsername,
		"password": "brand-new-pass",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("new password: status = %d, want 200", resp.StatusCode)
	}
}
