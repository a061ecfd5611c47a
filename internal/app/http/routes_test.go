package routes_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Brysonmah/elitetips-2025/config"
	"github.com/Brysonmah/elitetips-2025/database"
	billingapi "github.com/Brysonmah/elitetips-2025/internal/api/billing"
	routes "github.com/Brysonmah/elitetips-2025/internal/app/http"
	"github.com/Brysonmah/elitetips-2025/internal/domain/access"
	"github.com/Brysonmah/elitetips-2025/internal/domain/billing"
	"github.com/Brysonmah/elitetips-2025/internal/domain/predictions"
	"github.com/Brysonmah/elitetips-2025/internal/domain/users"
	"github.com/Brysonmah/elitetips-2025/internal/infra/paystack"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const testSecretKey = "sk_test_secret"

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-jwt-secret"
	config.PAYSTACK_SECRET_KEY = testSecretKey
	config.PAYSTACK_PUBLIC_KEY = "pk_test_public"
	access.Load("brysonmah1@gmail.com")

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "elitetips.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&users.User{}, &predictions.Prediction{}, &billing.Receipt{}, &billing.PaymentEvent{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

// fakePaystack serves initialize and verify for a single transaction whose
// settled state and paying customer the test controls.
func fakePaystack(t *testing.T, reference, status string, amountMinor int64, customerEmail string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/transaction/initialize":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": true,
				"data": map[string]interface{}{
					"authorization_url": "https://checkout.paystack.com/" + reference,
					"access_code":       "ac_" + reference,
					"reference":         reference,
				},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/transaction/verify/"+reference:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": true,
				"data": map[string]interface{}{
					"status":    status,
					"reference": reference,
					"amount":    amountMinor,
					"currency":  "KES",
					"paid_at":   "2025-06-01T12:00:00Z",
					"customer":  map[string]interface{}{"email": customerEmail},
				},
			})
		default:
			t.Errorf("unexpected paystack call: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func request(r *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Signup, pay tier 50, read predictions: the whole subscriber journey.
func TestSubscriberJourney(t *testing.T) {
	r := setup(t)
	ps := fakePaystack(t, "ref-journey", "success", 5000, "newuser@example.com")
	defer ps.Close()
	billingapi.Init(paystack.NewWithBaseURL(testSecretKey, ps.URL))

	database.DB.Create(&predictions.Prediction{Match: "Arsenal vs Chelsea", Tip: "Over 2.5"})

	// Sign up: logged in immediately, no entitlement touched.
	w := request(r, http.MethodPost, "/register", "", []byte(`{"email":"newuser@example.com","password":"passw0rd123"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil || session.Token == "" {
		t.Fatalf("expected session token, got %s", w.Body.String())
	}

	// Fresh account is unpaid and gated.
	w = request(r, http.MethodGet, "/entitlement", session.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("entitlement failed: %d", w.Code)
	}
	var ent struct {
		HasPaid bool `json:"has_paid"`
		IsAdmin bool `json:"is_admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ent); err != nil {
		t.Fatalf("failed to decode entitlement: %v", err)
	}
	if ent.HasPaid || ent.IsAdmin {
		t.Fatalf("fresh signup must be unpaid non-admin: %+v", ent)
	}
	if w = request(r, http.MethodGet, "/predictions", session.Token, nil); w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected gated predictions, got %d", w.Code)
	}

	// Start checkout at tier 50.
	w = request(r, http.MethodPost, "/checkout", session.Token, []byte(`{"amount_kes":50}`))
	if w.Code != http.StatusOK {
		t.Fatalf("checkout failed: %d %s", w.Code, w.Body.String())
	}
	var checkout struct {
		Reference string `json:"reference"`
		PublicKey string `json:"public_key"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &checkout); err != nil || checkout.Reference == "" {
		t.Fatalf("expected checkout reference, got %s", w.Body.String())
	}
	if checkout.PublicKey != "pk_test_public" {
		t.Fatalf("widget needs the public key, got %q", checkout.PublicKey)
	}

	// Widget succeeded; verify writes the receipt.
	w = request(r, http.MethodGet, "/payments/verify?reference="+checkout.Reference, session.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify failed: %d %s", w.Code, w.Body.String())
	}

	var receipt billing.Receipt
	if err := database.DB.First(&receipt, "email = ?", "newuser@example.com").Error; err != nil {
		t.Fatalf("expected receipt after verify: %v", err)
	}
	if receipt.AmountKES != 50 {
		t.Fatalf("expected tier 50 receipt, got %d", receipt.AmountKES)
	}

	// Entitled now; predictions visible and matching store contents.
	w = request(r, http.MethodGet, "/entitlement", session.Token, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &ent); err != nil || !ent.HasPaid {
		t.Fatalf("expected entitlement after payment, got %s", w.Body.String())
	}

	w = request(r, http.MethodGet, "/predictions", session.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected predictions after payment, got %d", w.Code)
	}
	var list struct {
		Predictions []predictions.Prediction `json:"predictions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode predictions: %v", err)
	}
	if len(list.Predictions) != 1 || list.Predictions[0].Match != "Arsenal vs Chelsea" {
		t.Fatalf("predictions must match store contents: %+v", list.Predictions)
	}
}

func TestCheckoutRejectsUnknownTier(t *testing.T) {
	r := setup(t)

	w := request(r, http.MethodPost, "/register", "", []byte(`{"email":"x@example.com","password":"passw0rd123"}`))
	var session struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &session)

	w = request(r, http.MethodPost, "/checkout", session.Token, []byte(`{"amount_kes":42}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for off-menu amount, got %d", w.Code)
	}
}

func TestVerifyFailedPaymentWritesNothing(t *testing.T) {
	r := setup(t)
	ps := fakePaystack(t, "ref-closed", "abandoned", 5000, "newuser@example.com")
	defer ps.Close()
	billingapi.Init(paystack.NewWithBaseURL(testSecretKey, ps.URL))

	w := request(r, http.MethodPost, "/register", "", []byte(`{"email":"newuser@example.com","password":"passw0rd123"}`))
	var session struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &session)

	w = request(r, http.MethodGet, "/payments/verify?reference=ref-closed", session.Token, nil)
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402 for uncaptured payment, got %d", w.Code)
	}

	var receipts int64
	database.DB.Model(&billing.Receipt{}).Count(&receipts)
	if receipts != 0 {
		t.Fatalf("closed widget must not produce a receipt, found %d", receipts)
	}
}

func TestVerifySomeoneElsesReferenceWritesNothing(t *testing.T) {
	r := setup(t)
	// The charge belongs to alice; the session asking is not hers.
	ps := fakePaystack(t, "ref-alice", "success", 5000, "alice@example.com")
	defer ps.Close()
	billingapi.Init(paystack.NewWithBaseURL(testSecretKey, ps.URL))

	w := request(r, http.MethodPost, "/register", "", []byte(`{"email":"mallory@example.com","password":"passw0rd123"}`))
	var session struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &session)

	w = request(r, http.MethodGet, "/payments/verify?reference=ref-alice", session.Token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a charge owned by another account, got %d: %s", w.Code, w.Body.String())
	}

	var receipts int64
	database.DB.Model(&billing.Receipt{}).Count(&receipts)
	if receipts != 0 {
		t.Fatalf("foreign reference must not produce a receipt, found %d", receipts)
	}

	// The reference stays unclaimed, so alice's own capture still lands.
	if err := billing.RecordCapture(database.DB, "alice@example.com", "ref-alice", 50, time.Now()); err != nil {
		t.Fatalf("capture for the real payer failed: %v", err)
	}
	var receipt billing.Receipt
	if err := database.DB.First(&receipt, "email = ?", "alice@example.com").Error; err != nil {
		t.Fatalf("expected alice to end up entitled: %v", err)
	}
	if receipt.AmountKES != 50 {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
}

func signWebhook(body []byte) string {
	mac := hmac.New(sha512.New, []byte(testSecretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookChargeSuccess(t *testing.T) {
	r := setup(t)

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-hook","amount":2000,"currency":"KES","paid_at":"2025-06-01T12:00:00Z","customer":{"email":"hooked@example.com"}}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", signWebhook(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var receipt billing.Receipt
	if err := database.DB.First(&receipt, "email = ?", "hooked@example.com").Error; err != nil {
		t.Fatalf("expected receipt from webhook: %v", err)
	}
	if receipt.AmountKES != 20 || receipt.Reference != "ref-hook" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	r := setup(t)

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-forged","amount":2000,"currency":"KES","customer":{"email":"forged@example.com"}}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", "deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var receipts int64
	database.DB.Model(&billing.Receipt{}).Count(&receipts)
	if receipts != 0 {
		t.Fatalf("forged webhook must not write, found %d receipts", receipts)
	}
}

func TestWebhookRejectsOversizedBody(t *testing.T) {
	r := setup(t)

	body := bytes.Repeat([]byte("a"), 70000)
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", signWebhook(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized body, got %d", w.Code)
	}
}

func TestWebhookIgnoresUnknownEvents(t *testing.T) {
	r := setup(t)

	body := []byte(`{"event":"transfer.success","data":{}}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook/paystack", bytes.NewReader(body))
	req.Header.Set("x-paystack-signature", signWebhook(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unknown events must be acknowledged, got %d", w.Code)
	}
}
