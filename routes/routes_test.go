package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/plantas-api/auth"
	checkoutControllers "github.com/junaidrashid-git/plantas-api/controllers/checkout"
	leadControllers "github.com/junaidrashid-git/plantas-api/controllers/lead"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "routes-secret"

type fakeCatalog struct {
	claims map[string]any
}

func (f *fakeCatalog) FindByIDs(_ context.Context, ids []string, claims map[string]any) ([]models.Project, error) {
	f.claims = claims
	var out []models.Project
	for _, id := range ids {
		if id == "p1" {
			out = append(out, models.Project{ID: "p1", Title: "Casa", Code: "CT-1", Price: 100})
		}
	}
	return out, nil
}

type fakeProcessor struct{}

func (fakeProcessor) CreateSession(context.Context, *payment.SessionRequest) (*payment.Session, error) {
	return &payment.Session{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
}

func newEngine(t *testing.T, catalog *fakeCatalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, Deps{
		Log:               zap.NewNop(),
		CORSAllowedOrigin: "*",
		JWTSecret:         testSecret,
		AdminAPIKey:       "admin-key",
		UploadsDir:        t.TempDir(),
		Checkout: checkoutControllers.NewService(checkoutControllers.Config{
			Catalog:          catalog,
			Processor:        fakeProcessor{},
			DefaultReturnURL: "https://plantas.example",
		}),
		WebhookVerifier: payment.StripeWebhookVerifier("whsec_test"),
		LeadFeed:        leadControllers.NewHub(zap.NewNop()),
		Tokens:          auth.NewTokenIssuer(testSecret),
	})
	return r
}

func do(r http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedGroupsRejectAnonymousCallers(t *testing.T) {
	r := newEngine(t, &fakeCatalog{})

	tests := []struct {
		method, path string
	}{
		{http.MethodGet, "/user"},
		{http.MethodGet, "/user/favorites"},
		{http.MethodPost, "/user/favorites/p1"},
		{http.MethodGet, "/admin/projects"},
		{http.MethodGet, "/admin/leads/export-excel"},
		{http.MethodPost, "/admin/admin-management/approve"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(r, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestCheckoutPreflight(t *testing.T) {
	r := newEngine(t, &fakeCatalog{})
	w := do(r, http.MethodOptions, "/checkout/session", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCheckoutIsOpenToGuests(t *testing.T) {
	catalog := &fakeCatalog{}
	r := newEngine(t, catalog)

	w := do(r, http.MethodPost, "/checkout/session", `{"items":[{"id":"p1"}]}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://pay.example/cs_1", body["url"])
	assert.Empty(t, catalog.claims)
}

func TestCheckoutForwardsCallerClaims(t *testing.T) {
	catalog := &fakeCatalog{}
	r := newEngine(t, catalog)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-9",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := do(r, http.MethodPost, "/checkout/session", `{"items":[{"id":"p1"}]}`,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "user-9", catalog.claims["sub"])
}

func TestWebhookRejectsUnsignedPayload(t *testing.T) {
	r := newEngine(t, &fakeCatalog{})
	w := do(r, http.MethodPost, "/payment/webhook", `{"type":"checkout.session.completed"}`,
		map[string]string{"Stripe-Signature": "t=1,v1=bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleLoginUnavailableWithoutVerifier(t *testing.T) {
	r := newEngine(t, &fakeCatalog{})
	for _, path := range []string{"/auth/google-admin", "/auth/google-user"} {
		w := do(r, http.MethodPost, path, `{"idToken":"x"}`, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}
