package leadControllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

func TestNewLeadNormalizes(t *testing.T) {
	lead := NewLead(CreateLeadRequest{
		Name:       "  Maria Souza ",
		Email:      " Maria@Example.COM ",
		ProjectIDs: []string{"p1", " ", "p2 "},
		Source:     "WhatsApp",
	})
	assert.Equal(t, "Maria Souza", lead.Name)
	assert.Equal(t, "maria@example.com", lead.Email)
	assert.Equal(t, "p1,p2", lead.ProjectIDs)
	assert.Equal(t, models.LeadSourceWhatsApp, lead.Source)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
}

type recordingFeed struct{ events []any }

func (r *recordingFeed) Broadcast(v any) { r.events = append(r.events, v) }

func TestCreateLeadRejectsInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	feed := &recordingFeed{}
	r := gin.New()
	// Validation fails before the database is touched.
	r.POST("/leads", CreateLeadHandler(nil, feed, zap.NewNop()))

	for _, body := range []string{`{}`, `{"email":"not-an-email"}`, `{"email":"a@b.co","message":"` + strings.Repeat("x", 2001) + `"}`} {
		req := httptest.NewRequest(http.MethodPost, "/leads", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, feed.events)
}

func TestLeadsWorkbook(t *testing.T) {
	file, err := buildLeadsWorkbook([]models.Lead{{
		ID: "l1", Name: "João", Email: "joao@example.com", Status: models.LeadStatusPaid,
		Source: models.LeadSourceCheckout, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	reopened, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	sheet := reopened.Sheets[0]
	require.Equal(t, 2, sheet.MaxRow)
	assert.Equal(t, "Email", sheet.Rows[0].Cells[2].String())
	assert.Equal(t, "joao@example.com", sheet.Rows[1].Cells[2].String())
	assert.Equal(t, "paid", sheet.Rows[1].Cells[7].String())
	assert.Equal(t, "2026-03-01 10:00:00", sheet.Rows[1].Cells[9].String())
}

func TestHubBroadcastsToConnectedClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zap.NewNop())
	r := gin.New()
	r.GET("/admin/ws/leads", hub.Handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/ws/leads"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(gin.H{"type": "lead.created", "lead": gin.H{"id": "l1"}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"lead.created","lead":{"id":"l1"}}`, string(msg))

	conn.Close()
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
