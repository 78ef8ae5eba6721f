package features

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/junaidrashid-git/plantas-api/controllers/checkout"
	"github.com/junaidrashid-git/plantas-api/middleware"
	"github.com/junaidrashid-git/plantas-api/models"
	"github.com/junaidrashid-git/plantas-api/payment"
)

type memoryCatalog map[string]models.Project

func (m memoryCatalog) FindByIDs(_ context.Context, ids []string, _ map[string]any) ([]models.Project, error) {
	var out []models.Project
	for _, id := range ids {
		if p, ok := m[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type recordingProcessor struct {
	reject string
	last   *payment.SessionRequest
}

func (p *recordingProcessor) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	p.last = req
	if p.reject != "" {
		return nil, errors.New(p.reject)
	}
	return &payment.Session{ID: "cs_feature", URL: "https://pay.example/cs_feature"}, nil
}

type checkoutTestContext struct {
	catalog   memoryCatalog
	processor *recordingProcessor
	resp      *httptest.ResponseRecorder
	body      map[string]any
}

func (c *checkoutTestContext) reset() {
	c.catalog = memoryCatalog{}
	c.processor = &recordingProcessor{}
	c.resp = nil
	c.body = nil
}

func (c *checkoutTestContext) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := checkoutControllers.NewService(checkoutControllers.Config{
		Catalog:          c.catalog,
		Processor:        c.processor,
		DefaultReturnURL: "https://plantas.example/carrinho",
	})
	r := gin.New()
	r.OPTIONS("/checkout/session", middleware.Preflight("*"))
	r.POST("/checkout/session", checkoutControllers.CreateSessionHandler(svc))
	return r
}

func (c *checkoutTestContext) send(method, body string) error {
	req := httptest.NewRequest(method, "/checkout/session", bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.resp = httptest.NewRecorder()
	c.router().ServeHTTP(c.resp, req)

	c.body = nil
	if c.resp.Body.Len() > 0 {
		if err := json.Unmarshal(c.resp.Body.Bytes(), &c.body); err != nil {
			return fmt.Errorf("decode response %q: %w", c.resp.Body.String(), err)
		}
	}
	return nil
}

func (c *checkoutTestContext) theCatalogHoldsProject(id string, price, electrical float64) error {
	c.catalog[id] = models.Project{
		ID:              id,
		Title:           "Projeto " + id,
		Slug:            "projeto-" + id,
		Code:            strings.ToUpper(id) + "-01",
		Price:           price,
		PriceElectrical: &electrical,
	}
	return nil
}

func (c *checkoutTestContext) theProcessorRejectsSessionsWith(msg string) error {
	c.processor.reject = msg
	return nil
}

func (c *checkoutTestContext) aGuestChecksOutProject(id, addons string) error {
	item := map[string]any{"id": id, "addons": []string{}}
	if addons != "" {
		item["addons"] = strings.Split(addons, ",")
	}
	b, err := json.Marshal(map[string]any{"items": []any{item}})
	if err != nil {
		return err
	}
	return c.send(http.MethodPost, string(b))
}

func (c *checkoutTestContext) aGuestPostsTheCart(doc *godog.DocString) error {
	return c.send(http.MethodPost, doc.Content)
}

func (c *checkoutTestContext) theBrowserSendsAPreflightRequest() error {
	return c.send(http.MethodOptions, "")
}

func (c *checkoutTestContext) theResponseStatusIs(code int) error {
	if c.resp.Code != code {
		return fmt.Errorf("expected status %d, got %d: %s", code, c.resp.Code, c.resp.Body.String())
	}
	return nil
}

func (c *checkoutTestContext) theResponseCarriesASessionURL() error {
	if url, _ := c.body["url"].(string); url == "" {
		return fmt.Errorf("expected a url in %v", c.body)
	}
	return nil
}

func (c *checkoutTestContext) theResponseCarriesNoSessionURL() error {
	if _, ok := c.body["url"]; ok {
		return fmt.Errorf("unexpected url in %v", c.body)
	}
	return nil
}

func (c *checkoutTestContext) theErrorMentions(fragment string) error {
	msg, _ := c.body["error"].(string)
	if !strings.Contains(msg, fragment) {
		return fmt.Errorf("error %q does not mention %q", msg, fragment)
	}
	return nil
}

func (c *checkoutTestContext) theProcessorReceivedLineItems(n int) error {
	if c.processor.last == nil {
		return errors.New("processor was never called")
	}
	if got := len(c.processor.last.LineItems); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *checkoutTestContext) lineItemIsCharged(pos int, amount int64) error {
	if c.processor.last == nil || pos < 1 || pos > len(c.processor.last.LineItems) {
		return fmt.Errorf("no line item %d", pos)
	}
	if got := c.processor.last.LineItems[pos-1].UnitAmount; got != amount {
		return fmt.Errorf("line item %d: expected %d, got %d", pos, amount, got)
	}
	return nil
}

func (c *checkoutTestContext) theProcessorWasChargedInTotal(total int64) error {
	if c.processor.last == nil {
		return errors.New("processor was never called")
	}
	if got := c.processor.last.Total(); got != total {
		return fmt.Errorf("expected total %d, got %d", total, got)
	}
	return nil
}

func (c *checkoutTestContext) theResponseAllowsAnyOrigin() error {
	if got := c.resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		return fmt.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	return nil
}

func (c *checkoutTestContext) theResponseBodyIsEmpty() error {
	if c.resp.Body.Len() != 0 {
		return fmt.Errorf("expected empty body, got %q", c.resp.Body.String())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog holds project "([^"]*)" priced (\d+(?:\.\d+)?) with electrical (\d+(?:\.\d+)?)$`, tc.theCatalogHoldsProject)
	ctx.Step(`^the processor rejects sessions with "([^"]*)"$`, tc.theProcessorRejectsSessionsWith)

	// When steps
	ctx.Step(`^a guest checks out project "([^"]*)" with add-ons "([^"]*)"$`, tc.aGuestChecksOutProject)
	ctx.Step(`^a guest posts the cart:$`, tc.aGuestPostsTheCart)
	ctx.Step(`^the browser sends a preflight request$`, tc.theBrowserSendsAPreflightRequest)

	// Then steps
	ctx.Step(`^the response status is (\d+)$`, tc.theResponseStatusIs)
	ctx.Step(`^the response carries a session url$`, tc.theResponseCarriesASessionURL)
	ctx.Step(`^the response carries no session url$`, tc.theResponseCarriesNoSessionURL)
	ctx.Step(`^the error mentions "([^"]*)"$`, tc.theErrorMentions)
	ctx.Step(`^the processor received (\d+) line items$`, tc.theProcessorReceivedLineItems)
	ctx.Step(`^line item (\d+) is charged (\d+)$`, tc.lineItemIsCharged)
	ctx.Step(`^the processor was charged (\d+) in total$`, tc.theProcessorWasChargedInTotal)
	ctx.Step(`^the response allows any origin$`, tc.theResponseAllowsAnyOrigin)
	ctx.Step(`^the response body is empty$`, tc.theResponseBodyIsEmpty)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"checkout.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
