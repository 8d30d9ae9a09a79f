package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/repo/mongodb"
	"github.com/opty-app/opty-search/internal/repo/sources"
	pkgmdw "github.com/opty-app/opty-search/internal/server/middleware"
	"github.com/opty-app/opty-search/internal/usecase"
)

type fakeSearchUsecase struct {
	view    models.SearchView
	err     error
	lastReq usecase.SearchRequest
}

func (f *fakeSearchUsecase) Search(ctx context.Context, req usecase.SearchRequest) (models.SearchView, error) {
	f.lastReq = req
	return f.view, f.err
}

func (f *fakeSearchUsecase) NewSession(source string) (*usecase.Session, error) {
	return nil, nil
}

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestController(uc usecase.SearchUsecase) Controller {
	return NewHandler(uc, sources.NewRegistry(), mongodb.NoopSearchHistory{})
}

func TestSearchEndpoint(t *testing.T) {
	uc := &fakeSearchUsecase{view: models.SearchView{
		State: models.StateSuccess,
		Query: "notebook",
		Products: []models.Product{
			{Name: "Notebook", Offers: []models.Offer{
				{Store: "Mercado Livre", Price: 3500, Condition: "Novo", Shipping: "Grátis"},
			}},
		},
	}}
	h := newTestController(uc)

	c, rec := newTestContext(t, "/api/v1/search?q=notebook")
	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StateSuccess, resp.State)
	require.Len(t, resp.Products, 1)
	assert.Empty(t, resp.Message)

	assert.Equal(t, "notebook", uc.lastReq.Query)
	assert.Equal(t, "mercadolivre", uc.lastReq.Source)
	assert.Equal(t, models.SortLowestPrice, uc.lastReq.Sort)
	assert.Equal(t, models.DefaultFilterSpec(), uc.lastReq.Filters)
}

func TestSearchEndpointParsesParams(t *testing.T) {
	uc := &fakeSearchUsecase{view: models.SearchView{State: models.StateSuccess}}
	h := newTestController(uc)

	c, _ := newTestContext(t,
		"/api/v1/search?q=tv&source=mercadolivre&price_min=100&price_max=2000"+
			"&stores=Mercado%20Livre,Amazon&condition=used&sort=highest-price&normalize=true")
	require.NoError(t, h.Search(c))

	assert.Equal(t, "tv", uc.lastReq.Query)
	assert.Equal(t, 100.0, uc.lastReq.Filters.PriceMin)
	assert.Equal(t, 2000.0, uc.lastReq.Filters.PriceMax)
	assert.Equal(t, []string{"Mercado Livre", "Amazon"}, uc.lastReq.Filters.Stores)
	assert.Equal(t, models.ConditionUsed, uc.lastReq.Filters.Condition)
	assert.Equal(t, models.SortHighestPrice, uc.lastReq.Sort)
	assert.True(t, uc.lastReq.Normalize)
}

func TestSearchEndpointDefaultsBlankQuery(t *testing.T) {
	uc := &fakeSearchUsecase{view: models.SearchView{State: models.StateSuccess}}
	h := newTestController(uc)

	c, _ := newTestContext(t, "/api/v1/search")
	require.NoError(t, h.Search(c))

	assert.Equal(t, "Produto não especificado", uc.lastReq.Query)
}

func TestSearchEndpointRejectsInvalidSort(t *testing.T) {
	h := newTestController(&fakeSearchUsecase{})

	c, _ := newTestContext(t, "/api/v1/search?q=tv&sort=cheapest")
	err := h.Search(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSearchEndpointUpstreamFailure(t *testing.T) {
	uc := &fakeSearchUsecase{view: models.SearchView{
		State: models.StateError,
		Error: "Falha na busca. Detalhe: Erro ao acessar Mercado Livre: 500",
	}}
	h := newTestController(uc)

	c, _ := newTestContext(t, "/api/v1/search?q=tv")
	err := h.Search(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadGateway, he.Code)
	assert.Contains(t, he.Message, "Falha na busca")
}

func TestSearchEndpointNoResults(t *testing.T) {
	uc := &fakeSearchUsecase{view: models.SearchView{
		State:    models.StateSuccess,
		Products: []models.Product{},
	}}
	h := newTestController(uc)

	c, rec := newTestContext(t, "/api/v1/search?q=xyzabc")
	require.NoError(t, h.Search(c))

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Nenhum resultado encontrado", resp.Message)
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestController(&fakeSearchUsecase{})

	c, rec := newTestContext(t, "/health")
	require.NoError(t, h.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHistoryEndpoint(t *testing.T) {
	h := newTestController(&fakeSearchUsecase{})

	c, rec := newTestContext(t, "/api/v1/history")
	require.NoError(t, h.History(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
