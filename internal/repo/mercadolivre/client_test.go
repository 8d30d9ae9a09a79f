package mercadolivre

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/models"
)

const listingPage = `
<html><body><ol>
<li class="ui-search-layout__item">
  <h3 class="ui-search-item__title shops__item-title">Notebook Gamer ABC</h3>
  <a href="https://produto.mercadolivre.com.br/notebook-abc">ver</a>
  <span class="andes-money-amount__fraction">1.549</span>
  <span class="andes-money-amount__cents">65</span>
  <img data-src="https://http2.mlstatic.com/notebook.jpg" src="data:image/gif;base64,xyz"/>
</li>
<li class="ui-search-layout__item">
  <h3>Mouse X</h3>
  <a href="https://produto.mercadolivre.com.br/mouse-x">ver</a>
  <span class="andes-money-amount__fraction">899</span>
  <img src="data:image/gif;base64,xyz"/>
</li>
<li class="ui-search-layout__item">
  <h3>Anúncio sem preço</h3>
  <a href="https://produto.mercadolivre.com.br/sem-preco">ver</a>
  <span class="andes-money-amount__fraction">0</span>
</li>
</ol></body></html>`

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Search: config.SearchConfig{
			MercadoLivreBaseURL: baseURL,
			Timeout:             5 * time.Second,
			UserAgent:           "opty-search-test",
		},
	}
}

func TestSearchListings(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL + "/"))
	listings, err := c.SearchListings(context.Background(), "notebook gamer")
	require.NoError(t, err)

	assert.Equal(t, "/notebook+gamer", gotPath)
	assert.Equal(t, "opty-search-test", gotAgent)

	require.Len(t, listings, 2)

	assert.Equal(t, "Notebook Gamer ABC", listings[0].Title)
	assert.Equal(t, "R$ 1.549,65", listings[0].Price)
	assert.Equal(t, "https://produto.mercadolivre.com.br/notebook-abc", listings[0].Link)
	require.NotNil(t, listings[0].Image)
	assert.Equal(t, "https://http2.mlstatic.com/notebook.jpg", *listings[0].Image)
	assert.Equal(t, SourceID, listings[0].Source)

	assert.Equal(t, "Mouse X", listings[1].Title)
	assert.Equal(t, "R$ 899,00", listings[1].Price)
	assert.Nil(t, listings[1].Image)
}

func TestSearchListingsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL + "/"))
	_, err := c.SearchListings(context.Background(), "notebook")
	require.Error(t, err)

	var searchErr *models.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, "Erro ao acessar Mercado Livre: 403", searchErr.Detail)
}

func TestSearchListingsConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(testConfig(srv.URL + "/"))
	_, err := c.SearchListings(context.Background(), "notebook")
	require.Error(t, err)

	var searchErr *models.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Contains(t, searchErr.Detail, "timeout")
}
