package mercadolivre

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/go-resty/resty/v2"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/pkg/util"
)

// Client fetches raw search listings from the Mercado Livre listing pages.
type Client interface {
	SearchListings(ctx context.Context, query string) ([]models.RawListing, error)
}

type client struct {
	http      *resty.Client
	baseURL   string
	userAgent string
}

func NewClient(conf *config.Config) Client {
	httpClient := util.NewRestyClient().
		SetTimeout(conf.Search.Timeout)

	return &client{
		http:      httpClient,
		baseURL:   conf.Search.MercadoLivreBaseURL,
		userAgent: conf.Search.UserAgent,
	}
}

func (c *client) SearchListings(ctx context.Context, query string) ([]models.RawListing, error) {
	searchURL := c.baseURL + url.QueryEscape(query)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.userAgent).
		Get(searchURL)
	if err != nil {
		log.Debugw(ctx, "mercado livre request failed", "url", searchURL, "error", err)
		return nil, models.NewSearchError(SourceID,
			"Erro de conexão ou timeout ao acessar Mercado Livre.", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, models.NewSearchError(SourceID,
			fmt.Sprintf("Erro ao acessar Mercado Livre: %d", resp.StatusCode()), nil)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, models.NewSearchError(SourceID,
			"Erro ao interpretar a resposta do Mercado Livre.", err)
	}

	listings := extractListings(doc)
	log.Debugw(ctx, "mercado livre listings extracted",
		"query", query, "count", len(listings))
	return listings, nil
}

// extractListings walks the result cards of a listing page. Cards missing a
// title, link or usable price are skipped.
func extractListings(doc *goquery.Document) []models.RawListing {
	var listings []models.RawListing

	doc.Find("li.ui-search-layout__item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("h3.ui-search-item__title.shops__item-title").First().Text())
		if title == "" {
			title = strings.TrimSpace(item.Find("h3").First().Text())
		}
		if title == "" {
			return
		}

		link, ok := item.Find("a[href]").First().Attr("href")
		if !ok || link == "" {
			return
		}

		price, ok := extractPrice(item)
		if !ok {
			return
		}

		listings = append(listings, models.RawListing{
			Title:  title,
			Price:  price,
			Link:   link,
			Image:  extractImage(item),
			Source: SourceID,
		})
	})

	return listings
}

// extractPrice rebuilds the display price from the split fraction/cents
// nodes, e.g. "1.549" + "65" becomes "R$ 1.549,65".
func extractPrice(item *goquery.Selection) (string, bool) {
	fraction := strings.TrimSpace(item.Find(".andes-money-amount__fraction").First().Text())
	if fraction == "" {
		return "", false
	}
	cents := strings.TrimSpace(item.Find(".andes-money-amount__cents").First().Text())
	if cents == "" {
		if fraction == "0" {
			return "", false
		}
		cents = "00"
	}
	return fmt.Sprintf("R$ %s,%s", fraction, cents), true
}

func extractImage(item *goquery.Selection) *string {
	img := item.Find("img").First()
	src, ok := img.Attr("data-src")
	if !ok || src == "" || strings.HasPrefix(src, "data:") {
		src, ok = img.Attr("src")
	}
	if !ok || src == "" || strings.HasPrefix(src, "data:") {
		return nil
	}
	return util.Ptr(src)
}
