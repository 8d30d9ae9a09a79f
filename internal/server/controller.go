package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/repo/mongodb"
	"github.com/opty-app/opty-search/internal/repo/sources"
	"github.com/opty-app/opty-search/internal/usecase"
)

const (
	defaultQuery  = "Produto não especificado"
	defaultSource = "mercadolivre"

	noResultsMessage = "Nenhum resultado encontrado"
)

type Controller interface {
	Search(c echo.Context) error
	Sources(c echo.Context) error
	History(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	searchUsecase usecase.SearchUsecase
	registry      *sources.Registry
	history       mongodb.SearchHistoryRepository
}

func NewHandler(
	searchUsecase usecase.SearchUsecase,
	registry *sources.Registry,
	history mongodb.SearchHistoryRepository,
) Controller {
	return &controller{
		searchUsecase: searchUsecase,
		registry:      registry,
		history:       history,
	}
}

type searchParams struct {
	Query     string   `query:"q"`
	Source    string   `query:"source"`
	PriceMin  *float64 `query:"price_min" validate:"omitempty,gte=0"`
	PriceMax  *float64 `query:"price_max" validate:"omitempty,gte=0"`
	Stores    string   `query:"stores"`
	Condition string   `query:"condition" validate:"condition"`
	Sort      string   `query:"sort" validate:"sortkey"`
	Normalize bool     `query:"normalize"`
}

type searchResponse struct {
	State    models.SearchState `json:"state"`
	Query    string             `json:"query"`
	Message  string             `json:"message,omitempty"`
	Products []models.Product   `json:"products"`
}

func (h *controller) Search(c echo.Context) error {
	var params searchParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req := buildSearchRequest(params)

	ctx := c.Request().Context()
	view, err := h.searchUsecase.Search(ctx, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if view.State == models.StateError {
		return echo.NewHTTPError(http.StatusBadGateway, view.Error)
	}

	resp := searchResponse{
		State:    view.State,
		Query:    view.Query,
		Products: view.Products,
	}
	if len(resp.Products) == 0 {
		resp.Message = noResultsMessage
	}
	return c.JSON(http.StatusOK, resp)
}

func buildSearchRequest(params searchParams) usecase.SearchRequest {
	filters := models.DefaultFilterSpec()
	if params.PriceMin != nil {
		filters.PriceMin = *params.PriceMin
	}
	if params.PriceMax != nil {
		filters.PriceMax = *params.PriceMax
	}
	if params.Condition != "" {
		filters.Condition = models.Condition(params.Condition)
	}
	if params.Stores != "" {
		for _, store := range strings.Split(params.Stores, ",") {
			if store = strings.TrimSpace(store); store != "" {
				filters.Stores = append(filters.Stores, store)
			}
		}
	}

	query := strings.TrimSpace(params.Query)
	if query == "" {
		query = defaultQuery
	}

	source := params.Source
	if source == "" {
		source = defaultSource
	}

	sortKey := models.SortLowestPrice
	if params.Sort != "" {
		sortKey = models.SortKey(params.Sort)
	}

	return usecase.SearchRequest{
		Query:     query,
		Source:    source,
		Filters:   filters,
		Sort:      sortKey,
		Normalize: params.Normalize,
	}
}

type sourceInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *controller) Sources(c echo.Context) error {
	ids := h.registry.IDs()
	infos := make([]sourceInfo, 0, len(ids))
	for _, id := range ids {
		src, err := h.registry.Get(id)
		if err != nil {
			continue
		}
		infos = append(infos, sourceInfo{ID: src.ID(), Name: src.DisplayName()})
	}
	return c.JSON(http.StatusOK, infos)
}

type historyParams struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (h *controller) History(c echo.Context) error {
	var params historyParams
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	records, err := h.history.Recent(c.Request().Context(), params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []models.SearchRecord{}
	}

	return c.JSON(http.StatusOK, records)
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "opty-search",
	})
}
