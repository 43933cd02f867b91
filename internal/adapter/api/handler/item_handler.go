package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/domain/entity"
	"marketdz/internal/usecase"
	"marketdz/pkg/errors"
	"marketdz/pkg/response"
	"marketdz/pkg/utils"
)

type ItemHandler struct {
	itemUseCase     *usecase.ItemUseCase
	locationUseCase *usecase.LocationUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase, locationUseCase *usecase.LocationUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase:     itemUseCase,
		locationUseCase: locationUseCase,
	}
}

// Listings bind straight into the entity; the satellite fields are too
// numerous to mirror in a request struct and all of them are optional.
func bindItem(c echo.Context) (*entity.Item, error) {
	var item entity.Item
	if err := c.Bind(&item); err != nil {
		return nil, errors.BadRequest("Invalid item payload", err)
	}
	if item.Title == "" {
		return nil, errors.Validation("Title is required")
	}
	if item.Category == "" {
		return nil, errors.Validation("Category is required")
	}
	if item.Price < 0 {
		return nil, errors.Validation("Price cannot be negative")
	}
	return &item, nil
}

func itemID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.BadRequest("Invalid item id", err)
	}
	return id, nil
}

func (h *ItemHandler) Create(c echo.Context) error {
	item, err := bindItem(c)
	if err != nil {
		return response.Error(c, err)
	}
	created, err := h.itemUseCase.Create(c.Request().Context(), middleware.UserID(c), item)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, created)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	item, err := h.itemUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) Update(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	item, err := bindItem(c)
	if err != nil {
		return response.Error(c, err)
	}
	item.ID = id
	updated, err := h.itemUseCase.Update(c.Request().Context(), middleware.UserID(c), item)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, updated)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.itemUseCase.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

// Search filters and sorts the collection from query parameters, then pages
// the result in memory.
func (h *ItemHandler) Search(c echo.Context) error {
	criteria := entity.FilterCriteria{
		SearchText: c.QueryParam("q"),
		SortBy:     entity.SortOption(c.QueryParam("sortBy")),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MinPrice = &price
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxPrice = &price
		}
	}
	if v := c.QueryParam("state"); v != "" {
		state := entity.AlState(v)
		criteria.State = &state
	}
	if v := c.QueryParams()["category"]; len(v) > 0 {
		criteria.Categories = v
	}
	if v := c.QueryParam("dateFrom"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			criteria.DateFrom = &t
		}
	}
	if v := c.QueryParam("dateTo"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			criteria.DateTo = &t
		}
	}

	items := h.itemUseCase.Search(c.Request().Context(), criteria)

	params := utils.GetPaginationParams(c)
	total := len(items)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	return response.Paginated(c, items[start:end], int64(total), params.Page, params.PageSize)
}

func (h *ItemHandler) ListByUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid user id", err))
	}
	items, err := h.itemUseCase.GetByUserID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *ItemHandler) SetStatus(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var req struct {
		Status entity.ItemStatus `json:"status" validate:"required,oneof=active sold rented unavailable"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.itemUseCase.SetStatus(c.Request().Context(), middleware.UserID(c), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) Favorite(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.itemUseCase.AddFavorite(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "favorited"})
}

func (h *ItemHandler) Unfavorite(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.itemUseCase.RemoveFavorite(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "unfavorited"})
}

func (h *ItemHandler) ListFavorites(c echo.Context) error {
	items, err := h.itemUseCase.ListFavorites(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *ItemHandler) SaveLocation(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	var req struct {
		Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
		Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.locationUseCase.SaveItemLocation(c.Request().Context(), middleware.UserID(c), id,
		entity.Location{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *ItemHandler) GetLocation(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	location, err := h.locationUseCase.GetItemLocation(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if location == nil {
		return response.Error(c, errors.NotFound("Item location", nil))
	}
	return response.Success(c, location)
}

func (h *ItemHandler) DeleteLocation(c echo.Context) error {
	id, err := itemID(c)
	if err != nil {
		return response.Error(c, err)
	}
	item, err := h.locationUseCase.DeleteItemLocation(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

// Nearby returns items within a radius of the given point. Radius defaults to
// 50km.
func (h *ItemHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid latitude", err))
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid longitude", err))
	}
	radius := 50.0
	if v := c.QueryParam("radius"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			radius = r
		}
	}

	origin := entity.Location{Latitude: lat, Longitude: lon}
	items := h.locationUseCase.FindNearby(c.Request().Context(), origin, radius)
	return response.Success(c, items)
}
