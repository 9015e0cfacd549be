package shopapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Kajalkumari31/ministore/internal/catalog"
	"github.com/Kajalkumari31/ministore/internal/domain"
	"github.com/Kajalkumari31/ministore/internal/webserver"
)

type productPayload struct {
	Title       string   `json:"title" validate:"max=200"`
	Description string   `json:"description" validate:"max=2048"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image" validate:"omitempty,max=1024"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category" validate:"max=64"`
}

var service *catalog.Service

// Init wires the catalog service and registers the public product routes.
func Init(svc *catalog.Service) {
	service = svc
	registerProductRoutes()
}

func registerProductRoutes() {
	webserver.ApiGET("/api/products", listProducts)
	webserver.ApiGET("/api/products/:id", getProduct)
	webserver.ApiPOST("/api/products", createProduct)
}

func listProducts(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	rows, err := service.List(c.Request().Context(), q)
	if err != nil {
		return fail(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Failed to query products", err.Error())
	}
	if rows == nil {
		rows = []domain.Product{}
	}
	return c.JSON(http.StatusOK, rows)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	p, err := service.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case err != nil:
		return fail(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Failed to query product", err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product payload", err.Error())
	}

	p, err := service.Create(c.Request().Context(), catalog.CreateRequest{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Image:       payload.Image,
		Stock:       payload.Stock,
		Category:    payload.Category,
	})
	if err != nil {
		if domain.IsValidation(err) {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		}
		return fail(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Failed to create product", err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}
