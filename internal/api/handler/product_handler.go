package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List products with optional filters
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category (case-insensitive exact match)"
// @Param        brand     query     string  false  "Brand (case-insensitive exact match)"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {object}  listProductsResponse
// @Failure      400       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ProductFilter{
		Category: c.QueryParam("category"),
		Brand:    c.QueryParam("brand"),
	}

	var err error
	if filter.MinPrice, err = priceParam(c, "minPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "minPrice must be a number"})
	}
	if filter.MaxPrice, err = priceParam(c, "maxPrice"); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "maxPrice must be a number"})
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to fetch products",
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Status: "success",
		Count:  len(products),
		Data:   products,
	})
}

// priceParam parses an optional float query parameter; nil means unset.
func priceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id (e.g. P001)"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Status: "error", Message: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to fetch product",
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, productResponse{Status: "success", Data: *product})
}

// Create handles POST /addproduct.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /addproduct [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to add product",
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, productResponse{Status: "success", Data: *created})
}

// Update handles PUT /updateproduct/:id.
//
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /updateproduct/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Status: "error", Message: "Product not found"})
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, errorResponse{Status: "error", Message: "Name, brand, and category are required"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to update product",
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, productResponse{Status: "success", Data: *updated})
}

// Delete handles DELETE /deleteproduct/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  deleteProductResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /deleteproduct/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Status: "error", Message: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Status:  "error",
			Message: "Failed to delete product",
			Cause:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, deleteProductResponse{
		Status:  "success",
		Message: "Product deleted successfully",
		ID:      id,
	})
}
