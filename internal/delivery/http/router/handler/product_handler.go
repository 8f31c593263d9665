package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stockroom/internal/delivery/http/response"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product inventory handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:        product.ID,
		Name:      product.Name,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
	}
}

// List returns every product. The data field is always an array, empty
// included.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]productResponse, 0, len(products))
	for _, product := range products {
		data = append(data, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, data, "Products retrieved successfully")
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidBody.WrapMessage("failed to bind create product input")
	}
	if input == nil {
		input = &usecase.CreateProductInput{}
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(output.Product), "Product created successfully")
}

// Delete handles the delete-by-name request and echoes the removed product.
func (h *ProductHandler) Delete(c echo.Context) error {
	var input *usecase.DeleteProductInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidBody.WrapMessage("failed to bind delete product input")
	}
	if input == nil {
		input = &usecase.DeleteProductInput{}
	}

	output, err := h.uc.Delete(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(output.Product), "Product deleted successfully")
}
