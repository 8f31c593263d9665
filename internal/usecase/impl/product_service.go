package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every product in store-defined order. No validation applies.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Create validates the fields and persists a new product. The store's
// unique index on name turns duplicates into a conflict.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrNameRequired
	}

	stock, err := coerceStock(input.Stock)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:  input.Name,
		Stock: stock,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.String("name", product.Name), slog.Int("stock", product.Stock))

	return &usecase.ProductOutput{Product: product}, nil
}

// Delete looks the product up by name, removes it, and returns the removed
// record so the caller can echo it back.
func (srv *productService) Delete(ctx context.Context, input *usecase.DeleteProductInput) (*usecase.ProductOutput, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrNameRequired
	}

	product, err := srv.productRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no product with name")
		}

		return nil, errors.Wrap(err, "failed to find product for deletion")
	}

	if err := srv.productRepo.DeleteByName(ctx, input.Name); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// Deleted concurrently between lookup and delete.
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product vanished before delete")
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.String("name", product.Name))

	return &usecase.ProductOutput{Product: product}, nil
}

// coerceStock turns the untyped JSON stock value into an int. A nil value
// means the field was absent; anything that is not an integral number is a
// type error. Zero is a valid stock.
func coerceStock(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, domainerrors.ErrStockRequired
	case float64:
		// encoding/json decodes every number into float64.
		if v != math.Trunc(v) {
			return 0, domainerrors.ErrStockNotNumber
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, domainerrors.ErrStockNotNumber
		}
		return int(n), nil
	case int:
		return v, nil
	default:
		return 0, domainerrors.ErrStockNotNumber
	}
}
