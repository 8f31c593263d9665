package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/response"
	"stockroom/internal/domain/entity"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockProductUsecase struct {
	mock.Mock
}

func (m *mockProductUsecase) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductUsecase) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.ProductOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductUsecase) Delete(ctx context.Context, input *usecase.DeleteProductInput) (*usecase.ProductOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.ProductOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

// newTestEcho wires the real error handler so handler errors map to the
// same statuses and bodies the server emits.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Body {
	t.Helper()

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
