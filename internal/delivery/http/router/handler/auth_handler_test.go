package handler

import (
	"net/http"
	"testing"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register_Created(t *testing.T) {
	uc := &mockAuthUsecase{}
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "new@example.com",
		CreatedAt: time.Now(),
	}
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Email:    "new@example.com",
		Password: "secret123",
	}).Return(&usecase.RegisterOutput{Account: account}, nil)

	e := newTestEcho()
	e.POST("/register", NewAuthHandler(uc, newDiscardLogger()).Register)

	rec := doJSON(t, e, http.MethodPost, "/register",
		`{"email":"new@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User created successfully", body.Message)

	data, ok := body.Data.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "new@example.com", data["email"])
	assert.NotContains(t, rec.Body.String(), "password")
	uc.AssertExpectations(t)
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ucErr       error
		wantStatus  int
		wantMessage string
	}{
		{"missing email", `{"password":"secret123"}`, domainerrors.ErrEmailRequired, http.StatusBadRequest, "Email is required"},
		{"missing password", `{"email":"a@b.co"}`, domainerrors.ErrPasswordRequired, http.StatusBadRequest, "Password is required"},
		{"invalid email", `{"email":"nope","password":"secret123"}`, domainerrors.ErrEmailInvalid, http.StatusBadRequest, "Email is invalid"},
		{"taken email", `{"email":"taken@b.co","password":"secret123"}`, domainerrors.ErrEmailExists, http.StatusConflict, "Email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{}
			uc.On("Register", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			e := newTestEcho()
			e.POST("/register", NewAuthHandler(uc, newDiscardLogger()).Register)

			rec := doJSON(t, e, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, rec).Message)
		})
	}
}

func TestAuthHandler_Register_EmptyBody(t *testing.T) {
	uc := &mockAuthUsecase{}
	uc.On("Register", mock.Anything, &usecase.RegisterInput{}).
		Return(nil, domainerrors.ErrEmailRequired)

	e := newTestEcho()
	e.POST("/register", NewAuthHandler(uc, newDiscardLogger()).Register)

	rec := doJSON(t, e, http.MethodPost, "/register", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required", decodeBody(t, rec).Message)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &mockAuthUsecase{}
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "secret123",
	}).Return(&usecase.LoginOutput{Token: "signed.jwt.token"}, nil)

	e := newTestEcho()
	e.POST("/login", NewAuthHandler(uc, newDiscardLogger()).Login)

	rec := doJSON(t, e, http.MethodPost, "/login",
		`{"email":"user@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, "signed.jwt.token", body.Token)
	uc.AssertExpectations(t)
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		ucErr       error
		wantStatus  int
		wantMessage string
	}{
		{"unknown email", domainerrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"wrong password", domainerrors.ErrInvalidPassword, http.StatusUnauthorized, "Invalid password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{}
			uc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			e := newTestEcho()
			e.POST("/login", NewAuthHandler(uc, newDiscardLogger()).Login)

			rec := doJSON(t, e, http.MethodPost, "/login",
				`{"email":"user@example.com","password":"whatever"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, rec).Message)
		})
	}
}
