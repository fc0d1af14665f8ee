package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bikeshop-api/internal/application/auth"
	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/application/usecase"
	"github.com/jhoicas/bikeshop-api/internal/domain/entity"
	"github.com/jhoicas/bikeshop-api/internal/domain/repository"
	"github.com/jhoicas/bikeshop-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/bikeshop-api/internal/interfaces/http"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type nopNotifier struct{ err error }

func (n nopNotifier) Send(context.Context, string, string, string) error { return n.err }

func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	return buildAppWith(t, memory.NewUserRepository(), memory.NewOrderRepository())
}

func buildAppWith(t *testing.T, users repository.UserRepository, orders repository.OrderRepository) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AccountUC: auth.NewAccountUseCase(users, nopNotifier{err: errors.New("smtp caído")}, auth.Config{
			JWTSecret: testJWTSecret,
			JWTIssuer: testIssuer,
			HashCost:  bcrypt.MinCost,
		}, nil),
		BikeUC:    usecase.NewBikeUseCase(memory.NewBikeRepository(), nil),
		OrderUC:   usecase.NewOrderUseCase(orders, nil),
		JWTSecret: testJWTSecret,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

const registerBody = `{"name":"John","email":"john@example.com","password":"StrongP@ss1"}`

// ──────────────────────────────────────────────────────────────────────────────
// /api/register y /api/login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_201(t *testing.T) {
	app := buildApp(t)
	resp, body := send(t, app, http.MethodPost, "/api/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.MessageResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "User registered successfully", out.Message)
}

func TestRegister_400(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{
			name:     "json malformado",
			body:     `{"name":`,
			wantCode: "INVALID_BODY",
		},
		{
			name:     "todas las violaciones",
			body:     `{}`,
			wantCode: "VALIDATION",
			wantMsg:  "All fields are required, Invalid email format, Password must be at least 8 characters long and contain numbers and special characters",
		},
		{
			name:     "email inválido",
			body:     `{"name":"John","email":"john","password":"StrongP@ss1"}`,
			wantCode: "VALIDATION",
			wantMsg:  "Invalid email format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := send(t, buildApp(t), http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			e := decodeError(t, body)
			assert.Equal(t, tt.wantCode, e.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, e.Message)
			}
		})
	}
}

func TestRegister_Duplicado(t *testing.T) {
	app := buildApp(t)
	resp, _ := send(t, app, http.MethodPost, "/api/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := send(t, app, http.MethodPost, "/api/register", registerBody)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "USER_EXISTS", Message: "User already exists"}, decodeError(t, body))
}

func TestLogin_YMe(t *testing.T) {
	app := buildApp(t)
	resp, _ := send(t, app, http.MethodPost, "/api/register", registerBody)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := send(t, app, http.MethodPost, "/api/login", `{"email":"john@example.com","password":"StrongP@ss1"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, "Login successful", login.Message)
	require.NotEmpty(t, login.Token)

	resp, body = send(t, app, http.MethodGet, "/api/me", "", "Authorization", "Bearer "+login.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me dto.MeResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "john@example.com", me.Email)
	assert.NotEmpty(t, me.UserID)

	resp, _ = send(t, app, http.MethodGet, "/api/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_400(t *testing.T) {
	app := buildApp(t)
	send(t, app, http.MethodPost, "/api/register", registerBody)

	resp, body := send(t, app, http.MethodPost, "/api/login", `{"email":"nobody@example.com","password":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "User not found"}, decodeError(t, body))

	resp, body = send(t, app, http.MethodPost, "/api/login", `{"email":"john@example.com","password":"WrongP@ss1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials"}, decodeError(t, body))
}

func TestLogin_500SinSecreto(t *testing.T) {
	users := memory.NewUserRepository()
	app := fiber.New()
	uc := auth.NewAccountUseCase(users, nil, auth.Config{HashCost: bcrypt.MinCost}, nil)
	apphttp.Router(app, apphttp.RouterDeps{AccountUC: uc})

	send(t, app, http.MethodPost, "/api/register", registerBody)
	resp, body := send(t, app, http.MethodPost, "/api/login", `{"email":"john@example.com","password":"StrongP@ss1"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decodeError(t, body).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/create-bike y /api/create-order
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBike_YLectura(t *testing.T) {
	app := buildApp(t)
	resp, body := send(t, app, http.MethodPost, "/api/create-bike", `{"type":"electric","color":"black"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var bike dto.BikeResponse
	require.NoError(t, json.Unmarshal(body, &bike))
	assert.Equal(t, "electric", bike.Type)

	resp, body = send(t, app, http.MethodGet, "/api/bikes/"+bike.ID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.BikeResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, bike.ID, got.ID)

	resp, _ = send(t, app, http.MethodGet, "/api/bikes/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateBike_400(t *testing.T) {
	app := buildApp(t)
	resp, body := send(t, app, http.MethodPost, "/api/create-bike", `{"type":"standard"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "MISSING_FIELDS", Message: "Missing required fields: type and color"}, decodeError(t, body))

	resp, body = send(t, app, http.MethodPost, "/api/create-bike", `{"type":"Mountain","color":"red"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "PERSISTENCE", Message: "Error creating bike"}, decodeError(t, body))
}

func TestCreateOrder_YLectura(t *testing.T) {
	app := buildApp(t)
	resp, body := send(t, app, http.MethodPost, "/api/create-order", `{"userId":"u1","bikeIds":["b1","b1"]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(body, &order))
	assert.Equal(t, "u1", order.User)
	assert.Equal(t, []string{"b1", "b1"}, order.Bikes)
	assert.Equal(t, "pending", order.Status)

	resp, _ = send(t, app, http.MethodGet, "/api/orders/"+order.ID, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, http.MethodGet, "/api/orders/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

type failingOrders struct{}

func (failingOrders) Create(context.Context, *entity.Order) error            { return errors.New("boom") }
func (failingOrders) GetByID(context.Context, string) (*entity.Order, error) { return nil, nil }

func TestCreateOrder_400Persistencia(t *testing.T) {
	app := buildAppWith(t, memory.NewUserRepository(), failingOrders{})
	resp, body := send(t, app, http.MethodPost, "/api/create-order", `{"userId":"u1","bikeIds":["b1"]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrorResponse{Code: "PERSISTENCE", Message: "Error creating order"}, decodeError(t, body))
}
