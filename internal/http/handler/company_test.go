package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biztime/internal/model"
	"biztime/internal/service"
	serviceMocks "biztime/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListCompanies(t *testing.T) {
	mockSvc := new(serviceMocks.MockCompanyService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/companies", ListCompanies(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.CompanySummary{
			{Code: "apple", Name: "Apple"},
			{Code: "ibm", Name: "IBM"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Companies []model.CompanySummary `json:"companies"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, []model.CompanySummary{
			{Code: "apple", Name: "Apple"},
			{Code: "ibm", Name: "IBM"},
		}, body.Companies)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty list still returns 200 with empty array", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.CompanySummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"companies":[]}`, string(raw))
	})

	t.Run("repeated reads return identical output", func(t *testing.T) {
		items := []model.CompanySummary{{Code: "apple", Name: "Apple"}}
		mockSvc.On("List", mock.Anything).Return(items, nil).Twice()

		first, _ := app.Test(httptest.NewRequest(http.MethodGet, "/companies", nil))
		second, _ := app.Test(httptest.NewRequest(http.MethodGet, "/companies", nil))

		b1, _ := io.ReadAll(first.Body)
		b2, _ := io.ReadAll(second.Body)
		assert.Equal(t, string(b1), string(b2))
	})

	t.Run("service error surfaces as 500 with raw message", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, http.StatusInternalServerError, res.Error.Status)
		assert.Equal(t, "connection refused", res.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetCompany(t *testing.T) {
	mockSvc := new(serviceMocks.MockCompanyService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/companies/:code", GetCompany(mockSvc))

	t.Run("success with invoice ids", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "ibm").Return(&model.CompanyDetail{
			Code:        "ibm",
			Name:        "IBM",
			Description: "Big blue.",
			Invoices:    []int{3},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies/ibm", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Company model.CompanyDetail `json:"company"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "IBM", body.Company.Name)
		assert.Equal(t, []int{3}, body.Company.Invoices)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "asdfgas").Return(nil, service.ErrCompanyNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies/asdfgas", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, http.StatusNotFound, res.Error.Status)
		assert.Contains(t, res.Error.Message, "asdfgas")
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "apple").Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/companies/apple", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateCompany(t *testing.T) {
	mockSvc := new(serviceMocks.MockCompanyService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/companies", CreateCompany(mockSvc))

	t.Run("success returns created company with derived code", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "Microsoft", "American multinational technology corporation.").
			Return(&model.Company{
				Code:        "microsoft",
				Name:        "Microsoft",
				Description: "American multinational technology corporation.",
			}, nil).Once()

		payload := `{"name":"Microsoft","description":"American multinational technology corporation."}`
		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Company model.Company `json:"company"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "microsoft", body.Company.Code)
		assert.Equal(t, "Microsoft", body.Company.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "", "whatever").
			Return(nil, service.ErrNameRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"description":"whatever"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate code", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "Apple", "").
			Return(nil, service.ErrCodeTaken).Once()

		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"name":"Apple"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, http.StatusConflict, res.Error.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
