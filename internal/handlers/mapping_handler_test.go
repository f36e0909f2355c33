package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"receipt-tracker/internal/cache"
	"receipt-tracker/internal/dto"
	"receipt-tracker/internal/models"
	"receipt-tracker/internal/services"
	"receipt-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MappingHandlerTestSuite struct {
	suite.Suite
	echo           *echo.Echo
	ctrl           *gomock.Controller
	mockService    *service_mocks.MockMerchantMappingServiceInterface
	mappingHandler *MappingHandler
	categorization *CategorizationHandler
	cacheHandler   *CacheHandler
	tenantID       uuid.UUID
	userID         uuid.UUID
}

func TestMappingHandlerSuite(t *testing.T) {
	suite.Run(t, new(MappingHandlerTestSuite))
}

func (s *MappingHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockMerchantMappingServiceInterface(s.ctrl)
	s.mappingHandler = NewMappingHandler(s.mockService, 0)
	s.categorization = NewCategorizationHandler(s.mockService)
	s.cacheHandler = NewCacheHandler(s.mockService)
	s.tenantID = uuid.New()
	s.userID = uuid.New()
}

func (s *MappingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MappingHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TenantIDContextKey, s.tenantID)
	c.Set(UserIDContextKey, s.userID)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *MappingHandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *MappingHandlerTestSuite) mapping(normalized, category string) *models.MerchantMapping {
	return &models.MerchantMapping{
		ID:                     uuid.New(),
		TenantID:               s.tenantID,
		NormalizedMerchantName: normalized,
		Category:               category,
		CreatedBy:              s.userID,
		CreatedAt:              time.Now().UTC(),
		UpdatedAt:              time.Now().UTC(),
	}
}

func (s *MappingHandlerTestSuite) TestCategorizeReceipt_AppliesMapping() {
	subcategory := "Department Stores"
	s.mockService.EXPECT().
		CategorizeReceipt(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, receipt models.ReceiptCategorization) models.ReceiptCategorization {
			s.Equal("TARGET CORPORATION", receipt.Merchant)
			s.Equal(models.CategorizationSourceAI, receipt.Source)
			receipt.Category = "Shopping"
			receipt.Subcategory = &subcategory
			receipt.Confidence = 93
			receipt.Source = models.CategorizationSourceLearned
			receipt.MappingApplied = true
			return receipt
		})

	body := `{"merchant":"TARGET CORPORATION","category":"Groceries","confidence":78,"explanation":"food","total":"42.10"}`
	c, rec := s.newContext(http.MethodPost, "/api/v1/categorizations", body)

	s.Require().NoError(s.categorization.CategorizeReceipt(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategorizeReceiptResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Shopping", response.Category)
	s.Equal(93, response.Confidence)
	s.True(response.MappingApplied)
	s.Equal(models.CategorizationSourceLearned, response.Source)
	s.Require().NotNil(response.Total)
	s.True(decimal.RequireFromString("42.10").Equal(*response.Total))
}

func (s *MappingHandlerTestSuite) TestCategorizeReceipt_Validation() {
	testCases := []struct {
		name string
		body string
	}{
		{"missing merchant", `{"category":"Groceries","confidence":50}`},
		{"merchant normalizes to nothing", `{"merchant":"Inc.","category":"Groceries","confidence":50}`},
		{"confidence out of range", `{"merchant":"Target","category":"Groceries","confidence":150}`},
		{"blank category", `{"merchant":"Target","category":"  ","confidence":50}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(http.MethodPost, "/api/v1/categorizations", tc.body)

			s.Require().NoError(s.categorization.CategorizeReceipt(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
		})
	}
}

func (s *MappingHandlerTestSuite) TestCategorizeReceipt_MissingTenant() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categorizations", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.categorization.CategorizeReceipt(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", s.decodeError(rec).Error.Code)
}

func (s *MappingHandlerTestSuite) TestListMappings() {
	mappings := []*models.MerchantMapping{s.mapping("target", "Shopping"), s.mapping("starbucks", "Dining")}
	s.mockService.EXPECT().ListMappings(gomock.Any(), s.tenantID).Return(mappings, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings", "")

	s.Require().NoError(s.mappingHandler.ListMappings(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MappingListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	s.Equal("target", response.Mappings[0].NormalizedMerchantName)
}

func (s *MappingHandlerTestSuite) TestListMappings_StoreError() {
	s.mockService.EXPECT().ListMappings(gomock.Any(), s.tenantID).Return(nil, errors.New("db down"))

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings", "")

	s.Require().NoError(s.mappingHandler.ListMappings(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decodeError(rec)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(rec.Body.String(), "db down")
}

func (s *MappingHandlerTestSuite) TestLookupMapping_Found() {
	mapping := s.mapping("target", "Shopping")
	s.mockService.EXPECT().Lookup(gomock.Any(), s.tenantID, "Target Corp").Return(mapping)

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings/lookup?merchant=Target+Corp", "")

	s.Require().NoError(s.mappingHandler.LookupMapping(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MappingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(mapping.ID, response.ID)
}

func (s *MappingHandlerTestSuite) TestLookupMapping_NotFound() {
	s.mockService.EXPECT().Lookup(gomock.Any(), s.tenantID, "Corner Deli LLC").Return(nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings/lookup?merchant=Corner+Deli+LLC", "")

	s.Require().NoError(s.mappingHandler.LookupMapping(c))
	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decodeError(rec)
	s.Equal("MAPPING_001", response.Error.Code)
	s.Contains(response.Error.Details, "merchant: corner deli")
	s.Equal("trace-123", response.Error.TraceID)
}

func (s *MappingHandlerTestSuite) TestLookupMapping_MissingMerchant() {
	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings/lookup", "")

	s.Require().NoError(s.mappingHandler.LookupMapping(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MappingHandlerTestSuite) TestSuggestMappings() {
	suggestion := &models.MerchantSuggestion{Mapping: s.mapping("starbucks", "Dining"), Distance: 1, Similarity: 0.89}
	s.mockService.EXPECT().
		SuggestMappings(gomock.Any(), s.tenantID, "Starbuks", 3).
		Return([]*models.MerchantSuggestion{suggestion}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings/suggestions?merchant=Starbuks&limit=3", "")

	s.Require().NoError(s.mappingHandler.SuggestMappings(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SuggestionListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("starbuks", response.Merchant)
	s.Require().Len(response.Suggestions, 1)
	s.Equal("starbucks", response.Suggestions[0].Mapping.NormalizedMerchantName)
}

func (s *MappingHandlerTestSuite) TestSuggestMappings_DefaultLimit() {
	s.mockService.EXPECT().
		SuggestMappings(gomock.Any(), s.tenantID, "Target", services.DefaultSuggestionLimit).
		Return(nil, nil)

	c, rec := s.newContext(http.MethodGet, "/api/v1/mappings/suggestions?merchant=Target", "")

	s.Require().NoError(s.mappingHandler.SuggestMappings(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *MappingHandlerTestSuite) TestUpdateMapping_Success() {
	mapping := s.mapping("target", "Shopping")
	s.mockService.EXPECT().
		UpdateMapping(gomock.Any(), s.tenantID, "Target Corp", "Shopping", gomock.Any(), s.userID).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _, _ string, subcategory *string, _ uuid.UUID) (*models.MerchantMapping, error) {
			s.Require().NotNil(subcategory)
			s.Equal("Department Stores", *subcategory)
			return mapping, nil
		})

	body := `{"merchant":"Target Corp","category":"Shopping","subcategory":"Department Stores"}`
	c, rec := s.newContext(http.MethodPut, "/api/v1/mappings", body)

	s.Require().NoError(s.mappingHandler.UpdateMapping(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.MappingResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("target", response.NormalizedMerchantName)
}

func (s *MappingHandlerTestSuite) TestUpdateMapping_SaveFailed() {
	s.mockService.EXPECT().
		UpdateMapping(gomock.Any(), s.tenantID, gomock.Any(), gomock.Any(), gomock.Any(), s.userID).
		Return(nil, fmt.Errorf("%w: %w", services.ErrMappingSaveFailed, errors.New("deadlock detected")))

	c, rec := s.newContext(http.MethodPut, "/api/v1/mappings", `{"merchant":"Target","category":"Shopping"}`)

	s.Require().NoError(s.mappingHandler.UpdateMapping(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("MAPPING_002", s.decodeError(rec).Error.Code)
	s.NotContains(rec.Body.String(), "deadlock")
}

func (s *MappingHandlerTestSuite) TestUpdateMapping_InvalidBody() {
	c, rec := s.newContext(http.MethodPut, "/api/v1/mappings", `{"merchant":`)

	s.Require().NoError(s.mappingHandler.UpdateMapping(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MappingHandlerTestSuite) TestDeleteMapping() {
	merchant := gofakeit.Company()
	s.mockService.EXPECT().DeleteMapping(gomock.Any(), s.tenantID, merchant).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/mappings?merchant="+url.QueryEscape(merchant), "")

	s.Require().NoError(s.mappingHandler.DeleteMapping(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *MappingHandlerTestSuite) TestDeleteMapping_NotFound() {
	s.mockService.EXPECT().DeleteMapping(gomock.Any(), s.tenantID, "Target").Return(services.ErrMappingNotFound)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/mappings?merchant=Target", "")

	s.Require().NoError(s.mappingHandler.DeleteMapping(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("MAPPING_001", s.decodeError(rec).Error.Code)
}

func (s *MappingHandlerTestSuite) TestResetMappings() {
	s.mockService.EXPECT().ResetTenant(gomock.Any(), s.tenantID).Return(int64(7), nil)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/mappings/all", "")

	s.Require().NoError(s.mappingHandler.ResetMappings(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ResetTenantResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(7), response.Removed)
}

func (s *MappingHandlerTestSuite) TestCacheStats() {
	stats := cache.Stats{TotalRequests: 3, Hits: 2, Misses: 1, HitRate: 66.67, EntryCount: 2, EstimatedMemoryBytes: 512}
	s.mockService.EXPECT().CacheStats().Return(stats)

	c, rec := s.newContext(http.MethodGet, "/api/v1/cache/stats", "")

	s.Require().NoError(s.cacheHandler.GetStats(c))
	s.Equal(http.StatusOK, rec.Code)

	var response cache.Stats
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(stats, response)
}

func (s *MappingHandlerTestSuite) TestClearCache() {
	s.mockService.EXPECT().ClearCache(gomock.Any()).Times(1)

	c, rec := s.newContext(http.MethodDelete, "/api/v1/cache", "")

	s.Require().NoError(s.cacheHandler.ClearCache(c))
	s.Equal(http.StatusOK, rec.Code)
}
