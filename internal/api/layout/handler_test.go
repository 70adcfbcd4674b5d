package layout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gocrane/internal/api/layout"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

type MockLayoutService struct {
	mock.Mock
}

func (m *MockLayoutService) CreateLayout(ctx context.Context, l domain.Layout) (domain.Layout, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(domain.Layout), args.Error(1)
}

func (m *MockLayoutService) GetLayoutByID(ctx context.Context, id string) (domain.Layout, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Layout), args.Error(1)
}

func (m *MockLayoutService) GetAllLayouts(ctx context.Context) ([]domain.Layout, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Layout), args.Error(1)
}

func (m *MockLayoutService) UpdateLayout(ctx context.Context, l domain.Layout) (domain.Layout, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(domain.Layout), args.Error(1)
}

func (m *MockLayoutService) DeleteLayout(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

const layoutID = "7d1c3f5e-2b9a-4c1d-8e6f-0a1b2c3d4e5f"

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateLayoutHandler_Success(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	svc.On("CreateLayout", mock.Anything, domain.Layout{Name: "Doca 1", Diagram: "[A]\n 1"}).
		Return(domain.Layout{ID: layoutID, Name: "Doca 1", Diagram: "[A]\n 1", PileCount: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/layouts", strings.NewReader(`{"name":"Doca 1","diagram":"[A]\n 1"}`))
	rec := httptest.NewRecorder()
	h.CreateLayoutHandler(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Layout
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, layoutID, got.ID)
	assert.Equal(t, 1, got.PileCount)
	svc.AssertExpectations(t)
}

func TestCreateLayoutHandler_InvalidJSON(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/v1/layouts", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	h.CreateLayoutHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Category)
	svc.AssertNotCalled(t, "CreateLayout", mock.Anything, mock.Anything)
}

func TestGetLayoutByIDHandler_NotFound(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	svc.On("GetLayoutByID", mock.Anything, layoutID).
		Return(domain.Layout{}, apperror.NewNotFoundError("layout não encontrado"))

	req := httptest.NewRequest(http.MethodGet, "/v1/layouts/"+layoutID, nil)
	req.SetPathValue("id", layoutID)
	rec := httptest.NewRecorder()
	h.GetLayoutByIDHandler(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "NOT_FOUND", resp.Category)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetAllLayoutsHandler(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	svc.On("GetAllLayouts", mock.Anything).Return([]domain.Layout{{ID: "a"}, {ID: "b"}}, nil)

	rec := httptest.NewRecorder()
	h.GetAllLayoutsHandler(rec, httptest.NewRequest(http.MethodGet, "/v1/layouts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Layout
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestUpdateLayoutHandler_UsesPathID(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	expected := domain.Layout{ID: layoutID, Name: "Doca 2", Diagram: "[A]\n 1"}
	svc.On("UpdateLayout", mock.Anything, expected).Return(expected, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/layouts/"+layoutID, strings.NewReader(`{"id":"outro","name":"Doca 2","diagram":"[A]\n 1"}`))
	req.SetPathValue("id", layoutID)
	rec := httptest.NewRecorder()
	h.UpdateLayoutHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteLayoutHandler(t *testing.T) {
	svc := new(MockLayoutService)
	h := layout.NewHandler(svc, logger.NewNop())

	svc.On("DeleteLayout", mock.Anything, layoutID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/layouts/"+layoutID, nil)
	req.SetPathValue("id", layoutID)
	rec := httptest.NewRecorder()
	h.DeleteLayoutHandler(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
