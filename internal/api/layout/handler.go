package layout

import (
	"context"
	"net/http"

	"gocrane/internal/api/response"
	"gocrane/internal/domain"
	"gocrane/internal/pkg/logger"
)

// LayoutService define o contrato que o Handler espera da camada de Serviço.
type LayoutService interface {
	CreateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error)
	GetLayoutByID(ctx context.Context, id string) (domain.Layout, error)
	GetAllLayouts(ctx context.Context) ([]domain.Layout, error)
	UpdateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error)
	DeleteLayout(ctx context.Context, id string) error
}

// Handler agrupa os handlers de layouts.
type Handler struct {
	Service LayoutService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc LayoutService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// CreateLayoutHandler lida com POST /v1/layouts.
// @Summary Cria um novo layout
// @Tags layouts
// @Accept json
// @Produce json
// @Param layout body domain.Layout true "Nome e diagrama"
// @Success 201 {object} domain.Layout
// @Failure 400 {object} domain.ErrorResponse "Payload ou diagrama inválido"
// @Security ApiKeyAuth
// @Router /layouts [post]
func (h *Handler) CreateLayoutHandler(w http.ResponseWriter, r *http.Request) {
	var layout domain.Layout
	if err := response.Decode(w, r, &layout, 0); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateLayout(r.Context(), layout)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, created)
}

// GetLayoutByIDHandler lida com GET /v1/layouts/{id}.
// @Summary Obtém um layout por ID
// @Tags layouts
// @Produce json
// @Param id path string true "ID do Layout"
// @Success 200 {object} domain.Layout
// @Failure 404 {object} domain.ErrorResponse "Layout não encontrado"
// @Security ApiKeyAuth
// @Router /layouts/{id} [get]
func (h *Handler) GetLayoutByIDHandler(w http.ResponseWriter, r *http.Request) {
	layout, err := h.Service.GetLayoutByID(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, layout)
}

// GetAllLayoutsHandler lida com GET /v1/layouts.
// @Summary Lista todos os layouts
// @Tags layouts
// @Produce json
// @Success 200 {array} domain.Layout
// @Security ApiKeyAuth
// @Router /layouts [get]
func (h *Handler) GetAllLayoutsHandler(w http.ResponseWriter, r *http.Request) {
	layouts, err := h.Service.GetAllLayouts(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, layouts)
}

// UpdateLayoutHandler lida com PUT /v1/layouts/{id}.
// @Summary Atualiza um layout
// @Tags layouts
// @Accept json
// @Produce json
// @Param id path string true "ID do Layout"
// @Param layout body domain.Layout true "Nome e diagrama"
// @Success 200 {object} domain.Layout
// @Failure 404 {object} domain.ErrorResponse "Layout não encontrado"
// @Security ApiKeyAuth
// @Router /layouts/{id} [put]
func (h *Handler) UpdateLayoutHandler(w http.ResponseWriter, r *http.Request) {
	var layout domain.Layout
	if err := response.Decode(w, r, &layout, 0); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	layout.ID = r.PathValue("id")

	updated, err := h.Service.UpdateLayout(r.Context(), layout)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, updated)
}

// DeleteLayoutHandler lida com DELETE /v1/layouts/{id}.
// @Summary Deleta um layout
// @Tags layouts
// @Param id path string true "ID do Layout"
// @Success 204 "Nenhum conteúdo"
// @Failure 404 {object} domain.ErrorResponse "Layout não encontrado"
// @Security ApiKeyAuth
// @Router /layouts/{id} [delete]
func (h *Handler) DeleteLayoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteLayout(r.Context(), r.PathValue("id")); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusNoContent, nil)
}
