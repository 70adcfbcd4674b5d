package simulation

import (
	"context"
	"net/http"
	"strconv"

	"gocrane/internal/api/response"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

// SimulationService define o contrato que o Handler espera da camada de Serviço.
type SimulationService interface {
	Simulate(ctx context.Context, req domain.SimulationRequest) (domain.Run, error)
	GetRun(ctx context.Context, id string) (domain.Run, error)
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}

// Handler agrupa os handlers de simulação.
type Handler struct {
	Service      SimulationService
	Logger       logger.Logger
	MaxBodyBytes int64
}

// NewHandler cria uma nova instância do Handler. maxBodyBytes <= 0 usa response.DefaultMaxBodyBytes.
func NewHandler(svc SimulationService, log logger.Logger, maxBodyBytes int64) *Handler {
	return &Handler{Service: svc, Logger: log, MaxBodyBytes: maxBodyBytes}
}

// SimulateHandler lida com POST /v1/simulations.
// @Summary Executa uma simulação
// @Description Aplica as instruções ao diagrama e devolve o topo de cada pilha.
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body domain.SimulationRequest true "Entrada completa ou layout + instruções"
// @Success 201 {object} domain.Run
// @Failure 400 {object} domain.ErrorResponse "Entrada malformada"
// @Failure 422 {object} domain.ErrorResponse "Instrução impossível no estado atual"
// @Security ApiKeyAuth
// @Router /simulations [post]
func (h *Handler) SimulateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.SimulationRequest
	if err := response.Decode(w, r, &req, h.MaxBodyBytes); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	run, err := h.Service.Simulate(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, run)
}

// GetRunHandler lida com GET /v1/simulations/{id}.
// @Summary Obtém uma execução
// @Tags simulations
// @Produce json
// @Param id path string true "ID da execução"
// @Success 200 {object} domain.Run
// @Failure 404 {object} domain.ErrorResponse "Execução não encontrada"
// @Security ApiKeyAuth
// @Router /simulations/{id} [get]
func (h *Handler) GetRunHandler(w http.ResponseWriter, r *http.Request) {
	run, err := h.Service.GetRun(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, run)
}

// ListRunsHandler lida com GET /v1/simulations?limit=N.
// @Summary Lista as execuções mais recentes
// @Tags simulations
// @Produce json
// @Param limit query int false "Quantidade máxima (1..100)"
// @Success 200 {array} domain.Run
// @Security ApiKeyAuth
// @Router /simulations [get]
func (h *Handler) ListRunsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, r, h.Logger, apperror.NewValidationError("O parâmetro limit deve ser um número inteiro."))
			return
		}
		limit = n
	}

	runs, err := h.Service.ListRuns(r.Context(), limit)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, runs)
}
