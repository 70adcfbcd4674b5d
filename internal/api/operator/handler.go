package operator

import (
	"context"
	"net/http"

	"gocrane/internal/api/response"
	"gocrane/internal/domain"
	"gocrane/internal/pkg/logger"
)

// OperatorService define o contrato para registro e login.
type OperatorService interface {
	Register(ctx context.Context, registration domain.OperatorRegistration) (domain.Operator, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// LoginRequest é o payload de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carrega o JWT emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// Handler agrupa os handlers de operadores.
type Handler struct {
	Service OperatorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc OperatorService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// RegisterHandler lida com POST /v1/register.
// @Summary Registra um novo operador
// @Tags operators
// @Accept json
// @Produce json
// @Param registration body domain.OperatorRegistration true "Email e senha"
// @Success 201 {object} domain.Operator
// @Failure 409 {object} domain.ErrorResponse "Email já em uso"
// @Router /register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.OperatorRegistration
	if err := response.Decode(w, r, &reg, 0); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	op, err := h.Service.Register(r.Context(), reg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, op)
}

// LoginHandler lida com POST /v1/login.
// @Summary Autentica um operador
// @Tags operators
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email e senha"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.Decode(w, r, &req, 0); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	tokenString, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, LoginResponse{Token: tokenString})
}
