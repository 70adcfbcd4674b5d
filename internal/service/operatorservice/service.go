package operatorservice

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

const minPasswordLength = 8

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(operatorID string, role string) (string, error)
}

// Service registra e autentica operadores.
type Service struct {
	repo        domain.OperatorRepository
	tokenSvc    TokenService
	logger      logger.Logger
	adminEmails map[string]bool
}

// NewService cria o serviço. Operadores registrados com um e-mail de adminEmails recebem o papel admin.
func NewService(repo domain.OperatorRepository, tokenSvc TokenService, log logger.Logger, adminEmails []string) *Service {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			admins[e] = true
		}
	}
	return &Service{repo: repo, tokenSvc: tokenSvc, logger: log, adminEmails: admins}
}

// Register valida os dados, gera o hash da senha e grava o operador.
func (s *Service) Register(ctx context.Context, registration domain.OperatorRegistration) (domain.Operator, error) {
	email := normalizeEmail(registration.Email)
	if email == "" || registration.Password == "" {
		return domain.Operator{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Operator{}, apperror.NewValidationError("Email inválido.")
	}
	if len(registration.Password) < minPasswordLength {
		return domain.Operator{}, apperror.NewValidationError("A senha deve ter pelo menos 8 caracteres.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Operator{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	role := domain.RoleOperator
	if s.adminEmails[email] {
		role = domain.RoleAdmin
	}

	operator, err := s.repo.Save(ctx, domain.Operator{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	})
	if err != nil {
		return domain.Operator{}, err // ConflictError para e-mail duplicado
	}

	s.logger.Info("Operador registrado.", map[string]interface{}{"operator_id": operator.ID, "role": operator.Role})
	return operator, nil
}

// Login confere as credenciais e devolve um JWT.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	operator, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// NotFound vira Unauthorized para não revelar quais e-mails existem
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Tentativa de login com senha incorreta.", map[string]interface{}{"operator_id": operator.ID})
		return "", apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(operator.ID, string(operator.Role))
	if err != nil {
		s.logger.Error("Falha ao gerar token.", err)
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}
	return tokenString, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
