package layoutservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gocrane/internal/diagram"
	"gocrane/internal/domain"
	apperror "gocrane/internal/errors"
	"gocrane/internal/pkg/logger"
)

// Service implementa as regras de negócio de layouts.
type Service struct {
	repo   domain.LayoutRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do serviço de layouts.
func NewService(repo domain.LayoutRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateLayout valida nome e diagrama e grava o layout.
func (s *Service) CreateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	s.logger.Debug("Iniciando criação de layout no serviço.", map[string]interface{}{"name": layout.Name})

	normalized, err := s.validate(layout)
	if err != nil {
		return domain.Layout{}, err
	}

	created, err := s.repo.CreateLayout(ctx, normalized)
	if err != nil {
		s.logger.Error("Falha ao criar layout no repositório.", err)
		return domain.Layout{}, apperror.NewInternalError("Falha interna ao criar layout.", err)
	}

	s.logger.Info("Layout criado com sucesso.", map[string]interface{}{"id": created.ID, "piles": created.PileCount})
	return created, nil
}

// GetLayoutByID busca um layout pelo ID.
func (s *Service) GetLayoutByID(ctx context.Context, id string) (domain.Layout, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("ID de layout inválido fornecido.", map[string]interface{}{"id": id})
		return domain.Layout{}, apperror.NewValidationError("O ID do layout deve ser um UUID válido.")
	}

	layout, err := s.repo.GetLayoutByID(ctx, id)
	if err != nil {
		return domain.Layout{}, err // já é NotFoundError ou DBError
	}
	return layout, nil
}

// GetAllLayouts lista todos os layouts.
func (s *Service) GetAllLayouts(ctx context.Context) ([]domain.Layout, error) {
	layouts, err := s.repo.GetAllLayouts(ctx)
	if err != nil {
		s.logger.Error("Falha ao buscar todos os layouts no repositório.", err)
		return nil, apperror.NewInternalError("Falha interna ao buscar layouts.", err)
	}
	return layouts, nil
}

// UpdateLayout valida e atualiza um layout existente.
func (s *Service) UpdateLayout(ctx context.Context, layout domain.Layout) (domain.Layout, error) {
	s.logger.Debug("Iniciando atualização de layout no serviço.", map[string]interface{}{"id": layout.ID})

	if _, err := uuid.Parse(layout.ID); err != nil {
		return domain.Layout{}, apperror.NewValidationError("O ID do layout deve ser um UUID válido.")
	}

	normalized, err := s.validate(layout)
	if err != nil {
		return domain.Layout{}, err
	}

	updated, err := s.repo.UpdateLayout(ctx, normalized)
	if err != nil {
		s.logger.Error("Falha ao atualizar layout no repositório.", err)
		return domain.Layout{}, err
	}

	s.logger.Info("Layout atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// DeleteLayout remove um layout.
func (s *Service) DeleteLayout(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError("O ID do layout deve ser um UUID válido.")
	}

	if err := s.repo.DeleteLayout(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar layout no repositório.", err)
		return err
	}

	s.logger.Info("Layout deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// validate confere o nome, interpreta o diagrama e devolve o layout normalizado
// (linhas em branco nas pontas removidas e PileCount preenchido).
func (s *Service) validate(layout domain.Layout) (domain.Layout, error) {
	name := strings.TrimSpace(layout.Name)
	if name == "" {
		return domain.Layout{}, apperror.NewValidationError("O nome do layout não pode ser vazio.")
	}
	if len(name) < 3 || len(name) > 100 {
		return domain.Layout{}, apperror.NewValidationError("O nome do layout deve ter entre 3 e 100 caracteres.")
	}

	lines := diagram.SplitLines(layout.Diagram)
	w, err := diagram.Parse(lines)
	if err != nil {
		s.logger.Warn("Diagrama de layout rejeitado.", map[string]interface{}{"name": name, "error": err.Error()})
		return domain.Layout{}, err
	}

	layout.Name = name
	layout.Diagram = strings.Join(lines, "\n")
	layout.PileCount = w.PileCount()
	return layout, nil
}
