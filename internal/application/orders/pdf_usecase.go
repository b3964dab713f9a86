package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

// PDFUseCase gera o documento imprimível de uma O.S.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	profileRepo  repository.ProfileRepository
	generator    PDFGenerator
}

// NewPDFUseCase constrói o caso de uso injetando as dependências.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	profileRepo repository.ProfileRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		generator:    generator,
	}
}

// DownloadOrderPDF carrega O.S., cliente e perfil e gera o PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) em caso de sucesso.
//   - domain.ErrNotFound se a O.S. não existir para o usuário.
//
// Cliente apagado não bloqueia o documento: o nome copiado na O.S. supre o
// bloco de cliente. Perfil ausente também não bloqueia: o gerador usa o
// cabeçalho padrão.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, userID, orderID string) (pdfBytes []byte, filename string, err error) {
	ord, err := uc.orderRepo.GetByID(userID, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter O.S.: %w", err)
	}
	if ord == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(userID, ord.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter cliente: %w", err)
	}
	if customer == nil {
		customer = &entity.Customer{ID: ord.CustomerID, UserID: userID, Name: ord.CustomerName}
	}

	profile, err := uc.profileRepo.Get(userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obter perfil: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, ord, profile, customer, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("pdf: geração falhou: %w", err)
	}

	filename = fmt.Sprintf("os_%s.pdf", ord.Number())
	return pdfBytes, filename, nil
}
