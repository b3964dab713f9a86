package orders

import (
	"context"
	"time"

	"github.com/servusapp/servus-api/internal/domain/entity"
)

// MediaUploader sobe imagens para o host de mídia e devolve a URL permanente.
// Sem retry: em caso de falha o chamador decide se tenta de novo.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
	UploadBase64(ctx context.Context, base64Image, folder string) (string, error)
}

// PDFGenerator produz o documento imprimível da O.S. Determinístico para
// entradas idênticas: a data de emissão vem do chamador e as imagens remotas
// passam por um fetcher injetado.
type PDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.WorkOrder,
		profile *entity.Profile,
		customer *entity.Customer,
		issuedAt time.Time,
	) ([]byte, error)
}
