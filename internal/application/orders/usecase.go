package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/servusapp/servus-api/internal/application/dto"
	"github.com/servusapp/servus-api/internal/domain"
	"github.com/servusapp/servus-api/internal/domain/entity"
	"github.com/servusapp/servus-api/internal/domain/order"
	"github.com/servusapp/servus-api/internal/domain/repository"
)

// Pastas do host de mídia.
const (
	photoFolder     = "servus_photos"
	signatureFolder = "servus_signatures"
)

// UseCase operações sobre O.S. existentes: listagem, ciclo de status,
// assinatura e fotos de evidência.
type UseCase struct {
	repo          repository.OrderRepository
	uploader      MediaUploader
	maxPhotoBytes int
}

// NewUseCase constrói o caso de uso. maxPhotoKB limita o tamanho aceito de
// foto de evidência (o app já comprime para ~1080px/80%; aqui só limitamos).
func NewUseCase(repo repository.OrderRepository, uploader MediaUploader, maxPhotoKB int) *UseCase {
	return &UseCase{repo: repo, uploader: uploader, maxPhotoBytes: maxPhotoKB * 1024}
}

// List lista as O.S. do usuário, mais recentes primeiro.
func (uc *UseCase) List(userID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToOrderResponse(o))
	}
	return out, nil
}

// Get devolve uma O.S. do usuário.
func (uc *UseCase) Get(userID, id string) (*dto.OrderResponse, error) {
	ord, err := uc.loadOrder(userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// Delete remove uma O.S. do usuário.
func (uc *UseCase) Delete(userID, id string) error {
	if _, err := uc.loadOrder(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(userID, id)
}

// AdvanceStatus avança o ciclo open → completed → paid → open com uma
// sobrescrita completa do campo (last writer wins).
func (uc *UseCase) AdvanceStatus(userID, id string) (*dto.StatusResponse, error) {
	ord, err := uc.loadOrder(userID, id)
	if err != nil {
		return nil, err
	}
	next := order.Advance(ord.Status)
	if err := uc.repo.UpdateStatus(userID, id, next); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{ID: id, Status: next}, nil
}

// CollectSignature sobe a assinatura (base64) e grava URL + status completed
// numa única escrita. A assinatura força completed qualquer que seja o status
// atual — é o segundo escritor da máquina de estados, fora do ciclo de
// Advance.
func (uc *UseCase) CollectSignature(ctx context.Context, userID, id string, in dto.SignatureRequest) (*dto.OrderResponse, error) {
	if in.ImageBase64 == "" {
		return nil, domain.ErrInvalidInput
	}
	ord, err := uc.loadOrder(userID, id)
	if err != nil {
		return nil, err
	}
	url, err := uc.uploader.UploadBase64(ctx, in.ImageBase64, signatureFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: assinatura", domain.ErrUploadFailed)
	}
	signed := order.SignedStatus()
	if err := uc.repo.SetSignature(userID, id, url, signed); err != nil {
		return nil, err
	}
	ord.SignatureURL = url
	ord.Status = signed
	resp := ToOrderResponse(ord)
	return &resp, nil
}

// AddPhoto sobe uma foto de evidência e a acrescenta ao array da O.S. sem
// tocar nas existentes.
func (uc *UseCase) AddPhoto(ctx context.Context, userID, id string, data []byte, photoType, caption string) (*dto.OrderPhotoResponse, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if photoType != entity.PhotoTypeBefore && photoType != entity.PhotoTypeAfter {
		return nil, domain.ErrInvalidInput
	}
	if uc.maxPhotoBytes > 0 && len(data) > uc.maxPhotoBytes {
		return nil, fmt.Errorf("%w: foto acima do tamanho máximo", domain.ErrInvalidInput)
	}
	if _, err := uc.loadOrder(userID, id); err != nil {
		return nil, err
	}
	now := time.Now()
	url, err := uc.uploader.Upload(ctx, data, fmt.Sprintf("photo_%d.jpg", now.UnixMilli()), photoFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: foto", domain.ErrUploadFailed)
	}
	photo := entity.OrderPhoto{
		ID:        uuid.New().String(),
		URL:       url,
		Type:      photoType,
		Caption:   caption,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := uc.repo.AppendPhoto(userID, id, photo); err != nil {
		return nil, err
	}
	return &dto.OrderPhotoResponse{
		ID:        photo.ID,
		URL:       photo.URL,
		Type:      photo.Type,
		Caption:   photo.Caption,
		CreatedAt: photo.CreatedAt,
	}, nil
}

// RemovePhoto tira exatamente a foto indicada do array da O.S.
func (uc *UseCase) RemovePhoto(userID, id, photoID string) error {
	ord, err := uc.loadOrder(userID, id)
	if err != nil {
		return err
	}
	remaining := make([]entity.OrderPhoto, 0, len(ord.Photos))
	for _, p := range ord.Photos {
		if p.ID != photoID {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(ord.Photos) {
		return domain.ErrNotFound
	}
	return uc.repo.SetPhotos(userID, id, remaining)
}

func (uc *UseCase) loadOrder(userID, id string) (*entity.WorkOrder, error) {
	ord, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	return ord, nil
}

// ToOrderResponse converte a entidade para o shape de resposta da API.
func ToOrderResponse(o *entity.WorkOrder) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Type:      it.Type,
		})
	}
	var photos []dto.OrderPhotoResponse
	for _, p := range o.Photos {
		photos = append(photos, dto.OrderPhotoResponse{
			ID:        p.ID,
			URL:       p.URL,
			Type:      p.Type,
			Caption:   p.Caption,
			CreatedAt: p.CreatedAt,
		})
	}
	return dto.OrderResponse{
		ID:           o.ID,
		Number:       o.Number(),
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		Items:        items,
		Total:        o.Total,
		Status:       o.Status,
		Date:         o.Date,
		SignatureURL: o.SignatureURL,
		Photos:       photos,
		CreatedAt:    o.CreatedAt,
	}
}
