// Package cloudinary implementa o host de mídia via upload unsigned do
// Cloudinary: POST multipart com upload_preset, sem assinatura de API. É o
// mesmo contrato que o app usa, então os presets e pastas são compartilhados.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const uploadURLFormat = "https://api.cloudinary.com/v1_1/%s/image/upload"

// Uploader sobe imagens por upload unsigned e devolve a secure_url.
type Uploader struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// NewUploader constrói o uploader para a conta indicada.
func NewUploader(cloudName, uploadPreset string) *Uploader {
	return &Uploader{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sobe os bytes como parte binária do multipart.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("montar multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("montar multipart: %w", err)
	}
	if err := u.writeCommonFields(w, folder); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("montar multipart: %w", err)
	}
	return u.post(ctx, &body, w.FormDataContentType())
}

// UploadBase64 sobe uma imagem base64. O Cloudinary aceita data URI no campo
// file; se vier só o payload, prefixamos como PNG.
func (u *Uploader) UploadBase64(ctx context.Context, base64Image, folder string) (string, error) {
	if !strings.HasPrefix(base64Image, "data:") {
		base64Image = "data:image/png;base64," + base64Image
	}
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("file", base64Image); err != nil {
		return "", fmt.Errorf("montar multipart: %w", err)
	}
	if err := u.writeCommonFields(w, folder); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("montar multipart: %w", err)
	}
	return u.post(ctx, &body, w.FormDataContentType())
}

func (u *Uploader) writeCommonFields(w *multipart.Writer, folder string) error {
	if err := w.WriteField("upload_preset", u.uploadPreset); err != nil {
		return fmt.Errorf("montar multipart: %w", err)
	}
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			return fmt.Errorf("montar multipart: %w", err)
		}
	}
	return nil
}

func (u *Uploader) post(ctx context.Context, body io.Reader, contentType string) (string, error) {
	url := fmt.Sprintf(uploadURLFormat, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("montar request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload cloudinary: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ler resposta cloudinary: %w", err)
	}
	var parsed uploadResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decodificar resposta cloudinary (HTTP %d): %w", resp.StatusCode, err)
	}
	if parsed.SecureURL == "" {
		msg := parsed.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return "", fmt.Errorf("upload cloudinary falhou: %s", msg)
	}
	return parsed.SecureURL, nil
}

// FetchImage baixa uma imagem já hospedada (logo, assinatura, fotos) para
// embutir no PDF.
func (u *Uploader) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("montar request: %w", err)
	}
	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baixar imagem: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("baixar imagem: HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 10<<20))
}
