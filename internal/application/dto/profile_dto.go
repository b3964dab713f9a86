package dto

// UpdateProfileRequest body de PUT /api/profile. Semântica de merge: campos
// nulos não tocam no valor salvo. O plano não é editável por aqui.
type UpdateProfileRequest struct {
	BusinessName *string `json:"business_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	PixKey       *string `json:"pix_key,omitempty"`
	Address      *string `json:"address,omitempty"`
	Email        *string `json:"email,omitempty"`
	CNPJ         *string `json:"cnpj,omitempty"`
}

// ProfileResponse perfil de negócio em respostas.
type ProfileResponse struct {
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone,omitempty"`
	PixKey       string `json:"pix_key,omitempty"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	CNPJ         string `json:"cnpj,omitempty"`
	Plan         string `json:"plan"`
}

// SubscriptionLinkResponse deep link de upgrade via WhatsApp.
type SubscriptionLinkResponse struct {
	URL string `json:"url"`
}
