package dto

type SupermercadoResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	Endereco *string `json:"endereco,omitempty"`
}
