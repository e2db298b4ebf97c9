package usuario

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CriarUsuarioRequest struct {
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Senha   string `json:"senha"`
	Setor   string `json:"setor"`
	IsAdmin bool   `json:"isAdmin"`
}

type AtualizarUsuarioRequest struct {
	Nome  string `json:"nome"`
	Setor string `json:"setor"`
	Ativo *bool  `json:"ativo"`
}
