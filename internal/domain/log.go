package domain

import "time"

// Log representa a tabela LOG, gravada por gatilho no banco (somente leitura aqui).
type Log struct {
	IDLog     int64     `json:"id_log"`
	Data      time.Time `json:"data"`
	IDProduto *int64    `json:"id_produto"`
	Mensagem  string    `json:"mensagem"`
}

// NoInput é usado por recursos somente leitura.
type NoInput struct{}
