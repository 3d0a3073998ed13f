package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gofinanceiro/internal/domain"
)

// StatusError é uma resposta de erro da API, com o corpo padronizado já decodificado.
type StatusError struct {
	StatusCode int
	Category   string
	Message    string
	Details    string
	Fields     map[string]string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, msg, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, msg)
}

// Detail devolve o melhor texto disponível para exibir ao usuário:
// o detalhe do banco quando houver, senão a mensagem.
func (e *StatusError) Detail() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Message
}

// IsStatus informa se err é um StatusError com o código informado.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Client emite as chamadas REST da API GoFinanceiro.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configura o Client.
type Option func(*Client)

// WithHTTPClient troca o *http.Client usado nas chamadas.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout define o timeout de cada chamada. O *http.Client recebido
// por WithHTTPClient não é alterado.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// New cria o cliente para a URL base da API (e.g. http://localhost:3001/api).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executa a chamada. Respostas 204 deixam out intacto; status >= 400 viram *StatusError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("falha ao codificar o corpo: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, decodeError(resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("falha ao decodificar a resposta de %s %s: %w", method, path, err)
	}
	return resp.StatusCode, nil
}

func decodeError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	var body domain.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err == nil {
		se.Category = body.Category
		se.Message = body.Message
		se.Details = body.Details
		se.Fields = body.Fields
	}
	return se
}

// Report busca um relatório; as linhas são devolvidas como mapas coluna -> valor.
// Uma resposta 204 resulta numa lista vazia.
func (c *Client) Report(ctx context.Context, path string, query url.Values) ([]map[string]interface{}, error) {
	rows := []map[string]interface{}{}
	if _, err := c.do(ctx, http.MethodGet, path, query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
