// Package client implementa el cliente HTTP de la API de lotes para terminales
// de conteo (tablets, handhelds). Incluye el controlador optimista de ±1 que
// usan los botones de la góndola.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Lot fila de lote tal como viaja por la API.
type Lot struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	Exp        string `json:"exp"`
	QtyBack    int    `json:"qty_back"`
	QtyDisplay int    `json:"qty_display"`
}

// MergeRequest body de POST /api/products/:id/lots.
type MergeRequest struct {
	Exp        string `json:"exp"`
	QtyBack    *int   `json:"qty_back,omitempty"`
	QtyDisplay *int   `json:"qty_display,omitempty"`
	Mode       string `json:"mode,omitempty"`
}

type lotListResponse struct {
	OK   bool   `json:"ok"`
	Lots []Lot  `json:"lots"`
	Code string `json:"code"`
}

type lotMergeResponse struct {
	OK      bool   `json:"ok"`
	Lot     Lot    `json:"lot"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// APIError respuesta de error de la API (validación o almacenamiento).
type APIError struct {
	Status  int
	Code    string
	Message string
	Detail  string
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %d %s: %s (%s)", e.Status, e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente de la API de lotes. Seguro para uso concurrente.
type Client struct {
	http *resty.Client
}

// New construye el cliente contra baseURL con el timeout dado.
func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: r}
}

// ListLots devuelve los lotes del producto ordenados por exp asc, id asc.
func (c *Client) ListLots(ctx context.Context, productID int64) ([]Lot, error) {
	var out lotListResponse
	var apiErr lotMergeResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get(fmt.Sprintf("/api/products/%d/lots", productID))
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Code: apiErr.Code, Message: apiErr.Message, Detail: apiErr.Detail}
	}
	return out.Lots, nil
}

// MergeLot aplica un merge sobre (productID, req.Exp) y devuelve la fila resultante.
func (c *Client) MergeLot(ctx context.Context, productID int64, req MergeRequest) (*Lot, error) {
	var out lotMergeResponse
	var apiErr lotMergeResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/api/products/%d/lots", productID))
	if err != nil {
		return nil, fmt.Errorf("merge lot: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Code: apiErr.Code, Message: apiErr.Message, Detail: apiErr.Detail}
	}
	return &out.Lot, nil
}
