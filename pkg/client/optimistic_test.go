package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lotes-api/pkg/client"
)

// servidorFalso simula la API: un único lote cuyo estado muta con merges delta.
// failMerges fuerza 500 en los POST para probar el rollback optimista.
type servidorFalso struct {
	lot        client.Lot
	failMerges bool
	merges     int
}

func (s *servidorFalso) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/5/lots", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "lots": []client.Lot{s.lot}})
			return
		}
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		s.merges++
		if s.failMerges {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok": false, "code": "DB_ERROR", "message": "error de almacenamiento",
				"detail": "merge lot: connection failure (sqlstate 08006)",
			})
			return
		}
		var req client.MergeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.QtyBack != nil {
			s.lot.QtyBack += *req.QtyBack
		}
		if req.QtyDisplay != nil {
			s.lot.QtyDisplay += *req.QtyDisplay
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "lot": s.lot})
	})
	return mux
}

func nuevoEntorno(t *testing.T) (*servidorFalso, *client.Client) {
	t.Helper()
	srv := &servidorFalso{lot: client.Lot{ID: 1, ProductID: 5, Exp: "2026-01-25", QtyBack: 2, QtyDisplay: 1}}
	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)
	return srv, client.New(ts.URL, 5*time.Second)
}

func TestOptimistic_IncrementoConRelectura(t *testing.T) {
	srv, api := nuevoEntorno(t)
	opt := client.NewOptimisticLot(api, srv.lot)

	got, err := opt.IncBack(context.Background())
	require.NoError(t, err)

	// El valor final viene de la relectura del servidor, no de la copia optimista
	assert.Equal(t, 3, got.QtyBack)
	assert.Equal(t, 3, srv.lot.QtyBack)
	assert.Equal(t, 1, srv.merges)
}

// Otra sesión editó el mismo lote entre el merge y la relectura: el controlador
// adopta el estado del servidor en lugar de confiar en su valor optimista.
func TestOptimistic_ReconciliaEdicionConcurrente(t *testing.T) {
	srv, api := nuevoEntorno(t)
	opt := client.NewOptimisticLot(api, srv.lot)

	// Simular la otra sesión: el servidor ya acumuló dos unidades más
	srv.lot.QtyBack += 2

	got, err := opt.IncBack(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, got.QtyBack, "2 iniciales + 2 concurrentes + 1 propio")
}

func TestOptimistic_RollbackEnFalla(t *testing.T) {
	srv, api := nuevoEntorno(t)
	srv.failMerges = true
	opt := client.NewOptimisticLot(api, srv.lot)

	got, err := opt.IncDisplay(context.Background())
	require.ErrorIs(t, err, client.ErrStaleLocalState)

	// La copia local vuelve al último estado bueno conocido
	assert.Equal(t, 1, got.QtyDisplay)
	assert.Equal(t, 1, opt.Current().QtyDisplay)

	// La causa queda envuelta para que la UI decida
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "DB_ERROR", apiErr.Code)

	// Un solo intento: sin reintentos automáticos
	assert.Equal(t, 1, srv.merges)
}

// Decremento con contador en cero: no-op local, sin petición al servidor.
func TestOptimistic_DecEnCeroEsNoOp(t *testing.T) {
	srv, api := nuevoEntorno(t)
	srv.lot.QtyDisplay = 0
	opt := client.NewOptimisticLot(api, srv.lot)

	got, err := opt.DecDisplay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.QtyDisplay)
	assert.Equal(t, 0, srv.merges)
}

func TestClient_ListLots(t *testing.T) {
	srv, api := nuevoEntorno(t)

	lots, err := api.ListLots(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, srv.lot, lots[0])
}

func TestClient_ErrorDeValidacion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/5/lots", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "code": "VALIDATION", "message": "datos inválidos"})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	api := client.New(ts.URL, 5*time.Second)

	_, err := api.MergeLot(context.Background(), 5, client.MergeRequest{})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "VALIDATION", apiErr.Code)
}
