// seed crea el esquema (products, product_lots) y carga datos de ejemplo
// para desarrollo local.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/lotes-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id        serial PRIMARY KEY,
    name      text NOT NULL,
    image_url text
);

CREATE TABLE IF NOT EXISTS product_lots (
    id          serial PRIMARY KEY,
    product_id  integer NOT NULL REFERENCES products(id),
    exp         date NOT NULL,
    qty_back    integer NOT NULL DEFAULT 0 CHECK (qty_back >= 0),
    qty_display integer NOT NULL DEFAULT 0 CHECK (qty_display >= 0),
    UNIQUE (product_id, exp)
);

CREATE INDEX IF NOT EXISTS idx_product_lots_exp ON product_lots (exp);
`

type seedProduct struct {
	name string
	lots []seedLot
}

type seedLot struct {
	expOffsetDays int // relativo a hoy: negativo = vencido
	qtyBack       int
	qtyDisplay    int
}

// Catálogo de ejemplo: cubre las seis secciones del tablero diario.
var productos = []seedProduct{
	{name: "Leche entera 1L", lots: []seedLot{
		{expOffsetDays: -2, qtyBack: 0, qtyDisplay: 3}, // vencido
		{expOffsetDays: 5, qtyBack: 12, qtyDisplay: 6},
	}},
	{name: "Yogur natural 500g", lots: []seedLot{
		{expOffsetDays: 0, qtyBack: 2, qtyDisplay: 4}, // vence hoy
		{expOffsetDays: 10, qtyBack: 8, qtyDisplay: 0},
	}},
	{name: "Queso fresco 250g", lots: []seedLot{
		{expOffsetDays: 1, qtyBack: 1, qtyDisplay: 2}, // vence mañana
	}},
	{name: "Mantequilla 200g", lots: []seedLot{
		{expOffsetDays: 30, qtyBack: 5, qtyDisplay: 0}, // reponer exhibición
	}},
	{name: "Crema de leche 300ml", lots: []seedLot{
		{expOffsetDays: 4, qtyBack: 7, qtyDisplay: 3}, // próximo a vencer
	}},
	{name: "Pan tajado 500g", lots: []seedLot{
		{expOffsetDays: 20, qtyBack: 10, qtyDisplay: 4}, // ok
	}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "Crear esquema: %v\n", err)
		os.Exit(1)
	}

	hoy := time.Now().UTC()
	var nProductos, nLotes int
	for _, p := range productos {
		var productID int64
		err := conn.QueryRow(ctx,
			`INSERT INTO products (name) VALUES ($1) RETURNING id`, p.name,
		).Scan(&productID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Insertar producto %q: %v\n", p.name, err)
			os.Exit(1)
		}
		nProductos++

		for _, l := range p.lots {
			exp := hoy.AddDate(0, 0, l.expOffsetDays).Format("2006-01-02")
			_, err := conn.Exec(ctx, `
				INSERT INTO product_lots (product_id, exp, qty_back, qty_display)
				VALUES ($1, $2::date, $3, $4)
				ON CONFLICT (product_id, exp) DO UPDATE SET
					qty_back = EXCLUDED.qty_back,
					qty_display = EXCLUDED.qty_display`,
				productID, exp, l.qtyBack, l.qtyDisplay)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Insertar lote de %q (%s): %v\n", p.name, exp, err)
				os.Exit(1)
			}
			nLotes++
		}
	}

	fmt.Printf("Esquema creado. Insertados %d productos y %d lotes de ejemplo\n", nProductos, nLotes)
}
