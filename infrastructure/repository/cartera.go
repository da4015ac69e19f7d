package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
)

const carteraTable = "cartera_actual"

type CarteraRepository interface {
	ListFacturas(scope domain.VendorScope, filtros *domain.FiltrosCartera) ([]*domain.FacturaCartera, error)
	ReemplazarSnapshotTx(tx *sql.Tx, cargaID string, facturas []*domain.FacturaCartera) error
}

type carteraRepository struct {
	conn *sqlite.Connection
}

func NewCarteraRepository(conn *sqlite.Connection) CarteraRepository {
	return &carteraRepository{
		conn: conn,
	}
}

// aplicarScope traduce el alcance por vendedor a un predicado SQL. Un
// alcance vacío no devuelve filas.
func aplicarScope(qb squirrel.SelectBuilder, scope domain.VendorScope, columna string) squirrel.SelectBuilder {
	if scope.All {
		return qb
	}
	if scope.Vacio() {
		return qb.Where("1 = 0")
	}
	return qb.Where(squirrel.Eq{columna: scope.Vendedor})
}

func (r *carteraRepository) ListFacturas(scope domain.VendorScope, filtros *domain.FiltrosCartera) ([]*domain.FacturaCartera, error) {
	queryBuilder := squirrel.
		Select("id", "nit", "factura", "valor", "fecha_emision", "fecha_vencimiento", "condicion_pago", "dias_vencidos", "vendedor", "centro_operativo", "carga_id").
		From(carteraTable).
		OrderBy("dias_vencidos DESC, valor DESC")

	queryBuilder = aplicarScope(queryBuilder, scope, "vendedor")

	if filtros != nil {
		if filtros.NIT != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"nit": filtros.NIT})
		}
		if filtros.Vendedor != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"vendedor": filtros.Vendedor})
		}
		if filtros.SoloVencidas {
			queryBuilder = queryBuilder.Where(squirrel.Gt{"dias_vencidos": 0})
		}
	}

	carteraSQL, carteraArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(carteraSQL, carteraArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facturas []*domain.FacturaCartera
	for rows.Next() {
		var factura domain.FacturaCartera
		if err := rows.Scan(
			&factura.ID,
			&factura.NIT,
			&factura.Factura,
			&factura.Valor,
			&factura.FechaEmision,
			&factura.FechaVencimiento,
			&factura.CondicionPago,
			&factura.DiasVencidos,
			&factura.Vendedor,
			&factura.CentroOperativo,
			&factura.CargaID,
		); err != nil {
			return nil, err
		}

		facturas = append(facturas, &factura)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return facturas, nil
}

// ReemplazarSnapshotTx borra la foto actual completa y la reinserta dentro
// de la transacción recibida. El borrado y la reinserción deben compartir
// transacción: un archivo malo no puede dejar la tabla vacía.
func (r *carteraRepository) ReemplazarSnapshotTx(tx *sql.Tx, cargaID string, facturas []*domain.FacturaCartera) error {
	if _, err := tx.Exec("DELETE FROM cartera_actual"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO cartera_actual
		(nit, factura, valor, fecha_emision, fecha_vencimiento, condicion_pago, dias_vencidos, vendedor, centro_operativo, carga_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range facturas {
		_, err := stmt.Exec(
			f.NIT,
			f.Factura,
			f.Valor,
			f.FechaEmision,
			f.FechaVencimiento,
			f.CondicionPago,
			f.DiasVencidos,
			f.Vendedor,
			f.CentroOperativo,
			cargaID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
