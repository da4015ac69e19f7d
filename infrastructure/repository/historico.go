package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
)

const historicoTable = "cartera_historico_diario"

type HistoricoRepository interface {
	AppendFotoDiaria(fecha time.Time) (int, error)
	AppendFotoDiariaTx(tx *sql.Tx, fecha time.Time) error
	Tendencia(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.PuntoTendencia, error)
}

type historicoRepository struct {
	conn *sqlite.Connection
}

func NewHistoricoRepository(conn *sqlite.Connection) HistoricoRepository {
	return &historicoRepository{
		conn: conn,
	}
}

// fotoDiariaSQL copia la foto actual al histórico. La clave
// (fecha_carga, nit, factura) hace la operación idempotente por día.
const fotoDiariaSQL = `INSERT INTO cartera_historico_diario (fecha_carga, nit, factura, valor, dias_vencidos, vendedor)
	SELECT ?, nit, factura, valor, dias_vencidos, vendedor FROM cartera_actual WHERE true
	ON CONFLICT (fecha_carga, nit, factura) DO NOTHING`

func (r *historicoRepository) AppendFotoDiaria(fecha time.Time) (int, error) {
	result, err := r.conn.Exec(fotoDiariaSQL, fecha.Format(time.DateOnly))
	if err != nil {
		return 0, err
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(filas), nil
}

func (r *historicoRepository) AppendFotoDiariaTx(tx *sql.Tx, fecha time.Time) error {
	_, err := tx.Exec(fotoDiariaSQL, fecha.Format(time.DateOnly))
	return err
}

// Tendencia agrega el histórico diario por fecha de carga para las series
// de los tableros.
func (r *historicoRepository) Tendencia(scope domain.VendorScope, periodo domain.Periodo) ([]*domain.PuntoTendencia, error) {
	queryBuilder := squirrel.
		Select(
			"fecha_carga",
			"SUM(valor)",
			"SUM(CASE WHEN dias_vencidos > 0 THEN valor ELSE 0 END)",
			"COUNT(*)",
		).
		From(historicoTable).
		Where(squirrel.GtOrEq{"fecha_carga": periodo.Desde.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"fecha_carga": periodo.Hasta.Format(time.DateOnly)}).
		GroupBy("fecha_carga").
		OrderBy("fecha_carga ASC")

	queryBuilder = aplicarScope(queryBuilder, scope, "vendedor")

	historicoSQL, historicoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(historicoSQL, historicoArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var puntos []*domain.PuntoTendencia
	for rows.Next() {
		var punto domain.PuntoTendencia
		// El driver devuelve las columnas DATE ya convertidas a time.Time.
		if err := rows.Scan(&punto.Fecha, &punto.ValorTotal, &punto.ValorVencido, &punto.Facturas); err != nil {
			return nil, err
		}

		puntos = append(puntos, &punto)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return puntos, nil
}
