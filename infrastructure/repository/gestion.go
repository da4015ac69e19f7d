package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
)

const gestionesTable = "gestiones"

type GestionRepository interface {
	CrearGestion(gestion *domain.GestionCobro) (*domain.GestionCobro, error)
	ListGestionesPorNIT(nit string, periodo domain.Periodo) ([]*domain.GestionCobro, error)
	NITsConGestion(periodo domain.Periodo) (map[string]bool, error)
	SeguimientosPendientes(periodo domain.Periodo) ([]*domain.GestionCobro, error)
}

type gestionRepository struct {
	conn *sqlite.Connection
}

func NewGestionRepository(conn *sqlite.Connection) GestionRepository {
	return &gestionRepository{
		conn: conn,
	}
}

func (r *gestionRepository) CrearGestion(gestion *domain.GestionCobro) (*domain.GestionCobro, error) {
	queryBuilder := squirrel.
		Insert(gestionesTable).
		Columns("nit", "tipo_contacto", "resultado", "fecha", "usuario_id", "notas", "fecha_promesa_pago", "valor_promesa_pago", "proximo_seguimiento").
		Values(
			gestion.NIT,
			gestion.TipoContacto,
			gestion.Resultado,
			gestion.Fecha,
			gestion.UsuarioID,
			gestion.Notas,
			gestion.FechaPromesaPago,
			gestion.ValorPromesaPago,
			gestion.ProximoSeguimiento,
		)

	gestionesSQL, gestionesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(gestionesSQL, gestionesArgs...)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	gestion.ID = int(id)
	return gestion, nil
}

func (r *gestionRepository) ListGestionesPorNIT(nit string, periodo domain.Periodo) ([]*domain.GestionCobro, error) {
	queryBuilder := squirrel.
		Select("id", "nit", "tipo_contacto", "resultado", "fecha", "usuario_id", "notas", "fecha_promesa_pago", "valor_promesa_pago", "proximo_seguimiento", "creado_en").
		From(gestionesTable).
		Where(squirrel.Eq{"nit": nit}).
		Where(squirrel.GtOrEq{"fecha": periodo.Desde}).
		Where(squirrel.LtOrEq{"fecha": periodo.Hasta}).
		OrderBy("fecha DESC, id DESC")

	return r.queryGestiones(queryBuilder)
}

// NITsConGestion devuelve los clientes con al menos una gestión en el
// período, para el cálculo de avance de cobro.
func (r *gestionRepository) NITsConGestion(periodo domain.Periodo) (map[string]bool, error) {
	queryBuilder := squirrel.
		Select("DISTINCT nit").
		From(gestionesTable).
		Where(squirrel.GtOrEq{"fecha": periodo.Desde}).
		Where(squirrel.LtOrEq{"fecha": periodo.Hasta})

	gestionesSQL, gestionesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(gestionesSQL, gestionesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nits := make(map[string]bool)
	for rows.Next() {
		var nit string
		if err := rows.Scan(&nit); err != nil {
			return nil, err
		}
		nits[nit] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return nits, nil
}

// SeguimientosPendientes lista las gestiones cuyo próximo seguimiento cae en
// el período dado.
func (r *gestionRepository) SeguimientosPendientes(periodo domain.Periodo) ([]*domain.GestionCobro, error) {
	queryBuilder := squirrel.
		Select("id", "nit", "tipo_contacto", "resultado", "fecha", "usuario_id", "notas", "fecha_promesa_pago", "valor_promesa_pago", "proximo_seguimiento", "creado_en").
		From(gestionesTable).
		Where(squirrel.GtOrEq{"proximo_seguimiento": periodo.Desde}).
		Where(squirrel.LtOrEq{"proximo_seguimiento": periodo.Hasta}).
		OrderBy("proximo_seguimiento ASC")

	return r.queryGestiones(queryBuilder)
}

func (r *gestionRepository) queryGestiones(queryBuilder squirrel.SelectBuilder) ([]*domain.GestionCobro, error) {
	gestionesSQL, gestionesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(gestionesSQL, gestionesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gestiones []*domain.GestionCobro
	for rows.Next() {
		var gestion domain.GestionCobro
		if err := rows.Scan(
			&gestion.ID,
			&gestion.NIT,
			&gestion.TipoContacto,
			&gestion.Resultado,
			&gestion.Fecha,
			&gestion.UsuarioID,
			&gestion.Notas,
			&gestion.FechaPromesaPago,
			&gestion.ValorPromesaPago,
			&gestion.ProximoSeguimiento,
			&gestion.CreadoEn,
		); err != nil {
			return nil, err
		}

		gestiones = append(gestiones, &gestion)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return gestiones, nil
}
