package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
)

const (
	clientesTable   = "clientes"
	vendedoresTable = "vendedores"
)

type ClienteRepository interface {
	GetClienteByNIT(nit string) (*domain.Cliente, error)
	ListClientes(scope domain.VendorScope) ([]*domain.Cliente, error)
	UpsertClienteTx(tx *sql.Tx, cliente *domain.Cliente) error
	UpsertVendedorTx(tx *sql.Tx, nombre string) error
	ListVendedores() ([]string, error)
}

type clienteRepository struct {
	conn *sqlite.Connection
}

func NewClienteRepository(conn *sqlite.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func (r *clienteRepository) GetClienteByNIT(nit string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	err := r.conn.QueryRow(
		"SELECT nit, razon_social, telefono, celular, direccion, email, ciudad, vendedor, cupo_activo, actualizado_en FROM clientes WHERE nit = ?",
		nit,
	).Scan(
		&cliente.NIT,
		&cliente.RazonSocial,
		&cliente.Telefono,
		&cliente.Celular,
		&cliente.Direccion,
		&cliente.Email,
		&cliente.Ciudad,
		&cliente.Vendedor,
		&cliente.CupoActivo,
		&cliente.ActualizadoEn,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cliente, nil
}

func (r *clienteRepository) ListClientes(scope domain.VendorScope) ([]*domain.Cliente, error) {
	queryBuilder := squirrel.
		Select("nit", "razon_social", "telefono", "celular", "direccion", "email", "ciudad", "vendedor", "cupo_activo", "actualizado_en").
		From(clientesTable).
		OrderBy("razon_social ASC")

	queryBuilder = aplicarScope(queryBuilder, scope, "vendedor")

	clientesSQL, clientesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientesSQL, clientesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clientes []*domain.Cliente
	for rows.Next() {
		var cliente domain.Cliente
		if err := rows.Scan(
			&cliente.NIT,
			&cliente.RazonSocial,
			&cliente.Telefono,
			&cliente.Celular,
			&cliente.Direccion,
			&cliente.Email,
			&cliente.Ciudad,
			&cliente.Vendedor,
			&cliente.CupoActivo,
			&cliente.ActualizadoEn,
		); err != nil {
			return nil, err
		}

		clientes = append(clientes, &cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clientes, nil
}

// UpsertClienteTx inserta o actualiza el cliente dentro de la transacción de
// importación. Los campos de contacto solo se pisan cuando llegan con dato.
func (r *clienteRepository) UpsertClienteTx(tx *sql.Tx, cliente *domain.Cliente) error {
	_, err := tx.Exec(`INSERT INTO clientes
		(nit, razon_social, telefono, celular, direccion, email, ciudad, vendedor, cupo_activo, actualizado_en)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (nit) DO UPDATE SET
			razon_social = excluded.razon_social,
			telefono = COALESCE(excluded.telefono, telefono),
			celular = COALESCE(excluded.celular, celular),
			direccion = COALESCE(excluded.direccion, direccion),
			email = COALESCE(excluded.email, email),
			ciudad = COALESCE(excluded.ciudad, ciudad),
			vendedor = COALESCE(excluded.vendedor, vendedor),
			cupo_activo = excluded.cupo_activo,
			actualizado_en = excluded.actualizado_en`,
		cliente.NIT,
		cliente.RazonSocial,
		cliente.Telefono,
		cliente.Celular,
		cliente.Direccion,
		cliente.Email,
		cliente.Ciudad,
		cliente.Vendedor,
		cliente.CupoActivo,
		time.Now(),
	)
	return err
}

func (r *clienteRepository) UpsertVendedorTx(tx *sql.Tx, nombre string) error {
	_, err := tx.Exec(
		"INSERT INTO vendedores (nombre) VALUES (?) ON CONFLICT (nombre) DO NOTHING",
		nombre,
	)
	return err
}

func (r *clienteRepository) ListVendedores() ([]string, error) {
	rows, err := r.conn.Query("SELECT nombre FROM vendedores ORDER BY nombre ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendedores []string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, err
		}
		vendedores = append(vendedores, nombre)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vendedores, nil
}
