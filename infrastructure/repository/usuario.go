package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/papelsur/cartera-api/infrastructure/database/sqlite"
	"github.com/papelsur/cartera-api/internal/domain"
)

const usuariosTable = "usuarios"

type UsuarioRepository interface {
	CreateUsuario(usuario *domain.Usuario) (*domain.Usuario, error)
	UpdateUsuario(usuario *domain.Usuario) error
	GetUsuarioByEmail(email string) (*domain.Usuario, error)
	GetUsuarioByID(usuarioID int) (*domain.Usuario, error)
	ListUsuarios() ([]*domain.Usuario, error)
	CountUsuarios() (int, error)
	CountAdminsActivos() (int, error)
	RegistrarUltimoAcceso(usuarioID int, momento time.Time) error
}

type usuarioRepository struct {
	conn *sqlite.Connection
}

func NewUsuarioRepository(conn *sqlite.Connection) UsuarioRepository {
	return &usuarioRepository{
		conn: conn,
	}
}

const usuarioColumns = "id, email, password_hash, nombre_completo, rol_id, vendedor_asignado, activo, eliminado, eliminado_en, ultimo_acceso, creado_en, actualizado_en"

func (r *usuarioRepository) CreateUsuario(usuario *domain.Usuario) (*domain.Usuario, error) {
	queryBuilder := squirrel.
		Insert(usuariosTable).
		Columns("email", "password_hash", "nombre_completo", "rol_id", "vendedor_asignado", "activo").
		Values(usuario.Email, usuario.PasswordHash, usuario.NombreCompleto, usuario.RolID, usuario.VendedorAsignado, usuario.Activo)

	usuariosSQL, usuariosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	result, err := r.conn.Exec(usuariosSQL, usuariosArgs...)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	usuario.ID = int(id)
	return usuario, nil
}

func (r *usuarioRepository) UpdateUsuario(usuario *domain.Usuario) error {
	queryBuilder := squirrel.
		Update(usuariosTable).
		Set("activo", usuario.Activo).
		Set("actualizado_en", time.Now()).
		Where(squirrel.Eq{"id": usuario.ID})

	if usuario.Email != "" {
		queryBuilder = queryBuilder.Set("email", usuario.Email)
	}

	if usuario.NombreCompleto != "" {
		queryBuilder = queryBuilder.Set("nombre_completo", usuario.NombreCompleto)
	}

	if usuario.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", usuario.PasswordHash)
	}

	if usuario.RolID != 0 {
		queryBuilder = queryBuilder.Set("rol_id", usuario.RolID)
	}

	if usuario.VendedorAsignado != nil {
		queryBuilder = queryBuilder.Set("vendedor_asignado", usuario.VendedorAsignado)
	}

	if usuario.Eliminado {
		queryBuilder = queryBuilder.Set("eliminado", true)
		queryBuilder = queryBuilder.Set("eliminado_en", usuario.EliminadoEn)
	}

	usuariosSQL, usuariosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usuariosSQL, usuariosArgs...)
	return err
}

func (r *usuarioRepository) GetUsuarioByEmail(email string) (*domain.Usuario, error) {
	row := r.conn.QueryRow("SELECT "+usuarioColumns+" FROM usuarios WHERE eliminado = 0 AND email = ?", email)

	usuario, err := scanUsuario(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return usuario, nil
}

func (r *usuarioRepository) GetUsuarioByID(usuarioID int) (*domain.Usuario, error) {
	row := r.conn.QueryRow("SELECT "+usuarioColumns+" FROM usuarios WHERE eliminado = 0 AND id = ?", usuarioID)

	usuario, err := scanUsuario(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return usuario, nil
}

func (r *usuarioRepository) ListUsuarios() ([]*domain.Usuario, error) {
	queryBuilder := squirrel.
		Select("id", "email", "nombre_completo", "rol_id", "vendedor_asignado", "activo", "ultimo_acceso", "creado_en", "actualizado_en").
		From(usuariosTable).
		Where(squirrel.Eq{"eliminado": false}).
		OrderBy("nombre_completo ASC")

	usuariosSQL, usuariosArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(usuariosSQL, usuariosArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usuarios []*domain.Usuario
	for rows.Next() {
		var usuario domain.Usuario
		if err := rows.Scan(
			&usuario.ID,
			&usuario.Email,
			&usuario.NombreCompleto,
			&usuario.RolID,
			&usuario.VendedorAsignado,
			&usuario.Activo,
			&usuario.UltimoAcceso,
			&usuario.CreadoEn,
			&usuario.ActualizadoEn,
		); err != nil {
			return nil, err
		}

		usuarios = append(usuarios, &usuario)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usuarios, nil
}

func (r *usuarioRepository) CountUsuarios() (int, error) {
	var total int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM usuarios WHERE eliminado = 0").Scan(&total)
	return total, err
}

// CountAdminsActivos soporta la regla de no eliminar al último administrador.
func (r *usuarioRepository) CountAdminsActivos() (int, error) {
	var total int
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM usuarios WHERE eliminado = 0 AND activo = 1 AND rol_id = ?",
		domain.RolAdmin,
	).Scan(&total)
	return total, err
}

func (r *usuarioRepository) RegistrarUltimoAcceso(usuarioID int, momento time.Time) error {
	_, err := r.conn.Exec("UPDATE usuarios SET ultimo_acceso = ? WHERE id = ?", momento, usuarioID)
	return err
}

func scanUsuario(row *sql.Row) (*domain.Usuario, error) {
	var usuario domain.Usuario
	err := row.Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.PasswordHash,
		&usuario.NombreCompleto,
		&usuario.RolID,
		&usuario.VendedorAsignado,
		&usuario.Activo,
		&usuario.Eliminado,
		&usuario.EliminadoEn,
		&usuario.UltimoAcceso,
		&usuario.CreadoEn,
		&usuario.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
