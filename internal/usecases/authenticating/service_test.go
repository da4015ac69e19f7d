package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/papelsur/cartera-api/infrastructure/repository/mocks"
	"github.com/papelsur/cartera-api/internal/config"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/papelsur/cartera-api/internal/domain"
)

func nuevaConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SecretKey:          "clave-de-prueba",
			AllowedEmailDomain: "papelsur.com",
		},
	}
}

func nuevoServicio(t *testing.T) (*Service, *mocks.MockUsuarioRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUsuarioRepository(ctrl)
	return &Service{usuarioRepo: mockRepo, cfg: nuevaConfig()}, mockRepo
}

func hashDe(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUsuario(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByEmail("maria@papelsur.com").
		Return(nil, nil)

	mockRepo.EXPECT().
		CreateUsuario(gomock.Any()).
		DoAndReturn(func(u *domain.Usuario) (*domain.Usuario, error) {
			assert.NotEmpty(t, u.PasswordHash)
			assert.True(t, u.Activo)
			u.ID = 1
			return u, nil
		})

	creado, err := service.CreateUsuario(&domain.Usuario{
		Email:          "Maria@Papelsur.com",
		NombreCompleto: "Maria Lopez",
		RolID:          domain.RolComercial,
	}, "Secreta#123")

	require.NoError(t, err)
	assert.Equal(t, "maria@papelsur.com", creado.Email)
	assert.Equal(t, domain.RolComercial, creado.RolID)
}

func TestCreateUsuario_DominioNoPermitido(t *testing.T) {
	service, _ := nuevoServicio(t)

	_, err := service.CreateUsuario(&domain.Usuario{
		Email:          "maria@gmail.com",
		NombreCompleto: "Maria Lopez",
	}, "Secreta#123")

	assert.ErrorIs(t, err, ErrDominioNoPermitido)
}

func TestCreateUsuario_EmailDuplicado(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByEmail("maria@papelsur.com").
		Return(&domain.Usuario{ID: 9, Email: "maria@papelsur.com"}, nil)

	_, err := service.CreateUsuario(&domain.Usuario{
		Email:          "maria@papelsur.com",
		NombreCompleto: "Maria Lopez",
	}, "Secreta#123")

	assert.ErrorIs(t, err, ErrUsuarioYaExiste)
}

func TestCreateUsuario_RolPorDefecto(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().GetUsuarioByEmail(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().
		CreateUsuario(gomock.Any()).
		DoAndReturn(func(u *domain.Usuario) (*domain.Usuario, error) {
			return u, nil
		})

	creado, err := service.CreateUsuario(&domain.Usuario{
		Email:          "nuevo@papelsur.com",
		NombreCompleto: "Usuario Nuevo",
	}, "Secreta#123")

	require.NoError(t, err)
	assert.Equal(t, domain.RolConsulta, creado.RolID)
}

func TestLoginUser(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	vendedor := "PEDRO MARTINEZ"
	mockRepo.EXPECT().
		GetUsuarioByEmail("pedro@papelsur.com").
		Return(&domain.Usuario{
			ID:               3,
			Email:            "pedro@papelsur.com",
			PasswordHash:     hashDe(t, "Secreta#123"),
			RolID:            domain.RolComercial,
			VendedorAsignado: &vendedor,
			Activo:           true,
		}, nil)

	mockRepo.EXPECT().
		RegistrarUltimoAcceso(3, gomock.Any()).
		Return(nil)

	token, err := service.LoginUser("pedro@papelsur.com", "Secreta#123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// El token incluye el vendedor asignado para resolver el alcance.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, domain.RolComercial, claims.UserRolID)
	assert.Equal(t, vendedor, claims.UserVendedor)
}

func TestLoginUser_PasswordIncorrecta(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByEmail("pedro@papelsur.com").
		Return(&domain.Usuario{
			ID:           3,
			PasswordHash: hashDe(t, "Secreta#123"),
			Activo:       true,
		}, nil)

	_, err := service.LoginUser("pedro@papelsur.com", "otra-cosa")

	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginUser_UsuarioDesactivado(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByEmail("pedro@papelsur.com").
		Return(&domain.Usuario{ID: 3, Activo: false}, nil)

	_, err := service.LoginUser("pedro@papelsur.com", "Secreta#123")

	assert.ErrorIs(t, err, ErrUsuarioDesactivado)
}

func TestEliminarUsuario_UltimoAdmin(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByID(1).
		Return(&domain.Usuario{ID: 1, RolID: domain.RolAdmin, Activo: true}, nil)

	mockRepo.EXPECT().
		CountAdminsActivos().
		Return(1, nil)

	err := service.EliminarUsuario(1)

	assert.ErrorIs(t, err, ErrUltimoAdmin)
}

func TestEliminarUsuario_AdminConReemplazo(t *testing.T) {
	service, mockRepo := nuevoServicio(t)

	mockRepo.EXPECT().
		GetUsuarioByID(1).
		Return(&domain.Usuario{ID: 1, RolID: domain.RolAdmin, Activo: true}, nil)

	mockRepo.EXPECT().
		CountAdminsActivos().
		Return(2, nil)

	mockRepo.EXPECT().
		UpdateUsuario(gomock.Any()).
		DoAndReturn(func(u *domain.Usuario) error {
			assert.True(t, u.Eliminado)
			assert.False(t, u.Activo)
			assert.NotNil(t, u.EliminadoEn)
			return nil
		})

	assert.NoError(t, service.EliminarUsuario(1))
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := nuevoServicio(t)

	tests := []struct {
		password string
		valida   bool
	}{
		{"Secreta#123", true},
		{"corta#1A", true},
		{"corta#1", false},
		{"sinmayusculas#123", false},
		{"SINMINUSCULAS#123", false},
		{"SinNumeros#", false},
		{"SinEspeciales123", false},
	}

	for _, tt := range tests {
		err := service.ValidatePasswordStrength(tt.password)
		if tt.valida {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}
