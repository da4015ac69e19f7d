package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/papelsur/cartera-api/infrastructure/repository"
	"github.com/papelsur/cartera-api/internal/config"
	"github.com/papelsur/cartera-api/internal/domain"
	"github.com/papelsur/cartera-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	CreateUsuario(usuario *domain.Usuario, password string) (*domain.Usuario, error)
	UpdateUsuario(req *domain.UpdateUsuarioRequest) error
	EliminarUsuario(usuarioID int) error
	ListUsuarios() ([]*domain.Usuario, error)
	LoginUser(email, password string) (string, error)
	GetUserProfile(usuarioID int) (*domain.Usuario, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(targetUserID int) (string, error)
	ChangePassword(usuarioID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
}

type Service struct {
	usuarioRepo repository.UsuarioRepository
	cfg         *config.Config
}

func NewService(usuarioRepo repository.UsuarioRepository, cfg *config.Config) Authenticator {
	return &Service{
		usuarioRepo: usuarioRepo,
		cfg:         cfg,
	}
}

func (s *Service) CreateUsuario(usuario *domain.Usuario, password string) (*domain.Usuario, error) {
	if usuario.Email == "" || usuario.NombreCompleto == "" || password == "" {
		return nil, NewAuthError(ErrDatosObligatorios, apiErrors.ErrMissingRequiredData, "Email, nombre completo y contraseña son obligatorios")
	}

	usuario.Email = normalizarEmail(usuario.Email)

	if err := s.validarDominioEmail(usuario.Email); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInvalidFormat, "El correo debe pertenecer al dominio de la empresa")
	}

	if err := s.ValidatePasswordStrength(password); err != nil {
		return nil, NewAuthError(ErrPasswordDebil, apiErrors.ErrInvalidFormat, err.Error())
	}

	existente, err := s.usuarioRepo.GetUsuarioByEmail(usuario.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el usuario")
	}
	if existente != nil {
		return nil, NewAuthError(ErrUsuarioYaExiste, apiErrors.ErrUserAlreadyExists, "Email ya registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if usuario.RolID == 0 {
		usuario.RolID = domain.RolConsulta
	}

	usuario.PasswordHash = string(hashedPassword)
	usuario.Activo = true

	usuario, err = s.usuarioRepo.CreateUsuario(usuario)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al crear el usuario")
	}

	return usuario, nil
}

func (s *Service) UpdateUsuario(req *domain.UpdateUsuarioRequest) error {
	if req.ID == 0 {
		return NewAuthError(ErrDatosObligatorios, apiErrors.ErrMissingRequiredData, "ID es obligatorio")
	}

	usuario, err := s.usuarioRepo.GetUsuarioByID(req.ID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return NewUserAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, req.ID, "")
	}

	// Desactivar o quitar el rol admin al último administrador dejaría el
	// sistema sin administración.
	desactivando := req.Activo != nil && !*req.Activo
	quitandoAdmin := req.RolID != nil && *req.RolID != domain.RolAdmin && usuario.RolID == domain.RolAdmin
	if usuario.RolID == domain.RolAdmin && usuario.Activo && (desactivando || quitandoAdmin) {
		if err := s.verificarNoEsUltimoAdmin(); err != nil {
			return err
		}
	}

	if req.Email != nil {
		email := normalizarEmail(*req.Email)
		if err := s.validarDominioEmail(email); err != nil {
			return NewAuthError(err, apiErrors.ErrInvalidFormat, "El correo debe pertenecer al dominio de la empresa")
		}
		usuario.Email = email
	}

	if req.NombreCompleto != nil {
		usuario.NombreCompleto = *req.NombreCompleto
	}

	if req.RolID != nil {
		usuario.RolID = *req.RolID
	}

	if req.VendedorAsignado != nil {
		usuario.VendedorAsignado = req.VendedorAsignado
	}

	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}

	if req.Eliminado != nil && *req.Eliminado {
		return s.EliminarUsuario(req.ID)
	}

	return s.usuarioRepo.UpdateUsuario(usuario)
}

// EliminarUsuario marca el usuario como eliminado. Rechaza la operación si
// es el último administrador activo.
func (s *Service) EliminarUsuario(usuarioID int) error {
	usuario, err := s.usuarioRepo.GetUsuarioByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return NewUserAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, usuarioID, "")
	}

	if usuario.RolID == domain.RolAdmin && usuario.Activo {
		if err := s.verificarNoEsUltimoAdmin(); err != nil {
			return err
		}
	}

	now := time.Now()
	usuario.Eliminado = true
	usuario.EliminadoEn = &now
	usuario.Activo = false

	return s.usuarioRepo.UpdateUsuario(usuario)
}

func (s *Service) verificarNoEsUltimoAdmin() error {
	admins, err := s.usuarioRepo.CountAdminsActivos()
	if err != nil {
		return err
	}
	if admins <= 1 {
		return NewAuthError(ErrUltimoAdmin, apiErrors.ErrInvalidRequest, "")
	}
	return nil
}

func (s *Service) ListUsuarios() ([]*domain.Usuario, error) {
	return s.usuarioRepo.ListUsuarios()
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrDatosObligatorios, apiErrors.ErrMissingRequiredData, "Email y contraseña son obligatorios")
	}

	email = normalizarEmail(email)

	usuario, err := s.usuarioRepo.GetUsuarioByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar el usuario")
	}

	if usuario == nil {
		return "", NewAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	if !usuario.Activo {
		return "", NewUserAuthError(ErrUsuarioDesactivado, apiErrors.ErrUserDisabled, usuario.ID, "Cuenta desactivada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrCredencialesInvalidas, apiErrors.ErrInvalidCredentials, usuario.ID, "Contraseña incorrecta")
	}

	if err := s.usuarioRepo.RegistrarUltimoAcceso(usuario.ID, time.Now()); err != nil {
		// No bloquea el login; solo pierde la marca de último acceso.
		logrus.WithError(err).Warn("Error al registrar el último acceso")
	}

	token, err := generateJWT(usuario, s.cfg.Auth.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar el token de autenticación")
	}

	return token, nil
}

func (s *Service) GetUserProfile(usuarioID int) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.GetUsuarioByID(usuarioID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if usuario == nil {
		return nil, NewUserAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, usuarioID, "")
	}

	usuario.PasswordHash = ""
	return usuario, nil
}

func generateJWT(usuario *domain.Usuario, secretKey string) (string, error) {
	vendedor := ""
	if usuario.VendedorAsignado != nil {
		vendedor = *usuario.VendedorAsignado
	}

	claims := domain.Claims{
		UserID:       usuario.ID,
		UserEmail:    usuario.Email,
		UserNombre:   usuario.NombreCompleto,
		UserRolID:    usuario.RolID,
		UserVendedor: vendedor,
		UserActivo:   usuario.Activo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalido
}

// GenerateStrongPassword genera y asigna una contraseña fuerte al usuario
// objetivo. El handler ya restringe la ruta a administradores.
func (s *Service) GenerateStrongPassword(targetUserID int) (string, error) {
	targetUser, err := s.usuarioRepo.GetUsuarioByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewUserAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, targetUserID, "")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	targetUser.PasswordHash = string(hashedPassword)
	if err := s.usuarioRepo.UpdateUsuario(targetUser); err != nil {
		return "", err
	}

	return newPassword, nil
}

// ChangePassword permite a un usuario cambiar su propia contraseña.
func (s *Service) ChangePassword(usuarioID int, currentPassword, newPassword string) error {
	usuario, err := s.usuarioRepo.GetUsuarioByID(usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return NewUserAuthError(ErrUsuarioNoEncontrado, apiErrors.ErrUserNotFound, usuarioID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrCredencialesInvalidas, apiErrors.ErrInvalidCredentials, usuarioID, "Contraseña actual incorrecta")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	usuario.PasswordHash = string(hashedPassword)
	return s.usuarioRepo.UpdateUsuario(usuario)
}

// ValidatePasswordStrength exige mínimo 8 caracteres con mayúsculas,
// minúsculas, números y caracteres especiales.
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("la contraseña debe incluir al menos una letra mayúscula")
	}
	if !hasLower {
		return errors.New("la contraseña debe incluir al menos una letra minúscula")
	}
	if !hasNumber {
		return errors.New("la contraseña debe incluir al menos un número")
	}
	if !hasSpecial {
		return errors.New("la contraseña debe incluir al menos un carácter especial")
	}

	return nil
}

func (s *Service) validarDominioEmail(email string) error {
	dominio := s.cfg.Auth.AllowedEmailDomain
	if dominio == "" {
		return nil
	}
	if !strings.HasSuffix(email, "@"+dominio) {
		return ErrDominioNoPermitido
	}
	return nil
}

func normalizarEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// generateStrongPassword arma una contraseña aleatoria con al menos un
// carácter de cada tipo y luego la baraja.
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	password := make([]byte, length)

	sets := []string{lowerChars, upperChars, numberChars, specialChars}
	for i, set := range sets {
		randomChar, err := getRandomChar(set)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := len(sets); i < length; i++ {
		randomChar, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
