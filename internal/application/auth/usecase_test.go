package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papeleria-app/papeleria-api/internal/application/auth"
	"github.com/papeleria-app/papeleria-api/internal/application/dto"
	"github.com/papeleria-app/papeleria-api/internal/domain"
	"github.com/papeleria-app/papeleria-api/internal/domain/entity"
	pkgjwt "github.com/papeleria-app/papeleria-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newAuthUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "papeleria-api-test",
	})
	return uc, repo
}

func TestSignup_CreaAdminConToken(t *testing.T) {
	uc, repo := newAuthUseCase()

	out, err := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Ana",
		Email:    "ana@papeleria.test",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.User.Role, "signup siempre crea rol ADMIN")
	assert.NotEmpty(t, out.Token)
	assert.NotEmpty(t, out.User.ID)

	// El token debe llevar los claims del usuario creado.
	userID, email, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "ana@papeleria.test", email)
	assert.Equal(t, entity.RoleAdmin, role)

	// El hash persistido nunca es el password en claro.
	stored := repo.byEmail["ana@papeleria.test"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
}

func TestSignup_EmailDuplicado_Retorna409(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	in := dto.SignupRequest{Name: "Ana", Email: "ana@papeleria.test", Password: "secreto123"}
	_, err := uc.Signup(ctx, in)
	require.NoError(t, err)

	_, err = uc.Signup(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, dto.SignupRequest{Name: "Ana", Email: "ana@papeleria.test", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@papeleria.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@papeleria.test", out.User.Email)
}

// Email desconocido y password incorrecto devuelven el mismo error:
// la API no debe servir de oráculo de existencia de cuentas.
func TestLogin_ErrorGenericoSinOraculo(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Signup(ctx, dto.SignupRequest{Name: "Ana", Email: "ana@papeleria.test", Password: "secreto123"})
	require.NoError(t, err)

	_, errWrongPass := uc.Login(ctx, dto.LoginRequest{Email: "ana@papeleria.test", Password: "incorrecto"})
	_, errNoUser := uc.Login(ctx, dto.LoginRequest{Email: "nadie@papeleria.test", Password: "loquesea"})

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass, errNoUser, "ambos fallos deben ser indistinguibles")
}

func TestProfile_UsuarioExistente(t *testing.T) {
	uc, _ := newAuthUseCase()
	ctx := context.Background()

	created, err := uc.Signup(ctx, dto.SignupRequest{Name: "Ana", Email: "ana@papeleria.test", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Profile(ctx, created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, out.User.ID)
	assert.Equal(t, "Ana", out.User.Name)
}

func TestProfile_UsuarioInexistente_NotFound(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, err := uc.Profile(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
