package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alquimueble/muebles-api/internal/application/dto"
	"github.com/alquimueble/muebles-api/internal/application/usecase"
	"github.com/alquimueble/muebles-api/internal/domain"
	"github.com/alquimueble/muebles-api/internal/domain/entity"
)

// fakeUserRepo repo en memoria con unicidad de email y address, como la DB real.
type fakeUserRepo struct {
	m map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{m: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, ex := range f.m {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if ex.Address == u.Address {
			return domain.ErrAddressTaken
		}
	}
	cp := *u
	f.m[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.m[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.m {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.m {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for id, ex := range f.m {
		if id == u.ID {
			continue
		}
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if ex.Address == u.Address {
			return domain.ErrAddressTaken
		}
	}
	cp := *u
	f.m[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if _, ok := f.m[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.m, id)
	return nil
}

func altaUsuario(email, address string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    email,
		Password: "secreta123",
		Address:  address,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.IsActive, "is_active por defecto true")
	stored := repo.m[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserCreate_CampoRequerido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	casos := []struct {
		nombre string
		in     dto.CreateUserRequest
		campo  string
	}{
		{"sin email", dto.CreateUserRequest{Password: "x", Address: "y"}, "email"},
		{"sin password", dto.CreateUserRequest{Email: "a@b.com", Address: "y"}, "password"},
		{"sin address", dto.CreateUserRequest{Email: "a@b.com", Password: "x"}, "address"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tc.campo)
		})
	}
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)

	_, err = uc.Create(altaUsuario("ana@example.com", "Calle Menor 2"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_AddressDuplicada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)

	_, err = uc.Create(altaUsuario("eva@example.com", "Calle Mayor 1"))
	assert.ErrorIs(t, err, domain.ErrAddressTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_RehasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)
	antes := repo.m[created.ID].PasswordHash

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Password: strPtr("otraClave456")})
	require.NoError(t, err)

	despues := repo.m[created.ID].PasswordHash
	assert.NotEqual(t, antes, despues)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(despues), []byte("otraClave456")))
}

func TestUserUpdate_CuerpoVacio(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	out, err := uc.Update("no-existe", dto.UpdateUserRequest{Nombre: strPtr("Ana")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUserUpdate_CamposParciales(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(altaUsuario("ana@example.com", "Calle Mayor 1"))
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateUserRequest{
		Nombre:       strPtr("Ana"),
		Nacionalidad: strPtr("española"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", out.Nombre)
	assert.Equal(t, "española", out.Nacionalidad)
	assert.Equal(t, "ana@example.com", out.Email, "los campos no incluidos no se tocan")
	assert.Equal(t, created.ID, out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestUserGetByID_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
