package users

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-retail-reports/internal/models"
)

type fakeStorage struct {
	users     map[int64]*models.User
	inserts   int
	findErr   error
	insertErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{users: make(map[int64]*models.User)}
}

func (f *fakeStorage) FindUser(id int64) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeStorage) InsertUser(u *models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.users[u.ID] = u
	f.inserts++
	return nil
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	st := newFakeStorage()

	first, err := GetOrCreate(st, 42, "ivan", "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), first.ID)
	assert.Equal(t, "ivan", first.Name)

	second, err := GetOrCreate(st, 42, "ivan", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, st.inserts, "повторный вызов не создаёт дубликат")
}

func TestGetOrCreate_ExistingUnchanged(t *testing.T) {
	st := newFakeStorage()
	st.users[42] = &models.User{ID: 42, Name: "ivan", Store: "Арбат"}

	u, err := GetOrCreate(st, 42, "другое имя", "другой магазин")
	require.NoError(t, err)

	assert.Equal(t, "ivan", u.Name)
	assert.Equal(t, "Арбат", u.Store)
	assert.Zero(t, st.inserts)
}

func TestGetOrCreate_StorageErrors(t *testing.T) {
	st := newFakeStorage()
	st.findErr = errors.New("db down")
	_, err := GetOrCreate(st, 1, "", "")
	require.Error(t, err)

	st = newFakeStorage()
	st.insertErr = errors.New("insert failed")
	_, err = GetOrCreate(st, 1, "", "")
	require.Error(t, err)
}
