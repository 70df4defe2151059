package customers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemoryStore())
}

func TestCreateCustomer(t *testing.T) {
	svc := newTestService(t)

	c, err := svc.Create(CreateCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "janedoe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	require.False(t, c.CreatedAt.IsZero())

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreateRejectsDuplicateUsernameCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(CreateCustomerInput{FirstName: "Jane", Username: "janedoe"})
	require.NoError(t, err)

	_, err = svc.Create(CreateCustomerInput{FirstName: "John", Username: "JaneDoe"})
	var dup *models.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "username", dup.Field)
}

func TestCreateRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(CreateCustomerInput{Username: "a", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(CreateCustomerInput{Username: "b", Email: "A@X.com"})
	var dup *models.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "email", dup.Field)
}

func TestCreateAllowsEmptyEmails(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(CreateCustomerInput{Username: "a"})
	require.NoError(t, err)
	_, err = svc.Create(CreateCustomerInput{Username: "b"})
	require.NoError(t, err)
}

func TestUpdateRevalidatesAgainstOthers(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Create(CreateCustomerInput{Username: "janedoe"})
	require.NoError(t, err)
	second, err := svc.Create(CreateCustomerInput{Username: "johndoe"})
	require.NoError(t, err)

	username := "JANEDOE"
	_, err = svc.Update(second.ID, UpdateCustomerInput{Username: &username})
	var dup *models.DuplicateKeyError
	require.ErrorAs(t, err, &dup)

	// Keeping your own username is not a conflict.
	own := "johndoe"
	_, err = svc.Update(second.ID, UpdateCustomerInput{Username: &own})
	require.NoError(t, err)
}

func TestUpdateUnknownCustomer(t *testing.T) {
	svc := newTestService(t)
	name := "Jane"
	_, err := svc.Update("missing", UpdateCustomerInput{FirstName: &name})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteReportsRemoval(t *testing.T) {
	svc := newTestService(t)
	c, err := svc.Create(CreateCustomerInput{Username: "janedoe"})
	require.NoError(t, err)

	removed, err := svc.Delete(c.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.Delete(c.ID)
	require.NoError(t, err)
	require.False(t, removed)
}
