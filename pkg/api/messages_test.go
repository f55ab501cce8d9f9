package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{"valid employee", CreateUserRequest{Type: models.RoleEmployee, Email: "johndoe@email.com", Password: "azerty"}, false},
		{"valid admin", CreateUserRequest{Type: models.RoleAdmin, Email: "admin@email.com", Password: "azerty"}, false},
		{"malformed email", CreateUserRequest{Type: models.RoleEmployee, Email: "pasunemail", Password: "azerty"}, true},
		{"unknown role", CreateUserRequest{Type: "Manager", Email: "a@b.co", Password: "azerty"}, true},
		{"empty password", CreateUserRequest{Type: models.RoleEmployee, Email: "a@b.co"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBillRequestValidate(t *testing.T) {
	ok := CreateBillRequest{File: []byte("png"), FileName: "file.png", Email: "test@email.com"}
	assert.NoError(t, ok.Validate())

	missingFile := ok
	missingFile.File = nil
	assert.Error(t, missingFile.Validate())

	assert.Error(t, (&UpdateBillRequest{}).Validate())
}

func TestCodecEmptyBody(t *testing.T) {
	var req ListBillsRequest
	require.NoError(t, Codec{}.Unmarshal(nil, &req))

	var login LoginRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"email":"a@b.co","password":"x"}`), &login))
	assert.Equal(t, "a@b.co", login.Email)

	assert.Error(t, Codec{}.Unmarshal([]byte(`{`), &login))
}
