package session

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/heal-booking-service/internal/domain"
	"github.com/m04kA/heal-booking-service/pkg/ptr"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Email:     "anna@example.se",
		FirstName: ptr.Ptr("Anna"),
		LastName:  ptr.Ptr("Svensson"),
		Role:      domain.RoleAdmin,
	}
}

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)
	user := testUser()

	token, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	s, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, s.ID())
	assert.Equal(t, "anna@example.se", s.Email())
	assert.Equal(t, "Anna Svensson", s.Name())
	assert.Equal(t, domain.RoleAdmin, s.Role())
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, _, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewManager("secret", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"ok", "Bearer abc.def", "abc.def", nil},
		{"case insensitive", "bearer abc", "abc", nil},
		{"missing", "", "", ErrMissingToken},
		{"wrong scheme", "Basic abc", "", ErrInvalidToken},
		{"empty token", "Bearer   ", "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			got, err := BearerToken(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
