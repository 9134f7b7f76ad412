//go:build unit

package recipient_test

import (
	"testing"

	"firm-digest/internal/domain/recipient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name  string
		rName string
		email string
		role  string
		errIs error
	}{
		{name: "success: staff", rName: "Asha", email: "asha@acme.example", role: "staff"},
		{name: "success: manager with padded email", rName: " Priya ", email: " priya@acme.example ", role: "manager"},
		{name: "error: blank name", rName: "  ", email: "asha@acme.example", role: "staff", errIs: recipient.ErrEmptyName},
		{name: "error: bad email", rName: "Asha", email: "asha@", role: "staff", errIs: recipient.ErrInvalidEmail},
		{name: "error: unknown role", rName: "Asha", email: "asha@acme.example", role: "partner", errIs: recipient.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := recipient.New(uuid.New(), uuid.New(), tc.rName, tc.email, tc.role, true)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, r.Name(), " ")
			assert.NotContains(t, r.Email().Value(), " ")
			assert.Equal(t, tc.role == "manager", r.Role().WantsAggregate())
		})
	}
}
