package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
)

func newChargerService(users *fakeUserRepo, chargers *fakeChargerRepo, words ...string) *ChargerService {
	return NewChargerService(chargers, users, newGuard(users, words...), quietLogger())
}

func validChargerRequest() ChargerRequest {
	return ChargerRequest{
		Title:          "Ionity Dombas",
		Description:    "Six stalls, rarely queued outside holidays.",
		Rating:         4.5,
		ChargerInfo:    json.RawMessage(`{"power":350,"connectors":["CCS"]}`),
		BatteryLevel:   18,
		AvgConsumption: 19.2,
	}
}

func TestChargerCreate(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1", IsAccountVerified: true})
	chargers := newFakeChargerRepo()
	svc := newChargerService(users, chargers)

	charger, err := svc.Create(context.Background(), "u1", validChargerRequest())

	require.NoError(t, err)
	assert.Equal(t, "u1", charger.UserID)
	assert.False(t, charger.IsAssigned)
}

func TestChargerCreateRequiresVerifiedAccount(t *testing.T) {
	users := newFakeUserRepo(&entity.User{ID: "u1"})
	chargers := newFakeChargerRepo()
	svc := newChargerService(users, chargers)

	_, err := svc.Create(context.Background(), "u1", validChargerRequest())

	var policyErr *PolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "Your account is not verified! You cannot create new charger.", policyErr.Message)
	assert.Empty(t, chargers.chargers)
}

func TestChargerPurgeUnassignedAdminOnly(t *testing.T) {
	users := newFakeUserRepo(
		&entity.User{ID: "u1", IsAccountVerified: true},
		&entity.User{ID: "admin", IsAdmin: true, IsAccountVerified: true},
	)
	chargers := newFakeChargerRepo(
		&entity.EvCharger{ID: "c1", UserID: "u1"},
		&entity.EvCharger{ID: "c2", UserID: "u1", PostID: "p1", IsAssigned: true},
	)
	svc := newChargerService(users, chargers)
	ctx := context.Background()

	_, err := svc.PurgeUnassigned(ctx, "u1")
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	n, err := svc.PurgeUnassigned(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = chargers.GetByID(ctx, "c2")
	assert.NoError(t, err)
}
