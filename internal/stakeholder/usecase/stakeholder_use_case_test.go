package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"garmentsync/internal/domain"
	"garmentsync/internal/dto"
	apperrors "garmentsync/internal/errors"
	"garmentsync/internal/events"
	"garmentsync/internal/notification"
	"garmentsync/internal/repository/memory"
)

type mockInvitationSender struct {
	sent     []string
	SendFunc func(ctx context.Context, to string, content notification.Content) error
}

func (m *mockInvitationSender) Send(ctx context.Context, to string, content notification.Content) error {
	m.sent = append(m.sent, to)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, content)
	}
	return nil
}

type mockActivityRecorder struct {
	types []events.Type
}

func (m *mockActivityRecorder) Record(_ context.Context, eventType events.Type, _ string, _ interface{}) {
	m.types = append(m.types, eventType)
}

type fixture struct {
	store    *memory.Store
	sender   *mockInvitationSender
	activity *mockActivityRecorder
	uc       *StakeholderUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	_, err := store.CreateOrder(context.Background(), domain.Order{
		ID: "PO-1", BuyerName: "Acme", StyleNumber: "ST-1", Quantity: 100, BuyerEmail: "buyer@acme.com",
	})
	require.NoError(t, err)

	f := &fixture{store: store, sender: &mockInvitationSender{}, activity: &mockActivityRecorder{}}
	f.uc = NewStakeholderUseCase(store, f.sender, f.activity,
		notification.Templates{AppName: "GarmentSync", PublicURL: "https://app.test"}, zap.NewNop())
	return f
}

func statuses(results []dto.BulkInviteEntry) []dto.BulkInviteStatus {
	out := make([]dto.BulkInviteStatus, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func TestBulkInvite_MixedBatch(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", "a@x.com, a@x.com\nbad-email, b@x.com", InviteOptions{})

	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, []dto.BulkInviteStatus{
		dto.BulkInviteSuccess, dto.BulkInviteExists, dto.BulkInviteInvalid, dto.BulkInviteSuccess,
	}, statuses(result.Results))
	assert.Equal(t, []string{"a@x.com", "a@x.com", "bad-email", "b@x.com"}, []string{
		result.Results[0].Email, result.Results[1].Email, result.Results[2].Email, result.Results[3].Email,
	})
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, f.sender.sent)

	stored, err := f.store.ListStakeholdersByOrder(context.Background(), "PO-1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestBulkInvite_DerivesNameAndAppliesDefaults(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", "john.q_public@co.com", InviteOptions{})

	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	st := result.Results[0].Stakeholder
	require.NotNil(t, st)
	assert.Equal(t, "John Q Public", st.Name)
	assert.Equal(t, domain.RoleBuyer, st.Role)
	assert.Equal(t, domain.PermissionRead, st.Permissions)
}

func TestBulkInvite_SharedRoleAndPermissions(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", "a@x.com\r\nb@x.com", InviteOptions{
		Role: domain.RoleFactoryManager, Permissions: domain.PermissionUpdate, Message: "Welcome",
	})

	require.NoError(t, err)
	for _, r := range result.Results {
		assert.Equal(t, domain.RoleFactoryManager, r.Stakeholder.Role)
		assert.Equal(t, domain.PermissionUpdate, r.Stakeholder.Permissions)
	}
}

func TestBulkInvite_ExistingStakeholderCaseSensitive(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.CreateStakeholder(context.Background(), domain.Stakeholder{OrderID: "PO-1", Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", "a@x.com, A@x.com", InviteOptions{})

	require.NoError(t, err)
	assert.Equal(t, []dto.BulkInviteStatus{dto.BulkInviteExists, dto.BulkInviteSuccess}, statuses(result.Results))
}

func TestBulkInvite_DeliveryFailureKeepsStakeholder(t *testing.T) {
	f := newFixture(t)
	f.sender.SendFunc = func(_ context.Context, to string, _ notification.Content) error {
		if to == "b@x.com" {
			return apperrors.NewDeliveryError(to, errors.New("mailbox full"))
		}
		return nil
	}

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", "a@x.com,b@x.com", InviteOptions{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, dto.BulkInviteError, result.Results[1].Status)
	assert.Contains(t, result.Results[1].Reason, "mailbox full")
	assert.NotNil(t, result.Results[1].Stakeholder)
}

func TestBulkInvite_EmptyInput(t *testing.T) {
	f := newFixture(t)

	result, err := f.uc.BulkInvite(context.Background(), "PO-1", " , \n ,", InviteOptions{})

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.NotNil(t, result.Results)
	assert.Empty(t, f.sender.sent)
}

func TestBulkInvite_OrderMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.BulkInvite(context.Background(), "missing", "a@x.com", InviteOptions{})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, f.sender.sent)
}

func TestInvite(t *testing.T) {
	t.Run("Sent", func(t *testing.T) {
		f := newFixture(t)

		resp, err := f.uc.Invite(context.Background(), "PO-1", "Jane Doe", "jane@x.com", InviteOptions{Message: "Hi"})

		require.NoError(t, err)
		assert.True(t, resp.InvitationSent)
		assert.Equal(t, "Jane Doe", resp.Stakeholder.Name)
		assert.Equal(t, []string{"jane@x.com"}, f.sender.sent)
		assert.Equal(t, []events.Type{events.StakeholderInvited}, f.activity.types)
	})

	t.Run("DeliveryFailureKeepsRecord", func(t *testing.T) {
		f := newFixture(t)
		f.sender.SendFunc = func(context.Context, string, notification.Content) error {
			return errors.New("smtp down")
		}

		resp, err := f.uc.Invite(context.Background(), "PO-1", "Jane", "jane@x.com", InviteOptions{})

		require.NoError(t, err)
		assert.False(t, resp.InvitationSent)
		stored, err := f.store.FindStakeholderByID(context.Background(), resp.Stakeholder.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane@x.com", stored.Email)
	})

	t.Run("NoDuplicateCheck", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Invite(context.Background(), "PO-1", "Jane", "jane@x.com", InviteOptions{})
		require.NoError(t, err)
		_, err = f.uc.Invite(context.Background(), "PO-1", "Jane", "jane@x.com", InviteOptions{})
		require.NoError(t, err)

		list, err := f.uc.List(context.Background(), "PO-1")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("OrderMissing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Invite(context.Background(), "missing", "Jane", "jane@x.com", InviteOptions{})

		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok)
	})
}

func TestRemove(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		f := newFixture(t)
		st, err := f.store.CreateStakeholder(context.Background(), domain.Stakeholder{OrderID: "PO-1", Name: "A", Email: "a@x.com"})
		require.NoError(t, err)

		deleted, err := f.uc.Remove(context.Background(), st.ID)

		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []events.Type{events.StakeholderRemoved}, f.activity.types)
	})

	t.Run("Unknown", func(t *testing.T) {
		f := newFixture(t)

		deleted, err := f.uc.Remove(context.Background(), "nope")

		assert.False(t, deleted)
		_, ok := apperrors.IsNotFoundError(err)
		assert.True(t, ok)
		assert.Empty(t, f.activity.types)
	})
}

func TestUpdatePermissions(t *testing.T) {
	f := newFixture(t)
	st, err := f.store.CreateStakeholder(context.Background(), domain.Stakeholder{OrderID: "PO-1", Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	updated, err := f.uc.UpdatePermissions(context.Background(), st.ID, domain.PermissionComment)

	require.NoError(t, err)
	assert.Equal(t, domain.PermissionComment, updated.Permissions)
	assert.Equal(t, []events.Type{events.StakeholderPermissionsChanged}, f.activity.types)

	_, err = f.uc.UpdatePermissions(context.Background(), "nope", domain.PermissionComment)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestSplitAddresses(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want []string
	}{
		"Commas":        {"a@x.com,b@x.com", []string{"a@x.com", "b@x.com"}},
		"MixedNewlines": {"a@x.com\nb@x.com\r\nc@x.com", []string{"a@x.com", "b@x.com", "c@x.com"}},
		"TrimsAndSkips": {"  a@x.com , ,\n\n b@x.com  ", []string{"a@x.com", "b@x.com"}},
		"Empty":         {"", []string{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAddresses(tt.raw))
		})
	}
}
