package session_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/apertura/authcore/core/session"
)

// mockStore implements session.Store for testing.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, sess *session.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *mockStore) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *mockStore) FindActive(ctx context.Context, userID uuid.UUID, fp string) (*session.Session, error) {
	args := m.Called(ctx, userID, fp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *mockStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Session), args.Error(1)
}

func (m *mockStore) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockStore) DeleteOthers(ctx context.Context, userID uuid.UUID, currentToken string) (int64, error) {
	args := m.Called(ctx, userID, currentToken)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeNotifier records notifications on a channel so tests can wait for
// the background delivery without polling.
type fakeNotifier struct {
	delivered chan session.NewDeviceNotification
	fail      error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{delivered: make(chan session.NewDeviceNotification, 8)}
}

func (f *fakeNotifier) NotifyNewDevice(_ context.Context, n session.NewDeviceNotification) error {
	if f.fail != nil {
		return f.fail
	}
	f.delivered <- n
	return nil
}

// fakeAccounts marks a fixed set of users as banned.
type fakeAccounts struct {
	banned map[uuid.UUID]bool
	err    error
}

func (f *fakeAccounts) IsBanned(_ context.Context, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.banned[userID], nil
}

func activeSession(t *testing.T, userID uuid.UUID) *session.Session {
	t.Helper()
	sess, err := session.New(userID, session.NewSessionParams{
		IP:        "203.0.113.7",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile Safari/604.1",
	}, time.Hour)
	require.NoError(t, err)
	return &sess
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fresh device creates session and notifies", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		store := &mockStore{}
		store.On("FindActive", ctx, userID, mock.Anything).Return(nil, session.ErrNotFound)
		store.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

		notifier := newFakeNotifier()
		mgr := session.NewManager(store,
			session.WithRefreshTTL(time.Hour),
			session.WithNotifier(notifier),
		)

		result, err := mgr.SignIn(ctx, session.SignInParams{
			UserID:    userID,
			IP:        "203.0.113.7",
			UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) Mobile Safari/604.1",
		})
		require.NoError(t, err)

		assert.True(t, result.NewDevice)
		assert.Equal(t, userID, result.Session.UserID)
		assert.NotEmpty(t, result.Session.Token)

		select {
		case n := <-notifier.delivered:
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, "Mobile", n.DeviceName)
			assert.Equal(t, "Safari", n.BrowserName)
			assert.Equal(t, "203.0.113.7", n.IP)
		case <-time.After(time.Second):
			t.Fatal("expected a new device notification")
		}
		store.AssertExpectations(t)
	})

	t.Run("known device skips notification", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		existing := activeSession(t, userID)
		store := &mockStore{}
		store.On("FindActive", ctx, userID, existing.Fingerprint).Return(existing, nil)
		store.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

		notifier := newFakeNotifier()
		mgr := session.NewManager(store, session.WithNotifier(notifier))

		result, err := mgr.SignIn(ctx, session.SignInParams{
			UserID:    userID,
			IP:        existing.IP,
			UserAgent: existing.UserAgent,
		})
		require.NoError(t, err)
		assert.False(t, result.NewDevice)

		select {
		case <-notifier.delivered:
			t.Fatal("no notification expected for a known device")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("notification failure never fails sign-in", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		store := &mockStore{}
		store.On("FindActive", ctx, userID, mock.Anything).Return(nil, session.ErrNotFound)
		store.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

		notifier := newFakeNotifier()
		notifier.fail = errors.New("notification service down")
		mgr := session.NewManager(store, session.WithNotifier(notifier))

		result, err := mgr.SignIn(ctx, session.SignInParams{UserID: userID, IP: "1.2.3.4"})
		require.NoError(t, err)
		assert.True(t, result.NewDevice)
	})

	t.Run("banned account rejected", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		store := &mockStore{}
		mgr := session.NewManager(store, session.WithAccountChecker(&fakeAccounts{
			banned: map[uuid.UUID]bool{userID: true},
		}))

		_, err := mgr.SignIn(ctx, session.SignInParams{UserID: userID, IP: "1.2.3.4"})
		assert.ErrorIs(t, err, session.ErrAccountBanned)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("account check failure fails closed", func(t *testing.T) {
		t.Parallel()

		checkErr := errors.New("accounts service unavailable")
		store := &mockStore{}
		mgr := session.NewManager(store, session.WithAccountChecker(&fakeAccounts{err: checkErr}))

		_, err := mgr.SignIn(ctx, session.SignInParams{UserID: uuid.New(), IP: "1.2.3.4"})
		assert.ErrorIs(t, err, checkErr)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		storeErr := errors.New("write timeout")
		store := &mockStore{}
		store.On("FindActive", ctx, userID, mock.Anything).Return(nil, session.ErrNotFound)
		store.On("Create", ctx, mock.AnythingOfType("*session.Session")).Return(storeErr)

		mgr := session.NewManager(store)
		_, err := mgr.SignIn(ctx, session.SignInParams{UserID: userID, IP: "1.2.3.4"})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid credential returns session", func(t *testing.T) {
		t.Parallel()

		sess := activeSession(t, uuid.New())
		store := &mockStore{}
		store.On("GetByToken", ctx, sess.Token).Return(sess, nil)

		// Touch interval disabled: LastActiveAt stays untouched.
		mgr := session.NewManager(store, session.WithTouchInterval(0))

		got, err := mgr.Refresh(ctx, sess.Token)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
		store.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty credential", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(&mockStore{})
		_, err := mgr.Refresh(ctx, "")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("unknown credential", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("GetByToken", ctx, "missing").Return(nil, session.ErrNotFound)

		mgr := session.NewManager(store)
		_, err := mgr.Refresh(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("expired session is deleted and rejected", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		expired, err := session.New(userID, session.NewSessionParams{IP: "1.2.3.4"}, -time.Minute)
		require.NoError(t, err)

		store := &mockStore{}
		store.On("GetByToken", ctx, expired.Token).Return(&expired, nil)
		store.On("Delete", ctx, expired.ID).Return(nil)

		mgr := session.NewManager(store)
		_, err = mgr.Refresh(ctx, expired.Token)
		assert.ErrorIs(t, err, session.ErrExpired)
		store.AssertExpectations(t)
	})

	t.Run("stale last-active is touched", func(t *testing.T) {
		t.Parallel()

		sess := activeSession(t, uuid.New())
		sess.LastActiveAt = time.Now().Add(-time.Hour)

		store := &mockStore{}
		store.On("GetByToken", ctx, sess.Token).Return(sess, nil)
		store.On("Touch", ctx, sess.ID, mock.AnythingOfType("time.Time")).Return(nil)

		mgr := session.NewManager(store, session.WithTouchInterval(5*time.Minute))

		got, err := mgr.Refresh(ctx, sess.Token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), got.LastActiveAt, time.Minute)
		store.AssertExpectations(t)
	})
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes by credential", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("DeleteByToken", ctx, "the-token").Return(nil)

		mgr := session.NewManager(store)
		assert.NoError(t, mgr.SignOut(ctx, "the-token"))
		store.AssertExpectations(t)
	})

	t.Run("idempotent on absent session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("DeleteByToken", ctx, "gone").Return(session.ErrNotFound)

		mgr := session.NewManager(store)
		assert.NoError(t, mgr.SignOut(ctx, "gone"))
	})

	t.Run("empty credential is a no-op", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(&mockStore{})
		assert.NoError(t, mgr.SignOut(ctx, ""))
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("unavailable")
		store := &mockStore{}
		store.On("DeleteByToken", ctx, "t").Return(storeErr)

		mgr := session.NewManager(store)
		assert.ErrorIs(t, mgr.SignOut(ctx, "t"), storeErr)
	})
}

func TestSignOutOthers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	store := &mockStore{}
	store.On("DeleteOthers", ctx, userID, "current").Return(int64(3), nil)

	mgr := session.NewManager(store)
	count, err := mgr.SignOutOthers(ctx, userID, "current")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSignOutSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes another session of the caller", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		target := activeSession(t, userID)
		store := &mockStore{}
		store.On("GetByID", ctx, target.ID).Return(target, nil)
		store.On("Delete", ctx, target.ID).Return(nil)

		mgr := session.NewManager(store)
		assert.NoError(t, mgr.SignOutSession(ctx, userID, target.ID, "a-different-token"))
		store.AssertExpectations(t)
	})

	t.Run("foreign session looks absent", func(t *testing.T) {
		t.Parallel()

		target := activeSession(t, uuid.New())
		store := &mockStore{}
		store.On("GetByID", ctx, target.ID).Return(target, nil)

		mgr := session.NewManager(store)
		err := mgr.SignOutSession(ctx, uuid.New(), target.ID, "")
		assert.ErrorIs(t, err, session.ErrNotFound)
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("current session rejected", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		target := activeSession(t, userID)
		store := &mockStore{}
		store.On("GetByID", ctx, target.ID).Return(target, nil)

		mgr := session.NewManager(store)
		err := mgr.SignOutSession(ctx, userID, target.ID, target.Token)
		assert.ErrorIs(t, err, session.ErrCurrentSession)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		store := &mockStore{}
		store.On("GetByID", ctx, id).Return(nil, session.ErrNotFound)

		mgr := session.NewManager(store)
		assert.ErrorIs(t, mgr.SignOutSession(ctx, uuid.New(), id, ""), session.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	current := activeSession(t, userID)
	other, err := session.New(userID, session.NewSessionParams{
		IP:        "198.51.100.2",
		UserAgent: "Mozilla/5.0 (Windows NT 10.0) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	}, time.Hour)
	require.NoError(t, err)

	store := &mockStore{}
	store.On("ListByUser", ctx, userID).Return([]session.Session{*current, other}, nil)

	mgr := session.NewManager(store)
	infos, err := mgr.List(ctx, userID, current.Token)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.True(t, infos[0].IsCurrent)
	assert.Equal(t, "Mobile", infos[0].DeviceName)
	assert.Equal(t, "Safari", infos[0].BrowserName)
	assert.Equal(t, "203.0.113.7", infos[0].IPAddress)

	assert.False(t, infos[1].IsCurrent)
	assert.Equal(t, "Desktop", infos[1].DeviceName)
	assert.Equal(t, "Edge", infos[1].BrowserName)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	t.Run("cleanup expired delegates to store", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		store.On("DeleteExpired", mock.Anything).Return(int64(7), nil)

		mgr := session.NewManager(store)
		count, err := mgr.CleanupExpired(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("start cleanup sweeps immediately and stops on cancel", func(t *testing.T) {
		t.Parallel()

		var sweeps atomic.Int32
		store := &mockStore{}
		store.On("DeleteExpired", mock.Anything).Run(func(mock.Arguments) {
			sweeps.Add(1)
		}).Return(int64(0), nil)

		ctx, cancel := context.WithCancel(context.Background())
		mgr := session.NewManager(store, session.WithCleanupInterval(10*time.Millisecond))

		done := make(chan struct{})
		go func() {
			mgr.StartCleanup(ctx)
			close(done)
		}()

		require.Eventually(t, func() bool {
			return sweeps.Load() >= 2
		}, time.Second, 5*time.Millisecond, "expected the initial sweep plus at least one tick")

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("cleanup loop did not stop on cancel")
		}
	})
}
