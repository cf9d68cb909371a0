package usecases

import (
	"context"
	"time"

	"gavel/internal/domain/audit"
	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
)

// mockUserRepo implements user.Repository for use-case tests.
type mockUserRepo struct {
	users map[string]*user.User // keyed by email

	createErr      error
	getByEmailErr  error
	existsErr      error
	updateSeenErr  error
	createdUser    *user.User
	lastSeenUserID uint
	lastSeenIP     string
	lastSeenUA     string
	lastSeenGeo    geo.Record
	lastSeenCalls  int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*user.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.SetID(uint(len(m.users) + 1))
	m.users[u.Email()] = u
	m.createdUser = u
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	for _, u := range m.users {
		if u.SID() == sid {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailErr != nil {
		return nil, m.getByEmailErr
	}
	return m.users[email], nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserRepo) UpdateLastSeen(ctx context.Context, id uint, ip, ua string, record geo.Record, at time.Time) error {
	m.lastSeenCalls++
	if m.updateSeenErr != nil {
		return m.updateSeenErr
	}
	m.lastSeenUserID = id
	m.lastSeenIP = ip
	m.lastSeenUA = ua
	m.lastSeenGeo = record
	return nil
}

func (m *mockUserRepo) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// mockAuditRepo implements audit.Repository.
type mockAuditRepo struct {
	events    []*audit.LoginEvent
	createErr error
}

func (m *mockAuditRepo) Create(ctx context.Context, event *audit.LoginEvent) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockAuditRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*audit.LoginEvent, int64, error) {
	var out []*audit.LoginEvent
	for _, ev := range m.events {
		if ev.UserID() == userID {
			out = append(out, ev)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockAuditRepo) List(ctx context.Context, page, pageSize int) ([]*audit.LoginEvent, int64, error) {
	return m.events, int64(len(m.events)), nil
}

func (m *mockAuditRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.events)), nil
}

// mockHasher avoids bcrypt cost in tests: hash is "hashed:" + password.
type mockHasher struct {
	hashErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errVerifyFailed
	}
	return nil
}

var errVerifyFailed = &verifyError{}

type verifyError struct{}

func (e *verifyError) Error() string { return "password verification failed" }

// mockTokenIssuer returns a fixed token.
type mockTokenIssuer struct {
	token     string
	expiresIn int64
	err       error
	calls     int
}

func (m *mockTokenIssuer) Issue(userSID string, role user.Role) (string, int64, error) {
	m.calls++
	if m.err != nil {
		return "", 0, m.err
	}
	return m.token, m.expiresIn, nil
}

// mockGeoResolver returns a fixed record, defaulting when unset.
type mockGeoResolver struct {
	record geo.Record
	calls  int
}

func (m *mockGeoResolver) Resolve(ctx context.Context, ip string) geo.Record {
	m.calls++
	if m.record == (geo.Record{}) {
		return geo.DefaultRecord()
	}
	return m.record
}
