package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

type stubAccessRepo struct {
	profile models.ClientProfile
	findErr error

	persistedInitial  *time.Time
	extensionDate     *time.Time
	extensionBonus    int
	lockedValue       *bool
	persistInitialErr error
	applyExtensionErr error
}

func (stub *stubAccessRepo) FindByUserID(uint) (models.ClientProfile, error) {
	if stub.findErr != nil {
		return models.ClientProfile{}, stub.findErr
	}
	return stub.profile, nil
}

func (stub *stubAccessRepo) PersistInitialExpiration(_ uint, expiration time.Time) error {
	if stub.persistInitialErr != nil {
		return stub.persistInitialErr
	}
	stub.persistedInitial = &expiration
	return nil
}

func (stub *stubAccessRepo) ApplyExtension(_ uint, expiration time.Time, bonusDays int) error {
	if stub.applyExtensionErr != nil {
		return stub.applyExtensionErr
	}
	stub.extensionDate = &expiration
	stub.extensionBonus = bonusDays
	return nil
}

func (stub *stubAccessRepo) SetAccessLocked(_ uint, locked bool) error {
	stub.lockedValue = &locked
	return nil
}

func TestEvaluateAccessComputesAndPersistsExpirationOnce(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{EntitlementDays: 30, CreatedAt: created},
	}
	service := NewAccessService(repo, time.UTC)

	decision, profile, err := service.EvaluateAccess(1, created.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("EvaluateAccess() unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected access allowed, got reason %q", decision.Reason)
	}
	if repo.persistedInitial == nil {
		t.Fatal("expected expiration to be persisted")
	}
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if !repo.persistedInitial.Equal(want) {
		t.Fatalf("persisted expiration = %s, want %s", repo.persistedInitial, want)
	}
	if profile.ExpirationDate == nil || !profile.ExpirationDate.Equal(want) {
		t.Fatalf("returned profile expiration = %v, want %s", profile.ExpirationDate, want)
	}
}

func TestEvaluateAccessKeepsExistingExpiration(t *testing.T) {
	persisted := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{
			EntitlementDays: 30,
			CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate:  &persisted,
		},
	}
	service := NewAccessService(repo, time.UTC)

	_, _, err := service.EvaluateAccess(1, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("EvaluateAccess() unexpected error: %v", err)
	}
	if repo.persistedInitial != nil {
		t.Fatal("expected persisted expiration to stay untouched")
	}
}

func TestEvaluateAccessBlockedWritesNothing(t *testing.T) {
	repo := &stubAccessRepo{
		profile: models.ClientProfile{EntitlementDays: 30, AccessLocked: true},
	}
	service := NewAccessService(repo, time.UTC)

	decision, _, err := service.EvaluateAccess(1, time.Now())
	if err != nil {
		t.Fatalf("EvaluateAccess() unexpected error: %v", err)
	}
	if decision.Allowed || decision.Reason != AccessDeniedBlocked {
		t.Fatalf("expected blocked denial, got %+v", decision)
	}
	// The lock is decided before the lazy expiration computation, so a
	// blocked account's evaluation never persists anything.
	if repo.persistedInitial != nil {
		t.Fatal("expected no expiration write for a locked account")
	}
}

func TestEvaluateAccessDeniesExpired(t *testing.T) {
	persisted := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{ExpirationDate: &persisted},
	}
	service := NewAccessService(repo, time.UTC)

	decision, _, err := service.EvaluateAccess(1, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("EvaluateAccess() unexpected error: %v", err)
	}
	if decision.Allowed || decision.Reason != AccessDeniedExpired {
		t.Fatalf("expected expired denial, got %+v", decision)
	}
}

func TestGrantExtensionRejectsNonPositiveDays(t *testing.T) {
	service := NewAccessService(&stubAccessRepo{}, time.UTC)

	for _, days := range []int{0, -7} {
		if _, err := service.GrantExtension(1, days, time.Now()); !errors.Is(err, ErrInvalidExtension) {
			t.Fatalf("GrantExtension(%d) expected ErrInvalidExtension, got %v", days, err)
		}
	}
}

func TestGrantExtensionAdvancesPersistedDate(t *testing.T) {
	persisted := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{
			EntitlementDays: 30,
			BonusDays:       10,
			ExpirationDate:  &persisted,
			AccessLocked:    true,
		},
	}
	service := NewAccessService(repo, time.UTC)

	newExpiration, err := service.GrantExtension(1, 14, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GrantExtension() unexpected error: %v", err)
	}
	want := time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC)
	if !newExpiration.Equal(want) {
		t.Fatalf("new expiration = %s, want %s", newExpiration, want)
	}
	if repo.extensionDate == nil || !repo.extensionDate.Equal(want) {
		t.Fatalf("persisted extension date = %v, want %s", repo.extensionDate, want)
	}
	if repo.extensionBonus != 24 {
		t.Fatalf("persisted bonus days = %d, want 24", repo.extensionBonus)
	}
}

func TestGrantExtensionComputesBaseWhenAbsent(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{EntitlementDays: 30, CreatedAt: created},
	}
	service := NewAccessService(repo, time.UTC)

	newExpiration, err := service.GrantExtension(1, 7, created.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("GrantExtension() unexpected error: %v", err)
	}
	want := created.AddDate(0, 0, 37)
	if !newExpiration.Equal(want) {
		t.Fatalf("new expiration = %s, want %s", newExpiration, want)
	}
}

func TestGrantExtensionThenEvaluateAllows(t *testing.T) {
	persisted := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	repo := &stubAccessRepo{
		profile: models.ClientProfile{ExpirationDate: &persisted, AccessLocked: true},
	}
	service := NewAccessService(repo, time.UTC)

	newExpiration, err := service.GrantExtension(1, 5, now)
	if err != nil {
		t.Fatalf("GrantExtension() unexpected error: %v", err)
	}
	if got := persisted.AddDate(0, 0, 5); !newExpiration.Equal(got) {
		t.Fatalf("expected expiration exactly 5 days later, got %s", newExpiration)
	}

	// The extension write clears the lock and advances the date, so the
	// follow-up evaluation must allow the client in.
	repo.profile.ExpirationDate = repo.extensionDate
	repo.profile.AccessLocked = false
	decision, _, err := service.EvaluateAccess(1, now)
	if err != nil {
		t.Fatalf("EvaluateAccess() unexpected error: %v", err)
	}
	if !decision.Allowed {
		t.Fatalf("expected access after extension, got reason %q", decision.Reason)
	}
}

func TestEvaluateAccessSurfacesPersistenceFailure(t *testing.T) {
	repo := &stubAccessRepo{
		profile:           models.ClientProfile{EntitlementDays: 30},
		persistInitialErr: errors.New("disk full"),
	}
	service := NewAccessService(repo, time.UTC)

	if _, _, err := service.EvaluateAccess(1, time.Now()); !errors.Is(err, ErrAccessPersistFailed) {
		t.Fatalf("expected ErrAccessPersistFailed, got %v", err)
	}
}
