package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"school_backend/internal/feature/summary/domain/entity"
)

// mockCountRepository はテスト用のCountRepositoryモック実装です。
type mockCountRepository struct {
	countFn func(ctx context.Context) (*entity.Counts, error)
	calls   int
}

// CountActive はモックのcount関数を呼び出します。
func (m *mockCountRepository) CountActive(ctx context.Context) (*entity.Counts, error) {
	m.calls++
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return &entity.Counts{}, nil
}

var sampleCounts = &entity.Counts{Users: 2, Classes: 3, Subjects: 4, Teachers: 5, Students: 6, Results: 7}

// TestNewCachingCountRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingCountRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			expectedTTL:       30 * time.Second,
			expectedNamespace: "summary",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			expectedTTL:       30 * time.Second,
			expectedNamespace: "summary",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingCountRepository(nil, tt.ttl, &mockCountRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingCountRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingCountRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockCountRepository{
		countFn: func(ctx context.Context) (*entity.Counts, error) { return sampleCounts, nil },
	}
	repo := NewCachingCountRepository(nil, time.Minute, inner, "")

	counts, err := repo.CountActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *counts != *sampleCounts {
		t.Errorf("expected %+v, got %+v", sampleCounts, counts)
	}
	repo.Invalidate(context.Background())
}

// TestCachingCountRepository_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingCountRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(sampleCounts)
	mock.ExpectGet("summary:counts").SetVal(string(cachedJSON))

	inner := &mockCountRepository{}
	repo := NewCachingCountRepository(rdb, time.Minute, inner, "")

	counts, err := repo.CountActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 0 {
		t.Error("inner repository should not be called on cache hit")
	}
	if *counts != *sampleCounts {
		t.Errorf("expected %+v, got %+v", sampleCounts, counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCountRepository_CacheMiss はキャッシュミス時にDBから取得し、キャッシュに保存することを検証します。
func TestCachingCountRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleCounts)
	mock.ExpectGet("summary:counts").RedisNil()
	mock.ExpectSet("summary:counts", expectedJSON, 30*time.Second).SetVal("OK")

	inner := &mockCountRepository{
		countFn: func(ctx context.Context) (*entity.Counts, error) { return sampleCounts, nil },
	}
	repo := NewCachingCountRepository(rdb, 30*time.Second, inner, "summary")

	if _, err := repo.CountActive(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCountRepository_InnerError は内部リポジトリのエラーが伝播され、キャッシュされないことを検証します。
func TestCachingCountRepository_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("summary:counts").RedisNil()

	inner := &mockCountRepository{
		countFn: func(ctx context.Context) (*entity.Counts, error) { return nil, expectedErr },
	}
	repo := NewCachingCountRepository(rdb, time.Minute, inner, "")

	_, err := repo.CountActive(context.Background())
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCountRepository_CorruptedCache は破損したキャッシュを削除し、DBにフォールバックすることを検証します。
func TestCachingCountRepository_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleCounts)
	mock.ExpectGet("summary:counts").SetVal("invalid json")
	mock.ExpectDel("summary:counts").SetVal(1)
	mock.ExpectSet("summary:counts", expectedJSON, time.Minute).SetVal("OK")

	inner := &mockCountRepository{
		countFn: func(ctx context.Context) (*entity.Counts, error) { return sampleCounts, nil },
	}
	repo := NewCachingCountRepository(rdb, time.Minute, inner, "")

	counts, err := repo.CountActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *counts != *sampleCounts {
		t.Errorf("expected %+v, got %+v", sampleCounts, counts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCountRepository_Invalidate はInvalidateがキャッシュキーを削除することを検証します。
func TestCachingCountRepository_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("summary:counts").SetVal(1)

	NewCachingCountRepository(rdb, time.Minute, &mockCountRepository{}, "").Invalidate(context.Background())

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}
