package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	logger_adapter "github.com/srinugalla/the-slice-x/internal/adapters/logger"
	"github.com/srinugalla/the-slice-x/internal/contracts"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/usecase"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type fakeIdentity struct {
	calls int
}

func (f *fakeIdentity) Authenticate(_ context.Context, token string) (*domain.Identity, error) {
	f.calls++
	if token != validToken {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Identity{UserID: "user-1", Email: "buyer@example.com", Role: "authenticated"}, nil
}

type fakeStorage struct {
	listings []domain.Listing
	err      error
	panicMsg string
	calls    int
	filters  []domain.ListingFilters
}

func (f *fakeStorage) GetByLandID(_ context.Context, landID int64) (*domain.Listing, error) {
	f.calls++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.listings {
		if l.LandID == landID {
			copied := l
			return &copied, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (f *fakeStorage) FindPage(_ context.Context, filters domain.ListingFilters, limit, offset int) ([]domain.Listing, error) {
	f.calls++
	f.filters = append(f.filters, filters)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.listings) {
		return []domain.Listing{}, nil
	}
	end := offset + limit
	if end > len(f.listings) {
		end = len(f.listings)
	}
	page := make([]domain.Listing, end-offset)
	copy(page, f.listings[offset:end])
	return page, nil
}

type fakeFilters struct {
	options *domain.FilterOptions
	err     error
}

func (f *fakeFilters) GetFilterOptions(_ context.Context, state, district string) (*domain.FilterOptions, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.options, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeMetrics struct {
	mu     sync.Mutex
	reveal map[string]int
	routes []string
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{reveal: map[string]int{}}
}

func (m *fakeMetrics) ObserveReveal(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reveal[kind+"/"+outcome]++
}

func (m *fakeMetrics) ObserveHTTP(route, method string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = append(m.routes, route)
}

type testEnv struct {
	router   http.Handler
	identity *fakeIdentity
	storage  *fakeStorage
	filters  *fakeFilters
	metrics  *fakeMetrics
}

type envOption func(*testEnv, *RevealContactHandlerConfig, *fakePinger)

func withExposedStoreErrors() envOption {
	return func(_ *testEnv, cfg *RevealContactHandlerConfig, _ *fakePinger) { cfg.ExposeStoreErrors = true }
}

func withPingError(err error) envOption {
	return func(_ *testEnv, _ *RevealContactHandlerConfig, p *fakePinger) { p.err = err }
}

func newTestEnv(t *testing.T, listings []domain.Listing, opts ...envOption) *testEnv {
	t.Helper()

	env := &testEnv{
		identity: &fakeIdentity{},
		storage:  &fakeStorage{listings: listings},
		filters:  &fakeFilters{options: &domain.FilterOptions{States: []string{"Telangana"}, Districts: []string{}, Mandals: []string{}}},
		metrics:  newFakeMetrics(),
	}
	cfg := RevealContactHandlerConfig{PageDefaults: PageDefaults{DefaultLimit: 20, MaxLimit: 100}}
	pinger := &fakePinger{}
	for _, opt := range opts {
		opt(env, &cfg, pinger)
	}

	registry, err := contracts.NewRegistry()
	require.NoError(t, err)

	handlers := Handlers{
		Reveal:  NewRevealContactHandler(usecase.NewRevealContactUseCase(env.storage), registry, cfg, env.metrics),
		Filters: NewFilterHandler(usecase.NewGetFilterOptionsUseCase(env.filters)),
		Health:  NewHealthHandler(pinger, time.Second),
		Auth:    NewAuthMiddleware(usecase.NewAuthenticateCallerUseCase(env.identity), env.metrics),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("# metrics"))
		}),
	}
	env.router = NewRouter(handlers, env.metrics, logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard}))
	return env
}

var errStoreTimeout = errors.New("canceling statement due to statement timeout")

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func seedListings(n int) []domain.Listing {
	listings := make([]domain.Listing, 0, n)
	for i := 1; i <= n; i++ {
		listings = append(listings, domain.Listing{
			LandID:    int64(i),
			State:     "Telangana",
			District:  "Rangareddy",
			Village:   "Village",
			Area:      floatPtr(1),
			AreaUnit:  "acres",
			Phone:     strPtr("98480"),
			ImageURLs: []string{},
		})
	}
	return listings
}
