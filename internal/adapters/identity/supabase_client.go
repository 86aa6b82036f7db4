package identity_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/srinugalla/the-slice-x/internal/contextkeys"
	"github.com/srinugalla/the-slice-x/internal/core/domain"
	"github.com/srinugalla/the-slice-x/internal/core/port"
)

const maxErrorBodySize = 4 << 10

// SupabaseClient проверяет токен запросом к API авторизации провайдера.
type SupabaseClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewSupabaseClient(baseURL, anonKey string, timeout time.Duration) (*SupabaseClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("auth base URL cannot be empty")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("auth anon key cannot be empty")
	}
	return &SupabaseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Authenticate возвращает пользователя токена. 401 и 403 от провайдера
// превращаются в domain.ErrUnauthorized, остальные сбои возвращаются как есть.
func (c *SupabaseClient) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SupabaseClient",
		"method":    "Authenticate",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send user request to identity provider: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Identity provider responded", port.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		var body errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body)
		return nil, fmt.Errorf("%w: provider rejected token: %s", domain.ErrUnauthorized, body.text())
	case resp.StatusCode != http.StatusOK:
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("identity provider returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: provider returned no user", domain.ErrUnauthorized)
	}

	return &domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
