package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ReputationSnapshot is a point-in-time view of a business profile on a
// review platform.
type ReputationSnapshot struct {
	Platform    string  `json:"platform"`
	ProfileID   string  `json:"profile_id"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
}

// ReputationConsoleClient talks to a review-platform console API, logging
// in once and reusing the bearer token until it expires.
type ReputationConsoleClient struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	authScheme string
	tokenTTL   time.Duration

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewReputationConsoleClient(baseURL, username, password string) *ReputationConsoleClient {
	return &ReputationConsoleClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		authScheme: "Bearer",
		tokenTTL:   30 * time.Minute,
	}
}

func (c *ReputationConsoleClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

func (c *ReputationConsoleClient) SetTokenTTL(ttl time.Duration) {
	if ttl > 0 {
		c.tokenTTL = ttl
	}
}

func (c *ReputationConsoleClient) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExp) {
		t := c.token
		c.mu.Unlock()
		return t, nil
	}
	c.mu.Unlock()

	tok, err := c.login(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.token = tok
	c.tokenExp = time.Now().Add(c.tokenTTL)
	c.mu.Unlock()

	return tok, nil
}

func (c *ReputationConsoleClient) login(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return "", errors.New("review console baseURL is required")
	}
	if strings.TrimSpace(c.username) == "" || strings.TrimSpace(c.password) == "" {
		return "", errors.New("review console username/password are required")
	}

	payload := map[string]string{
		"username": c.username,
		"password": c.password,
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login/", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("review console login failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("review console login: invalid json: %w", err)
	}

	// Try common token field names.
	for _, k := range []string{"token", "access", "access_token", "jwt"} {
		if v, ok := out[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s, nil
			}
		}
	}

	return "", errors.New("review console login response did not include token")
}

// GetSnapshot fetches the current rating and review count for a profile.
func (c *ReputationConsoleClient) GetSnapshot(ctx context.Context, platform, profileID string) (*ReputationSnapshot, error) {
	platform = strings.TrimSpace(platform)
	profileID = strings.TrimSpace(profileID)
	if platform == "" || profileID == "" {
		return nil, errors.New("platform and profile id are required")
	}

	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(c.baseURL + "/profiles/" + url.PathEscape(profileID) + "/")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("platform", platform)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authScheme+" "+strings.TrimSpace(token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("review console snapshot failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("review console snapshot: invalid json: %w", err)
	}

	snapshot := &ReputationSnapshot{Platform: platform, ProfileID: profileID}
	if v, ok := raw["rating"].(float64); ok {
		snapshot.Rating = v
	}
	for _, k := range []string{"review_count", "reviews", "count"} {
		if v, ok := raw[k].(float64); ok {
			snapshot.ReviewCount = int(v)
			break
		}
	}

	return snapshot, nil
}
