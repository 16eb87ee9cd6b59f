//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type projectResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apiKeyCreateResponse struct {
	APIKey    string `json:"api_key"`
	ProjectID int64  `json:"project_id"`
}

type submitScoreResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

type scoreRow struct {
	Username string `json:"username"`
	Value    int64  `json:"value"`
}

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("SCOREFORGE_BASE_URL", "http://localhost:8080")

	// Unique per run so reruns do not collide on uniqueness constraints.
	suffix := strings.ToLower(ulid.Make().String())
	username := "e2e_" + suffix[:12]
	email := username + "@example.com"
	password := "Secret123!"

	// Register.
	var user userResponse
	status, _ := doJSON(t, baseURL, http.MethodPost, "/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	}, &user)
	if status != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", status)
	}
	if user.Username != username {
		t.Fatalf("register: username = %q, want %q", user.Username, username)
	}

	// Duplicate registration.
	var dupErr errorResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, "/auth/register", "", map[string]any{
		"username": username,
		"email":    "other_" + email,
		"password": password,
	}, &dupErr)
	if status != http.StatusBadRequest {
		t.Errorf("duplicate register: status = %d, want 400", status)
	}
	if dupErr.Error.Code != "USERNAME_TAKEN" {
		t.Errorf("duplicate register: code = %q, want USERNAME_TAKEN", dupErr.Error.Code)
	}

	// Login with the wrong password.
	status, body := doForm(t, baseURL, "/auth/login", username, "wrong-password")
	if status != http.StatusUnauthorized {
		t.Errorf("bad login: status = %d, want 401, body %s", status, body)
	}

	// Login.
	status, body = doForm(t, baseURL, "/auth/login", username, password)
	if status != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", status, body)
	}
	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		t.Fatalf("login: decode body: %v", err)
	}
	if token.TokenType != "bearer" || token.AccessToken == "" {
		t.Fatalf("login: unexpected token response %+v", token)
	}

	// Project creation requires a session.
	var noAuthErr errorResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, "/projects", "", map[string]any{"name": "nope"}, &noAuthErr)
	if status != http.StatusUnauthorized {
		t.Errorf("unauthenticated project create: status = %d, want 401", status)
	}

	// Create a project.
	projectName := "E2E Game " + suffix[:8]
	var project projectResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, "/projects", token.AccessToken, map[string]any{
		"name": projectName,
	}, &project)
	if status != http.StatusCreated {
		t.Fatalf("create project: status = %d, want 201", status)
	}
	if project.ID == 0 {
		t.Fatal("create project: no ID assigned")
	}

	// List projects includes the new one.
	var projects []projectResponse
	status, _ = doJSON(t, baseURL, http.MethodGet, "/projects", token.AccessToken, nil, &projects)
	if status != http.StatusOK {
		t.Fatalf("list projects: status = %d", status)
	}
	found := false
	for _, p := range projects {
		if p.ID == project.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("project %d missing from list", project.ID)
	}

	// Issue the project API key.
	keysPath := fmt.Sprintf("/projects/%d/keys", project.ID)
	var issued apiKeyCreateResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, keysPath, token.AccessToken, nil, &issued)
	if status != http.StatusCreated {
		t.Fatalf("issue key: status = %d, want 201", status)
	}
	if !strings.HasPrefix(issued.APIKey, "sf_") {
		t.Errorf("issued key %q lacks sf_ prefix", issued.APIKey)
	}

	// A second issue is refused; the first key stays valid.
	var conflictErr errorResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, keysPath, token.AccessToken, nil, &conflictErr)
	if status != http.StatusConflict {
		t.Errorf("second issue: status = %d, want 409", status)
	}
	if conflictErr.Error.Code != "KEY_EXISTS" {
		t.Errorf("second issue: code = %q, want KEY_EXISTS", conflictErr.Error.Code)
	}

	// Submit scores with the key.
	submitScore(t, baseURL, issued.APIKey, "player_one", 100)
	submitScore(t, baseURL, issued.APIKey, "player_two", 50)
	submitScore(t, baseURL, issued.APIKey, "player_three", 100)

	// Submission without a key.
	var missingErr errorResponse
	status, _ = doJSON(t, baseURL, http.MethodPost, "/scores/submit", "", map[string]any{
		"username": "player_x", "value": 1,
	}, &missingErr)
	if status != http.StatusUnauthorized {
		t.Errorf("submit without key: status = %d, want 401", status)
	}
	if missingErr.Error.Code != "MISSING_API_KEY" {
		t.Errorf("submit without key: code = %q, want MISSING_API_KEY", missingErr.Error.Code)
	}

	// Submission with a forged key.
	status, body = doRaw(t, baseURL, http.MethodPost, "/scores/submit",
		map[string]string{"X-API-Key": "sf_live_forged"},
		[]byte(`{"username":"player_x","value":1}`))
	if status != http.StatusForbidden {
		t.Errorf("submit with forged key: status = %d, want 403, body %s", status, body)
	}

	// Negative values are rejected.
	status, body = doRaw(t, baseURL, http.MethodPost, "/scores/submit",
		map[string]string{"X-API-Key": issued.APIKey, "Content-Type": "application/json"},
		[]byte(`{"username":"player_neg","value":-5}`))
	if status != http.StatusUnprocessableEntity {
		t.Errorf("negative score: status = %d, want 422, body %s", status, body)
	}

	// Leaderboard is public and ordered by value, then recency.
	lbPath := fmt.Sprintf("/scores/leaderboard/%d", project.ID)
	rows := fetchLeaderboard(t, baseURL, lbPath)
	if len(rows) != 3 {
		t.Fatalf("leaderboard has %d rows, want 3", len(rows))
	}
	wantValues := []int64{100, 100, 50}
	for i, want := range wantValues {
		if rows[i].Value != want {
			t.Errorf("leaderboard row %d value = %d, want %d", i, rows[i].Value, want)
		}
	}
	// Tie on 100 breaks toward the newer submission.
	if rows[0].Username != "player_three" {
		t.Errorf("leaderboard first row = %q, want player_three", rows[0].Username)
	}
	if rows[2].Username != "player_two" {
		t.Errorf("leaderboard last row = %q, want player_two", rows[2].Username)
	}

	// Limit is honored.
	rows = fetchLeaderboard(t, baseURL, lbPath+"?limit=2")
	if len(rows) != 2 {
		t.Errorf("leaderboard with limit=2 has %d rows", len(rows))
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func submitScore(t *testing.T, baseURL, apiKey, username string, value int64) {
	t.Helper()

	status, body := doRaw(t, baseURL, http.MethodPost, "/scores/submit",
		map[string]string{"X-API-Key": apiKey, "Content-Type": "application/json"},
		[]byte(fmt.Sprintf(`{"username":%q,"value":%d}`, username, value)))
	if status != http.StatusOK {
		t.Fatalf("submit score for %s: status = %d, body %s", username, status, body)
	}

	var resp submitScoreResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("submit score: decode body: %v", err)
	}
	if !resp.OK || resp.ID == 0 {
		t.Fatalf("submit score: unexpected response %+v", resp)
	}

	// Keep created_at ordering unambiguous between submissions.
	time.Sleep(10 * time.Millisecond)
}

func fetchLeaderboard(t *testing.T, baseURL, path string) []scoreRow {
	t.Helper()

	var rows []scoreRow
	status, _ := doJSON(t, baseURL, http.MethodGet, path, "", nil, &rows)
	if status != http.StatusOK {
		t.Fatalf("leaderboard %s: status = %d", path, status)
	}
	return rows
}

// doJSON sends a request with an optional bearer token and decodes the
// JSON response into out. Returns the status code and raw body.
func doJSON(t *testing.T, baseURL, method, path, bearer string, payload, out any) (int, []byte) {
	t.Helper()

	headers := map[string]string{}
	if bearer != "" {
		headers["Authorization"] = "Bearer " + bearer
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		headers["Content-Type"] = "application/json"
	}

	status, raw := doRaw(t, baseURL, method, path, headers, body)
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("%s %s: decode response %q: %v", method, path, raw, err)
		}
	}
	return status, raw
}

func doForm(t *testing.T, baseURL, path, username, password string) (int, []byte) {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	return doRaw(t, baseURL, http.MethodPost, path,
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		[]byte(form.Encode()))
}

func doRaw(t *testing.T, baseURL, method, path string, headers map[string]string, body []byte) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, raw
}
