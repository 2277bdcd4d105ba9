package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/planetarium-reservation-system/internal/domain"
	"github.com/metinatakli/planetarium-reservation-system/internal/repository"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, url string, body io.Reader, headers map[string]string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, url, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req
}

func compareResponse(t testing.TB, body io.Reader, expected string) {
	t.Helper()

	var actualBody, expectedBody any

	err := json.NewDecoder(body).Decode(&actualBody)
	require.NoError(t, err)

	err = json.Unmarshal([]byte(expected), &expectedBody)
	require.NoError(t, err)

	ignoreFields := cmpopts.IgnoreMapEntries(func(key string, _ any) bool {
		return key == "timestamp" || key == "requestId" || key == "createdAt"
	})

	if diff := cmp.Diff(expectedBody, actualBody, ignoreFields); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()

	var v T
	err := json.NewDecoder(res.Body).Decode(&v)
	require.NoError(t, err)

	return v
}

func jsonBody(t testing.TB, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func executeSQLFile(t testing.TB, app *TestApp, name string) {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	_, err = app.DB.Exec(context.Background(), string(content))
	require.NoError(t, err)
}

func truncateAll(t testing.TB, app *TestApp) {
	t.Helper()

	app.App.Wait()

	_, err := app.DB.Exec(context.Background(), `
		TRUNCATE tickets, reservations, show_sessions, planetarium_domes,
			astronomy_show_themes, astronomy_shows, show_themes, users
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	require.NoError(t, app.flushSessions())
	app.Mailer.Reset()
}

func createUser(t testing.TB, app *TestApp, email, name string, isStaff bool) *domain.User {
	t.Helper()

	user := &domain.User{Email: email, Name: name, IsStaff: isStaff}
	require.NoError(t, user.Password.Set(testPassword))

	err := repository.NewPostgresUserRepository(app.DB).Create(context.Background(), user)
	require.NoError(t, err)

	return user
}

func login(t testing.TB, app *TestApp, email string) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, testPassword)
	req := prepareRequest(http.MethodPost, "/sessions", strings.NewReader(body), nil, nil)

	rec := httptest.NewRecorder()
	app.Handler.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	requireStatus(t, res, http.StatusNoContent)

	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	return cookies
}

func (a *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	createUser(t, a, userEmail, userName, false)

	return login(t, a, userEmail)
}

func (a *TestApp) staffCookies(t testing.TB) []*http.Cookie {
	t.Helper()

	createUser(t, a, staffEmail, staffName, true)

	return login(t, a, staffEmail)
}

func (a *TestApp) do(t testing.TB, method, url string, body io.Reader, cookies []*http.Cookie) *http.Response {
	t.Helper()

	req := prepareRequest(method, url, body, nil, cookies)

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	return rec.Result()
}

func countRows(t testing.TB, app *TestApp, query string, args ...any) int {
	t.Helper()

	var n int
	err := app.DB.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)

	return n
}
