//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_AuthFlow_RegisterLoginMe walks the full account lifecycle:
// register, query the profile with the issued token, then log in again
// with the same credentials.
func TestE2E_AuthFlow_RegisterLoginMe(t *testing.T) {
	ts := setupTestServer(t)

	email := fmt.Sprintf("flow-%s@example.com", uuid.New().String()[:8])

	// Register.
	_, result := ts.graphqlQuery(t, `
		mutation($input: RegisterInput!) {
			register(input: $input) {
				accessToken
				user { id email name role }
			}
		}`,
		map[string]any{"input": map[string]any{
			"email":    email,
			"name":     "Flow User",
			"password": testPassword,
		}}, "")
	requireNoErrors(t, result)

	payload := gqlPayload(t, result, "register")
	token := payload["accessToken"].(string)
	require.NotEmpty(t, token)

	user := payload["user"].(map[string]any)
	assert.Equal(t, email, user["email"])
	assert.Equal(t, "Flow User", user["name"])
	assert.Equal(t, "user", user["role"])

	// Me with the registration token.
	_, result = ts.graphqlQuery(t, `query { me { id email } }`, nil, token)
	requireNoErrors(t, result)
	me := gqlPayload(t, result, "me")
	assert.Equal(t, user["id"], me["id"])
	assert.Equal(t, email, me["email"])

	// Login issues a fresh token for the same account.
	_, result = ts.graphqlQuery(t, `
		mutation($input: LoginInput!) {
			login(input: $input) {
				accessToken
				user { id }
			}
		}`,
		map[string]any{"input": map[string]any{
			"email":    email,
			"password": testPassword,
		}}, "")
	requireNoErrors(t, result)

	login := gqlPayload(t, result, "login")
	assert.NotEmpty(t, login["accessToken"])
	assert.Equal(t, user["id"], login["user"].(map[string]any)["id"])
}

// TestE2E_AuthFlow_DuplicateEmail verifies that registering the same email
// twice yields ALREADY_EXISTS.
func TestE2E_AuthFlow_DuplicateEmail(t *testing.T) {
	ts := setupTestServer(t)

	email := fmt.Sprintf("dup-%s@example.com", uuid.New().String()[:8])
	input := map[string]any{"input": map[string]any{
		"email":    email,
		"name":     "First",
		"password": testPassword,
	}}
	mutation := `
		mutation($input: RegisterInput!) {
			register(input: $input) { accessToken }
		}`

	_, result := ts.graphqlQuery(t, mutation, input, "")
	requireNoErrors(t, result)

	_, result = ts.graphqlQuery(t, mutation, input, "")
	assert.Equal(t, "ALREADY_EXISTS", gqlErrorCode(t, result))
}

// TestE2E_AuthFlow_WrongPassword verifies that a bad password is rejected
// with UNAUTHENTICATED, not with anything that leaks account existence.
func TestE2E_AuthFlow_WrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	email := fmt.Sprintf("wrong-%s@example.com", uuid.New().String()[:8])
	_, result := ts.graphqlQuery(t, `
		mutation($input: RegisterInput!) {
			register(input: $input) { accessToken }
		}`,
		map[string]any{"input": map[string]any{
			"email":    email,
			"name":     "Wrong Pass",
			"password": testPassword,
		}}, "")
	requireNoErrors(t, result)

	_, result = ts.graphqlQuery(t, `
		mutation($input: LoginInput!) {
			login(input: $input) { accessToken }
		}`,
		map[string]any{"input": map[string]any{
			"email":    email,
			"password": "definitely-not-it",
		}}, "")
	assert.Equal(t, "UNAUTHENTICATED", gqlErrorCode(t, result))
}

// TestE2E_AuthFlow_UnknownEmail verifies login against a non-existent
// account fails the same way a bad password does.
func TestE2E_AuthFlow_UnknownEmail(t *testing.T) {
	ts := setupTestServer(t)

	_, result := ts.graphqlQuery(t, `
		mutation($input: LoginInput!) {
			login(input: $input) { accessToken }
		}`,
		map[string]any{"input": map[string]any{
			"email":    "nobody@example.com",
			"password": testPassword,
		}}, "")
	assert.Equal(t, "UNAUTHENTICATED", gqlErrorCode(t, result))
}

// TestE2E_AuthFlow_ShortPassword verifies registration input validation.
func TestE2E_AuthFlow_ShortPassword(t *testing.T) {
	ts := setupTestServer(t)

	_, result := ts.graphqlQuery(t, `
		mutation($input: RegisterInput!) {
			register(input: $input) { accessToken }
		}`,
		map[string]any{"input": map[string]any{
			"email":    "short@example.com",
			"name":     "Short",
			"password": "tiny",
		}}, "")
	assert.Equal(t, "VALIDATION", gqlErrorCode(t, result))
}

// TestE2E_AuthFlow_InvalidToken verifies that a garbage bearer token is
// rejected by the middleware before GraphQL execution.
func TestE2E_AuthFlow_InvalidToken(t *testing.T) {
	ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query",
		strings.NewReader(`{"query": "query { me { id } }"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestE2E_AuthFlow_AnonymousMe verifies that an unauthenticated me query
// fails inside GraphQL with UNAUTHENTICATED.
func TestE2E_AuthFlow_AnonymousMe(t *testing.T) {
	ts := setupTestServer(t)

	_, result := ts.graphqlQuery(t, `query { me { id } }`, nil, "")
	assert.Equal(t, "UNAUTHENTICATED", gqlErrorCode(t, result))
}
