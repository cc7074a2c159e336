package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inatfood/pos-backend/models"
)

type authEnvelope struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   struct {
		User models.User `json:"user"`
	} `json:"data"`
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authEnvelope {
	t.Helper()
	var env authEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSignupReturnsWorkingToken(t *testing.T) {
	_, _, r := setupTestEnv(t)

	w := doJSON(r, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"name": "Abel", "username": "abel", "pin": "4321", "role": models.RoleOwner,
	})
	requireStatus(t, w, http.StatusCreated)

	env := decodeAuth(t, w)
	require.NotEmpty(t, env.Token)
	assert.Equal(t, models.RoleOwner, env.Data.User.Role)
	assert.NotContains(t, w.Body.String(), "4321", "pin must never be serialized")

	w = doJSON(r, http.MethodGet, "/api/v1/users/me", env.Token, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `"username":"abel"`)
}

func TestSignupDefaultsToWaitress(t *testing.T) {
	_, _, r := setupTestEnv(t)

	w := doJSON(r, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"name": "Hanna", "username": "hanna", "pin": "1234",
	})
	requireStatus(t, w, http.StatusCreated)
	assert.Equal(t, models.RoleWaitress, decodeAuth(t, w).Data.User.Role)
}

func TestSignupRejectsShortPin(t *testing.T) {
	_, _, r := setupTestEnv(t)

	w := doJSON(r, http.MethodPost, "/api/v1/users/signup", "", map[string]string{
		"name": "Abel", "username": "abel", "pin": "12",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	db, _, r := setupTestEnv(t)
	seedUser(t, db, "Selam", "selam", models.RoleWaitress)

	w := doJSON(r, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": "selam", "pin": "1234",
	})
	requireStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, decodeAuth(t, w).Token)
}

func TestLoginWrongPin(t *testing.T) {
	db, _, r := setupTestEnv(t)
	seedUser(t, db, "Selam", "selam", models.RoleWaitress)

	w := doJSON(r, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": "selam", "pin": "9999",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	_, _, r := setupTestEnv(t)

	w := doJSON(r, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": "nobody", "pin": "1234",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestListUsersIsOwnerOnly(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, waitressToken := seedUser(t, db, "Selam", "selam", models.RoleWaitress)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)

	w := doJSON(r, http.MethodGet, "/api/v1/users", waitressToken, nil)
	requireStatus(t, w, http.StatusForbidden)

	w = doJSON(r, http.MethodGet, "/api/v1/users", ownerToken, nil)
	requireStatus(t, w, http.StatusOK)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 2, env.Results)
}

func TestOwnerUserCrud(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)

	w := doJSON(r, http.MethodPost, "/api/v1/users", ownerToken, map[string]string{
		"name": "Chef", "username": "chef", "pin": "5678", "role": models.RoleKitchen,
	})
	requireStatus(t, w, http.StatusCreated)

	var created models.User
	decodeDoc(t, w, &created)
	assert.Equal(t, models.RoleKitchen, created.Role)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", created.ID), ownerToken,
		map[string]string{"name": "Head Chef"})
	requireStatus(t, w, http.StatusOK)

	var updated models.User
	decodeDoc(t, w, &updated)
	assert.Equal(t, "Head Chef", updated.Name)
	assert.Equal(t, "chef", updated.Username, "untouched fields survive a partial update")

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", created.ID), ownerToken, nil)
	requireStatus(t, w, http.StatusNoContent)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "chef").Count(&count)
	assert.Zero(t, count)
}

func TestUpdatedPinWorksForLogin(t *testing.T) {
	db, _, r := setupTestEnv(t)
	_, ownerToken := seedUser(t, db, "Owner", "owner", models.RoleOwner)
	user, _ := seedUser(t, db, "Selam", "selam", models.RoleWaitress)

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", user.ID), ownerToken,
		map[string]string{"pin": "8888"})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(r, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": "selam", "pin": "8888",
	})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(r, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"username": "selam", "pin": "1234",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}
