// ABOUTME: Tests for login, register, logout, and whoami
// ABOUTME: Uses httptest backends and a temp config dir for the session

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MadhumithraA1426/seed-store-cli/internal/client"
	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
)

func testSession(t *testing.T) *session.Manager {
	t.Helper()
	return session.NewManager(session.NewStore(t.TempDir()))
}

func TestRunLogin_InstallsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("expected /auth/login, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(client.AuthResponse{
			User:  &session.User{Name: "Asha", Email: "asha@example.com"},
			Token: "tok1",
		})
	}))
	defer server.Close()

	sess := testSession(t)
	c := client.New(server.URL, sess.Token)

	var out bytes.Buffer
	code := runLogin(context.Background(), &out, c, sess, "asha@example.com", "secret")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "Logged in as Asha") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if sess.Current() == nil || sess.Current().Name != "Asha" {
		t.Error("expected session to be installed")
	}
	if sess.Token() != "tok1" {
		t.Errorf("expected token tok1, got %q", sess.Token())
	}
}

func TestRunLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	sess := testSession(t)
	c := client.New(server.URL, sess.Token)

	var out bytes.Buffer
	code := runLogin(context.Background(), &out, c, sess, "a@b.c", "wrong")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Invalid credentials") {
		t.Errorf("expected server message, got: %s", out.String())
	}
	if sess.Current() != nil {
		t.Error("session must stay empty after a failed login")
	}
}

func TestRunLogin_TokenOnlyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-only"}`))
	}))
	defer server.Close()

	sess := testSession(t)
	c := client.New(server.URL, sess.Token)

	var out bytes.Buffer
	code := runLogin(context.Background(), &out, c, sess, "a@b.c", "secret")
	if code != 2 {
		t.Fatalf("expected exit 2, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "invalid response from backend") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if sess.Current() != nil {
		t.Error("session must stay empty when the backend sends no user")
	}
}

func TestRunRegister_TokenOnlyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	sess := testSession(t)
	c := client.New(server.URL, sess.Token)

	var out bytes.Buffer
	code := runRegister(context.Background(), &out, c, sess, client.RegisterRequest{
		Name: "Asha", Email: "a@b.c", Password: "secret",
	})
	if code != 2 {
		t.Fatalf("expected exit 2, got %d: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "invalid response from backend") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if sess.Current() != nil {
		t.Error("session must stay empty when the backend sends no user")
	}
}

func TestRunLogin_MissingFields(t *testing.T) {
	sess := testSession(t)
	c := client.New("http://localhost:1", sess.Token)

	var out bytes.Buffer
	if code := runLogin(context.Background(), &out, c, sess, "", ""); code != 1 {
		t.Errorf("expected exit 1 for missing fields, got %d", code)
	}
}

func TestRunRegister_InstallsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("expected /auth/register, got %s", r.URL.Path)
		}
		var req client.RegisterRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.SoilType != "loamy" {
			t.Errorf("expected soilType loamy, got %s", req.SoilType)
		}
		json.NewEncoder(w).Encode(client.AuthResponse{
			User:  &session.User{Name: req.Name, SoilType: req.SoilType},
			Token: "tok1",
		})
	}))
	defer server.Close()

	sess := testSession(t)
	c := client.New(server.URL, sess.Token)

	var out bytes.Buffer
	code := runRegister(context.Background(), &out, c, sess, client.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret", SoilType: "loamy",
	})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if sess.Current() == nil || sess.Current().SoilType != "loamy" {
		t.Error("expected profile with preferences to be installed")
	}
}

func TestRunLogoutClearsSession(t *testing.T) {
	sess := testSession(t)
	if err := sess.Login(session.Session{User: &session.User{Name: "A"}, Token: "tok1"}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := runLogout(&out, sess); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if sess.Current() != nil {
		t.Error("expected no current user after logout")
	}
	if sess.Token() != "" {
		t.Error("expected token to be cleared")
	}
}

func TestRunLogout_WhenLoggedOut(t *testing.T) {
	var out bytes.Buffer
	if code := runLogout(&out, testSession(t)); code != 0 {
		t.Errorf("logging out while logged out should succeed, got %d", code)
	}
}

func TestRunWhoami(t *testing.T) {
	sess := testSession(t)

	var out bytes.Buffer
	if code := runWhoami(&out, sess); code != 1 {
		t.Errorf("expected exit 1 with no session, got %d", code)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Errorf("unexpected output: %s", out.String())
	}

	sess.Login(session.Session{User: &session.User{Name: "Asha", Email: "a@b.c", IsAdmin: true}, Token: "t"})
	out.Reset()
	if code := runWhoami(&out, sess); code != 0 {
		t.Errorf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Asha") || !strings.Contains(out.String(), "admin") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
