package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != DefaultAPIBaseURL {
		t.Fatalf("expected default %s, got %q", KeyAPIBaseURL, got)
	}
	if got := APITimeout(); got != DefaultAPITimeout {
		t.Fatalf("expected default timeout %s, got %s", DefaultAPITimeout, got)
	}
	if got := GetInt(KeyDashboardEntries); got != DefaultEntries {
		t.Fatalf("expected default entries %d, got %d", DefaultEntries, got)
	}
	if got := GetString(KeySessionPath); got != filepath.Join(tmp, ".helpdesk", "session.db") {
		t.Fatalf("unexpected default session path %q", got)
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Fatalf("expected default %s to be rich, got %q", KeyOutputFormat, got)
	}
	if GetBool(KeyDebug) {
		t.Fatalf("expected debug to default to false")
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".helpdesk"))
	projectCfg := filepath.Join(projectDir, ".helpdesk", "config.yaml")
	writeFile(t, projectCfg, `
api:
  base-url: http://project.local:8000
dashboard:
  view: agent
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
api:
  base-url: http://user.local:8000
  timeout: 3s
dashboard:
  view: user
  entries: 10
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
		WithHomeDir(tmp),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != "http://project.local:8000" {
		t.Fatalf("expected project config to win for %s, got %q", KeyAPIBaseURL, got)
	}
	if got := GetString(KeyDashboardView); got != "agent" {
		t.Fatalf("expected project dashboard view, got %q", got)
	}
	if got := GetInt(KeyDashboardEntries); got != 10 {
		t.Fatalf("expected user entries to survive merge, got %d", got)
	}
	if got := APITimeout(); got != 3*time.Second {
		t.Fatalf("expected user timeout, got %s", got)
	}
}

func TestDotEnvSitsBetweenFilesAndEnvironment(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".helpdesk", "config.yaml"), `
api:
  base-url: http://file.local:8000
theme: nord
`)
	writeFile(t, filepath.Join(tmp, ".env"), `
HD_API_BASE_URL=http://dotenv.local:8000
HD_THEME=dracula
UNRELATED=1
`)
	t.Setenv("HD_THEME", "solarized")

	if err := Initialize(WithWorkingDir(tmp), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyAPIBaseURL); got != "http://dotenv.local:8000" {
		t.Fatalf("expected .env to override config file, got %q", got)
	}
	if got := GetString(KeyTheme); got != "solarized" {
		t.Fatalf("expected real environment to beat .env, got %q", got)
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	projectCfg := filepath.Join(projectDir, ".helpdesk", "config.yaml")
	writeFile(t, projectCfg, `
api:
  base-url: http://project.local:8000
session:
  path: /project/session.db
`)

	t.Setenv("HD_SESSION_PATH", "/env/session.db")
	t.Setenv("HD_DEBUG", "true")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
		WithHomeDir(tmp),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeySessionPath); got != "/env/session.db" {
		t.Fatalf("expected env override for %s, got %q", KeySessionPath, got)
	}
	if !GetBool(KeyDebug) {
		t.Fatalf("expected HD_DEBUG to enable debug")
	}

	overrides := map[string]any{
		KeySessionPath: "/flag/session.db",
		KeyAPIBaseURL:  "http://flag.local:9000",
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if got := GetString(KeySessionPath); got != "/flag/session.db" {
		t.Fatalf("expected CLI override for %s, got %q", KeySessionPath, got)
	}
	if got := GetString(KeyAPIBaseURL); got != "http://flag.local:9000" {
		t.Fatalf("expected CLI override for %s, got %q", KeyAPIBaseURL, got)
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey(KeyAPIBaseURL); got != "HD_API_BASE_URL" {
		t.Fatalf("EnvKey(%s) = %q", KeyAPIBaseURL, got)
	}
}

func TestAPITimeoutFallsBackForNonPositive(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithHomeDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := Set(KeyAPITimeout, "0s"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := APITimeout(); got != DefaultAPITimeout {
		t.Fatalf("expected fallback timeout, got %s", got)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "home", ".helpdesk", "config.yaml")
	setUserConfigPathOverride(userCfg)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if string(data) == "" {
		t.Fatalf("expected theme to be written")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
