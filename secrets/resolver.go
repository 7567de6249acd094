package secrets

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Source identifies where a secret value came from.
type Source int

const (
	SourceNone Source = iota
	SourceMountedFile
	SourceEnvFile
	SourceEnv
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceMountedFile:
		return "mounted secret file"
	case SourceEnvFile:
		return "file referenced by environment"
	case SourceEnv:
		return "environment variable"
	case SourceDefault:
		return "built-in default"
	default:
		return "unresolved"
	}
}

// Resolver looks up secrets by logical name (e.g. "db_password") across an
// ordered chain of sources: a file mounted under MountDir, a file named by the
// <NAME>_FILE environment variable, the <NAME> environment variable itself,
// and finally a per-secret default. Values found in Placeholders count as
// unconfigured. The first source that yields a value wins.
type Resolver struct {
	MountDir     string
	Placeholders []string
	Defaults     map[string]string
}

// NewResolver builds a resolver using the SECRETS_DIR environment variable
// (default /run/secrets) and the known placeholder credentials that ship in
// example configuration files.
func NewResolver() *Resolver {
	mountDir := os.Getenv("SECRETS_DIR")
	if mountDir == "" {
		mountDir = "/run/secrets"
	}
	return &Resolver{
		MountDir: mountDir,
		Placeholders: []string{
			"your-email@gmail.com",
			"your-app-password",
		},
		Defaults: map[string]string{
			"db_password": "",
			"secret_key":  "dev-secret-key-change-in-production",
		},
	}
}

type lookup func(name string) (string, Source, bool)

// Resolve returns the secret value and the source it came from. A secret that
// no source can supply resolves to the empty string with SourceNone; the
// caller decides whether that is an error. An empty string read from a file or
// a default is a valid value.
func (r *Resolver) Resolve(name string) (string, Source) {
	chain := []lookup{r.fromMountedFile, r.fromEnvFile, r.fromEnv, r.fromDefault}
	for _, source := range chain {
		if value, src, ok := source(name); ok {
			log.Printf("secret %q resolved from %s", name, src)
			return value, src
		}
	}
	log.Printf("secret %q could not be resolved from any source", name)
	return "", SourceNone
}

// IsPlaceholder reports whether value is one of the known sentinel values that
// must be treated as "not configured" even when present.
func (r *Resolver) IsPlaceholder(value string) bool {
	for _, p := range r.Placeholders {
		if value == p {
			return true
		}
	}
	return false
}

func (r *Resolver) fromMountedFile(name string) (string, Source, bool) {
	data, err := os.ReadFile(filepath.Join(r.MountDir, name))
	if err != nil {
		return "", SourceNone, false
	}
	return strings.TrimSpace(string(data)), SourceMountedFile, true
}

func (r *Resolver) fromEnvFile(name string) (string, Source, bool) {
	path := os.Getenv(envName(name) + "_FILE")
	if path == "" {
		return "", SourceNone, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("secret %q: cannot read file %s: %v", name, path, err)
		return "", SourceNone, false
	}
	return strings.TrimSpace(string(data)), SourceEnvFile, true
}

func (r *Resolver) fromEnv(name string) (string, Source, bool) {
	value := os.Getenv(envName(name))
	if value == "" || r.IsPlaceholder(value) {
		return "", SourceNone, false
	}
	return value, SourceEnv, true
}

func (r *Resolver) fromDefault(name string) (string, Source, bool) {
	value, ok := r.Defaults[name]
	if !ok {
		return "", SourceNone, false
	}
	return value, SourceDefault, true
}

func envName(name string) string {
	return strings.ToUpper(name)
}
