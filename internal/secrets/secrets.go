// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API keys from the environment, .env files, and a
// directory of plain-text files. In the directory each file is one secret:
// the filename is the key name and the trimmed contents are the value.
//
// Supported key names: openai-api-key, pwc-api-token.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Store holds secrets loaded at startup. Lookups consult, in order, the
// process environment, the .env files, and the secrets directory.
type Store struct {
	files  map[string]string
	dotenv map[string]string
	getenv func(string) string
}

// Load reads all files in dir and every existing file in envFiles.
// A missing directory or missing .env file is not an error. Unreadable
// secret files produce a warning on stderr but do not abort; a malformed
// .env file does.
func Load(dir string, envFiles ...string) (*Store, error) {
	files, err := loadDir(dir)
	if err != nil {
		return nil, err
	}

	dotenv := make(map[string]string)
	for _, path := range envFiles {
		vals, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for k, v := range vals {
			if _, seen := dotenv[k]; !seen {
				dotenv[k] = v
			}
		}
	}

	return &Store{files: files, dotenv: dotenv, getenv: os.Getenv}, nil
}

func loadDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// EnvName maps a key name to its environment variable
// ("openai-api-key" -> "OPENAI_API_KEY").
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Get returns the value of key and whether any layer defined it.
func (s *Store) Get(key string) (string, bool) {
	env := EnvName(key)
	if v := strings.TrimSpace(s.getenv(env)); v != "" {
		return v, true
	}
	if v := strings.TrimSpace(s.dotenv[env]); v != "" {
		return v, true
	}
	if v, ok := s.files[key]; ok {
		return v, true
	}
	return "", false
}

// Keys lists the key names found in the secrets directory and .env files,
// sorted, without their values.
func (s *Store) Keys() []string {
	seen := make(map[string]bool)
	for k := range s.files {
		seen[k] = true
	}
	for k := range s.dotenv {
		seen[strings.ToLower(strings.ReplaceAll(k, "_", "-"))] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
