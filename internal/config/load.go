package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	fetchTimeout = 5 * time.Second
	maxDocBytes  = 1 << 20
)

// Load reads the document at source, a file path or an http(s) URL, and
// merges it over Default group by group: a group missing from the document
// keeps all defaults, a present group overrides only the fields it names.
//
// On read or parse failure Load returns Default() with the error. On
// validation failure it returns the corrected Config with the error. An
// empty source returns Default() and no error.
func Load(ctx context.Context, source string) (Config, error) {
	if source == "" {
		return Default(), nil
	}
	data, err := fetch(ctx, source)
	if err != nil {
		return Default(), fmt.Errorf("loading config %q: %w", source, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %q: %w", source, err)
	}
	return cfg, nil
}

// Parse decodes a document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func fetch(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocBytes))
}
