package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/germanamz/blendy/pkg/scene"
	"github.com/germanamz/blendy/pkg/server"
	"github.com/joho/godotenv"
)

// defaultHostURL is used when no config file exists, matching the port the
// Blender addon listens on out of the box.
const defaultHostURL = "ws://localhost:7520/mcp"

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath picks the config file to use: explicit flag →
// .blendy/config.yaml → blendy.yaml.
func resolveConfigPath(explicit, blendyDirPath string) string {
	if explicit != "" {
		return explicit
	}

	blendyConfig := filepath.Join(blendyDirPath, "config.yaml")
	if _, err := os.Stat(blendyConfig); err == nil {
		return blendyConfig
	}

	return "blendy.yaml"
}

// loadServerConfig resolves and loads the config, falling back to defaults
// when no config file exists at the resolved path and none was requested
// explicitly.
func loadServerConfig(explicit, blendyDirPath string) (server.Config, error) {
	path := resolveConfigPath(explicit, blendyDirPath)

	cfg, err := server.LoadConfig(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			cfg = server.Config{Host: server.HostConfig{URL: defaultHostURL}}
		} else {
			return server.Config{}, err
		}
	}

	cfg.BlendyDir = blendyDirPath

	return cfg, nil
}

// parseLocation parses "x,y,z" into a scene.Location. An empty string is the
// origin.
func parseLocation(s string) (scene.Location, error) {
	if s == "" {
		return scene.Location{}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return scene.Location{}, fmt.Errorf("location must be x,y,z (got %q)", s)
	}

	var loc scene.Location
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return scene.Location{}, fmt.Errorf("location coordinate %q: %w", strings.TrimSpace(part), err)
		}
		loc[i] = v
	}

	return loc, nil
}

// truncate returns s shortened to at most n runes, with "..." appended if
// truncated. Newlines are replaced with spaces for single-line display.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
