package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/blendy/pkg/blendydir"
	"github.com/germanamz/blendy/pkg/server"
	"gopkg.in/yaml.v3"
)

// wizardValues collects the answers of the init wizard.
type wizardValues struct {
	HostURL     string
	DialTimeout string
	CallTimeout string
	History     bool
}

func defaultWizardValues() wizardValues {
	return wizardValues{
		HostURL:     defaultHostURL,
		DialTimeout: "5s",
		CallTimeout: "10s",
		History:     true,
	}
}

// runInit runs the wizard and bootstraps the .blendy directory.
func runInit(dirPath string) error {
	v := defaultWizardValues()

	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Blender host URL").Value(&v.HostURL).Validate(validateHostURL),
		huh.NewInput().Title("Dial timeout (e.g. 5s)").Value(&v.DialTimeout).Validate(validateDuration),
		huh.NewInput().Title("Call timeout (e.g. 10s)").Value(&v.CallTimeout).Validate(validateDuration),
		huh.NewConfirm().Title("Record creation history in .blendy/local?").Value(&v.History),
	)).Run(); err != nil {
		return err
	}

	configYAML, err := buildConfigYAML(v)
	if err != nil {
		return err
	}

	d := blendydir.New(dirPath)

	if err := blendydir.Bootstrap(d, configYAML); err != nil {
		return err
	}

	fmt.Printf("Initialized %s\n", d.Root())

	return nil
}

// buildConfigYAML turns wizard answers into a validated config file.
func buildConfigYAML(v wizardValues) ([]byte, error) {
	cfg := server.Config{
		Name:    server.DefaultName,
		Version: server.DefaultVersion,
		Host: server.HostConfig{
			URL:         v.HostURL,
			DialTimeout: v.DialTimeout,
			CallTimeout: v.CallTimeout,
		},
		History: server.HistoryConfig{Enabled: v.History},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return yaml.Marshal(cfg)
}

func validateHostURL(s string) error {
	if !strings.HasPrefix(s, "ws://") && !strings.HasPrefix(s, "wss://") {
		return fmt.Errorf("must start with ws:// or wss://")
	}
	return nil
}

func validateDuration(s string) error {
	if s == "" {
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("not a duration (use e.g. 5s, 500ms)")
	}
	if d <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
