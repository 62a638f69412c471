package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Fireworks Show Configuration

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the terminal
console = true
# Also log to a rotating file
file = false
# file_path = "~/.config/fireworks/logs/fireworks.log"
max_size = 10
max_backups = 3
max_age = 14

[launch]
# Ticks a firework stays up when a launch omits duration
default_duration = 1
# Cost of a firework when a launch omits cost
default_cost = 20.0
# Vendor billed by company shows when a launch omits vendor ("" bills UNKNOWN)
default_vendor = ""

[show]
# Capacity of a scenario show that omits capacity
default_capacity = 5
`

const scenarioTemplate = `# Fireworks scenario

# Advance the town to this tick after all launches (optional)
until = 12

[[shows]]
name = "harbor"
capacity = 4

[[shows]]
name = "pier"
capacity = 2
kind = "company"

[[launches]]
show = 0
time = 1
duration = 3
cost = 35.0

[[launches]]
show = 1
time = 2
duration = 2
cost = 60.0
vendor = "Skyburst"

[[launches]]
show = 1
time = 3
cost = 45.0
vendor = "Skyburst"
`

func createTemplateConfig(configDir, name string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return "", fmt.Errorf("writing config template: %w", err)
	}

	return path, nil
}

// WriteScenarioTemplate writes an example scenario to path.
func WriteScenarioTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("scenario %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating scenario directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(scenarioTemplate), 0644); err != nil {
		return fmt.Errorf("writing scenario template: %w", err)
	}
	return nil
}
