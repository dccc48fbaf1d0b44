package config

import (
	"encoding/json"
	"os"

	"github.com/mshakil/ictportal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath  string `json:"database_path"`
	StartFragment string `json:"start_fragment"`
	Debug         bool   `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags; when neither is given
// no JSON is loaded. Read or unmarshal errors panic, matching the rest of
// the config bootstrap (there is no interactive state to fall back to yet).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.StartFragment != "" {
		cfg.StartFragment = jc.StartFragment
	}
	if jc.Debug {
		cfg.Debug = true
	}
}
