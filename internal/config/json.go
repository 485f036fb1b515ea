package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Bridge struct {
		URL     string   `json:"url"`
		Timeout Duration `json:"timeout"`
	} `json:"bridge,omitempty"`

	RateLimit struct {
		MaxRequests   int      `json:"max_requests"`
		Window        Duration `json:"window"`
		SweepInterval Duration `json:"sweep_interval"`
		IdleTTL       Duration `json:"idle_ttl"`
	} `json:"rate_limit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Bridge: Bridge{
			URL:     jsonCfg.Bridge.URL,
			Timeout: time.Duration(jsonCfg.Bridge.Timeout),
		},
		RateLimit: RateLimit{
			MaxRequests:   jsonCfg.RateLimit.MaxRequests,
			Window:        time.Duration(jsonCfg.RateLimit.Window),
			SweepInterval: time.Duration(jsonCfg.RateLimit.SweepInterval),
			IdleTTL:       time.Duration(jsonCfg.RateLimit.IdleTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
