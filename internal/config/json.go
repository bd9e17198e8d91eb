package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level,omitempty"`
		LogFile  string `json:"log_file,omitempty"`
	} `json:"app"`

	Token struct {
		URL            string   `json:"url,omitempty"`
		RequestTimeout Duration `json:"request_timeout,omitempty"`
	} `json:"token"`

	Device struct {
		Driver   string   `json:"driver,omitempty"`
		Codecs   []string `json:"codecs,omitempty"`
		LogLevel string   `json:"log_level,omitempty"`
	} `json:"device"`

	SIP struct {
		Registrar     string   `json:"registrar,omitempty"`
		Username      string   `json:"username,omitempty"`
		Domain        string   `json:"domain,omitempty"`
		Transport     string   `json:"transport,omitempty"`
		ListenAddress string   `json:"listen_address,omitempty"`
		Expiry        Duration `json:"expiry,omitempty"`
		RTPPort       int      `json:"rtp_port,omitempty"`
	} `json:"sip"`

	Baresip struct {
		CtrlAddress string   `json:"ctrl_address,omitempty"`
		Account     string   `json:"account,omitempty"`
		RegInterval Duration `json:"reg_interval,omitempty"`
	} `json:"baresip"`

	Control struct {
		Address string  `json:"address,omitempty"`
		Rate    float64 `json:"rate,omitempty"`
		Burst   int     `json:"burst,omitempty"`
	} `json:"control"`
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
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Token: Token{
			URL:            jsonCfg.Token.URL,
			RequestTimeout: time.Duration(jsonCfg.Token.RequestTimeout),
		},
		Device: Device{
			Driver:   jsonCfg.Device.Driver,
			Codecs:   jsonCfg.Device.Codecs,
			LogLevel: jsonCfg.Device.LogLevel,
		},
		SIP: SIP{
			Registrar:     jsonCfg.SIP.Registrar,
			Username:      jsonCfg.SIP.Username,
			Domain:        jsonCfg.SIP.Domain,
			Transport:     jsonCfg.SIP.Transport,
			ListenAddress: jsonCfg.SIP.ListenAddress,
			Expiry:        time.Duration(jsonCfg.SIP.Expiry),
			RTPPort:       jsonCfg.SIP.RTPPort,
		},
		Baresip: Baresip{
			CtrlAddress: jsonCfg.Baresip.CtrlAddress,
			Account:     jsonCfg.Baresip.Account,
			RegInterval: time.Duration(jsonCfg.Baresip.RegInterval),
		},
		Control: Control{
			Address: jsonCfg.Control.Address,
			Rate:    jsonCfg.Control.Rate,
			Burst:   jsonCfg.Control.Burst,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration and accepts "10s" style strings or
// nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
