package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version        string `json:"version"`
		CredentialDays uint64 `json:"credential_days"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCURL      string `json:"rpc_url"`
		ID          uint64 `json:"id"`
		Name        string `json:"name"`
		AddressBook string `json:"address_book"`
	} `json:"chain,omitempty"`

	Wallet struct {
		PrivateKey string `json:"private_key"`
	} `json:"wallet,omitempty"`

	Gateway struct {
		Mode           string   `json:"mode"`
		RelayerURL     string   `json:"relayer_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"gateway,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
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
			Version:        jsonCfg.App.Version,
			CredentialDays: jsonCfg.App.CredentialDays,
		},
		Chain: Chain{
			RPCURL:      jsonCfg.Chain.RPCURL,
			ID:          jsonCfg.Chain.ID,
			Name:        jsonCfg.Chain.Name,
			AddressBook: jsonCfg.Chain.AddressBook,
		},
		Wallet: Wallet{
			PrivateKey: jsonCfg.Wallet.PrivateKey,
		},
		Gateway: Gateway{
			Mode:           jsonCfg.Gateway.Mode,
			RelayerURL:     jsonCfg.Gateway.RelayerURL,
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
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
