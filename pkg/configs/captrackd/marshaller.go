package captrackd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type CaptrackConfig struct {
	Port     int32          `yaml:"port"`
	LogLevel string         `yaml:"loglevel,omitempty"`
	Cluster  *ClusterConfig `yaml:"cluster"`
}

type ClusterConfig struct {
	DBURI string      `yaml:"dburi"`
	Pool  *PoolConfig `yaml:"pool,omitempty"`
}

// PoolConfig bounds the database connection pool.
type PoolConfig struct {
	Min int32 `yaml:"min,omitempty"`
	Max int32 `yaml:"max,omitempty"`
}

func LoadCaptrackConfig(filepath string) (*CaptrackConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*CaptrackConfig, error) {
	var out CaptrackConfig
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}

	if out.Cluster == nil || out.Cluster.DBURI == "" {
		return nil, errors.New("cluster.dburi is required")
	}

	if out.Port == 0 {
		out.Port = 8080
	}
	if out.Cluster.Pool == nil {
		out.Cluster.Pool = &PoolConfig{}
	}
	if out.Cluster.Pool.Min == 0 {
		out.Cluster.Pool.Min = 1
	}
	if out.Cluster.Pool.Max == 0 {
		out.Cluster.Pool.Max = 10
	}

	return &out, nil
}
