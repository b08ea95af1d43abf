// Package yaml loads srcdoc configuration from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/srcdoc"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path into cfg. Environment variable
// references such as ${OPENAI_API_KEY} are expanded before parsing. Fields
// missing from the file keep their current values.
func LoadConfig(path string, cfg *srcdoc.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return srcdoc.Errorf(srcdoc.ENOTFOUND, "read config file %s: %v", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return srcdoc.Errorf(srcdoc.EINVALID, "parse config file %s: %v", path, err)
	}

	return nil
}
