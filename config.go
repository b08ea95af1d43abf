package srcdoc

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Defaults used by NewConfig.
const (
	DefaultRoot        = "./"
	DefaultDocSuffix   = "_doc.txt"
	DefaultEndpoint    = "https://api.openai.com/v1/chat/completions"
	DefaultModel       = "gpt-4o"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTemperature = 0.7
)

// Config holds the settings for a documentation run. Every field can be
// overridden independently, e.g. to point the provider at a fake endpoint.
type Config struct {
	Root             string   `json:"root" yaml:"root"`
	Extensions       []string `json:"extensions" yaml:"extensions"`
	OverviewFilename string   `json:"overview_filename" yaml:"overview_filename"`
	DocSuffix        string   `json:"doc_suffix" yaml:"doc_suffix"`

	Provider    string  `json:"provider" yaml:"provider"`
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Model       string  `json:"model" yaml:"model"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	APIKey      string  `json:"api_key" yaml:"api_key"`

	// HTML also renders the overview as an HTML page next to the markdown.
	HTML bool `json:"html" yaml:"html"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Root:             DefaultRoot,
		Extensions:       append([]string(nil), DefaultExtensions...),
		OverviewFilename: DefaultOverviewFilename,
		DocSuffix:        DefaultDocSuffix,
		Provider:         ProviderOpenAI,
		Endpoint:         DefaultEndpoint,
		Model:            DefaultModel,
		Temperature:      DefaultTemperature,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Extensions, validation.Required),
		validation.Field(&c.OverviewFilename, validation.Required),
		validation.Field(&c.DocSuffix, validation.Required),
		validation.Field(&c.Provider, validation.Required, validation.In(ProviderOpenAI, ProviderGemini)),
		validation.Field(&c.Endpoint, validation.When(c.Provider == ProviderOpenAI, validation.Required, validation.By(absoluteURL))),
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.APIKey, validation.Required),
	)
	if err != nil {
		return Errorf(EINVALID, "invalid config: %v", err)
	}
	return nil
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}
