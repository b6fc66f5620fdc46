package config

// ProviderType identifies a hosted inference provider.
type ProviderType string

const (
	ProviderHuggingFace ProviderType = "huggingface"
	ProviderOpenAI      ProviderType = "openai"
)

// Config is the top-level studykit configuration, corresponding to .studykit.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	QAModel           string       `yaml:"qa_model" koanf:"qa_model"`
	SummaryModels     []string     `yaml:"summary_models" koanf:"summary_models"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	Port              int          `yaml:"port" koanf:"port"`
	DataDir           string       `yaml:"data_dir" koanf:"data_dir"`
	Include           []string     `yaml:"include" koanf:"include"`
	Exclude           []string     `yaml:"exclude" koanf:"exclude"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	AllowAllOrigins   bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
