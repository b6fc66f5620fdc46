package config

// DefaultQAModel is the hosted extractive QA model used out of the box.
const DefaultQAModel = "deepset/roberta-base-squad2"

// DefaultSummaryModels are the summarization models tried in order.
var DefaultSummaryModels = []string{
	"facebook/bart-large-cnn",
	"sshleifer/distilbart-cnn-12-6",
}

// DefaultExcludes are glob patterns excluded from notes import by default.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"vendor/**",
	"*.min.js",
	"*.lock",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderHuggingFace,
		QAModel:           DefaultQAModel,
		SummaryModels:     DefaultSummaryModels,
		EmbeddingProvider: ProviderHuggingFace,
		EmbeddingModel:    "sentence-transformers/all-MiniLM-L6-v2",
		Port:              8711,
		DataDir:           ".studykit",
		Include:           []string{"**/*.md", "**/*.txt"},
		Exclude:           DefaultExcludes,
		RequestsPerMinute: 30,
	}
}
