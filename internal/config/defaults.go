package config

const (
	defaultLibraryDir           = "~/books"
	defaultLogDir               = "~/.local/share/bindery/logs"
	defaultDataDir              = "~/.local/share/bindery"
	defaultCSVName              = "ebook_organization.csv"
	defaultOllamaBaseURL        = "http://localhost:11434"
	defaultOllamaModel          = "gemma3:12b"
	defaultOllamaTemperature    = 0.3
	defaultOllamaTimeoutSeconds = 30
	defaultSearchBaseURL        = "https://duckduckgo.com/html/"
	defaultSearchTimeoutSeconds = 15
	defaultSearchMaxResults     = 3
	defaultMaxPages             = 10
	defaultExcerptLimit         = 8000
	defaultUnsortedDir          = "UNSORTED"
	defaultProgressInterval     = 10
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			DataDir:    defaultDataDir,
		},
		Ollama: Ollama{
			BaseURL:        defaultOllamaBaseURL,
			Model:          defaultOllamaModel,
			Temperature:    defaultOllamaTemperature,
			TimeoutSeconds: defaultOllamaTimeoutSeconds,
		},
		Search: Search{
			Enabled:        true,
			BaseURL:        defaultSearchBaseURL,
			TimeoutSeconds: defaultSearchTimeoutSeconds,
			MaxResults:     defaultSearchMaxResults,
		},
		Classifier: Classifier{
			MaxPages:     defaultMaxPages,
			ExcerptLimit: defaultExcerptLimit,
		},
		Organizer: Organizer{
			UnsortedDir: defaultUnsortedDir,
		},
		Workflow: Workflow{
			ProgressInterval: defaultProgressInterval,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
