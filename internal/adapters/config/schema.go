package config

// File is the YAML document shape of cruncher.yaml.
type File struct {
	// Roots are the ordered resource search roots, relative to the config
	// file's directory unless absolute.
	Roots []string `yaml:"roots"`

	Security SecurityDTO `yaml:"security"`
	Cache    CacheDTO    `yaml:"cache"`
	Artifact ArtifactDTO `yaml:"artifacts"`
}

// SecurityDTO configures the remote fetch policy.
type SecurityDTO struct {
	AllowRemote bool              `yaml:"allow_remote"`
	Whitelist   map[string]string `yaml:"whitelist"`
	MaxBytes    int64             `yaml:"max_bytes"`
	TimeoutMs   int               `yaml:"timeout_ms"`
}

// CacheDTO configures the in-memory bundle cache.
type CacheDTO struct {
	MaxAgeMinutes int    `yaml:"max_age_minutes"`
	Priority      string `yaml:"priority"`
}

// ArtifactDTO configures the on-disk artifact store.
type ArtifactDTO struct {
	Dir           string `yaml:"dir"`
	RetentionDays int    `yaml:"retention_days"`
}
