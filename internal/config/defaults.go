package config

import "github.com/oscalforge/cprtcat/internal/cprt"

// DefaultConfig returns configuration with sensible defaults. These match
// how the NIST CPRT datasets are published; other publishers override them
// in config.yaml.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        cprt.DefaultBaseURL,
			TimeoutSeconds: 60,
		},
		Publisher: PublisherConfig{
			Name:      "National Institute of Standards and Technology",
			ShortName: "NIST",
			Email:     "capordino@nist.gov",
			AddrLines: []string{
				"National Institute of Standards and Technology",
				"Attn: Applied Cybersecurity Division",
				"Information Technology Laboratory",
				"100 Bureau Drive (Mail Stop 2000)",
			},
			City:       "Gaithersburg",
			State:      "MD",
			PostalCode: "20899-2000",
		},
		Catalog: CatalogConfig{
			GeneratedBy: "Cybersecurity And Privacy Open Reference Datasets In OSCAL (CAPORDINO)",
		},
	}
}

// Merge merges loaded config with defaults. Values from loaded config take
// precedence over defaults.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}
	result.API = mergeAPIConfig(loaded.API, defaults.API)
	result.Cache = loaded.Cache
	result.Publisher = mergePublisherConfig(loaded.Publisher, defaults.Publisher)
	result.Catalog = mergeCatalogConfig(loaded.Catalog, defaults.Catalog)
	return result
}

func mergeAPIConfig(loaded, defaults APIConfig) APIConfig {
	result := APIConfig{}

	if loaded.BaseURL != "" {
		result.BaseURL = loaded.BaseURL
	} else {
		result.BaseURL = defaults.BaseURL
	}

	if loaded.TimeoutSeconds != 0 {
		result.TimeoutSeconds = loaded.TimeoutSeconds
	} else {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return result
}

func mergePublisherConfig(loaded, defaults PublisherConfig) PublisherConfig {
	// The publisher block is all-or-nothing: a partly overridden publisher
	// would mix two organizations' identities.
	if loaded.Name != "" {
		return loaded
	}
	return defaults
}

func mergeCatalogConfig(loaded, defaults CatalogConfig) CatalogConfig {
	result := CatalogConfig{}

	if loaded.GeneratedBy != "" {
		result.GeneratedBy = loaded.GeneratedBy
	} else {
		result.GeneratedBy = defaults.GeneratedBy
	}

	return result
}
