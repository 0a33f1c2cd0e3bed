package module

import (
	"time"

	"yamlgate/internal/adapters/vcs/github"
	"yamlgate/internal/core/gate"
	"yamlgate/internal/platform/config"
	"yamlgate/internal/services/gatekeeper/domain"
)

// Options controls gatekeeper behavior, values are read from GATE_ env
type Options struct {
	Extensions      []string
	MaxFileBytes    int64
	DeclineOnReject bool

	// HookToken guards the hook endpoints when set
	HookToken string

	GitHub github.Options

	// Host overrides replace the GitHub client, mostly for tests
	Source   domain.ChangeSource
	Fetcher  gate.Fetcher
	Decliner domain.Decliner
}

// FromConfig reads options using the GATE_ prefix
func FromConfig(cfg config.Conf) Options {
	g := cfg.Prefix("GATE_")
	return Options{
		Extensions:      g.MayCSV("EXTENSIONS", []string{"yaml", "yml"}),
		MaxFileBytes:    int64(g.MayInt("MAX_FILE_BYTES", 8<<20)),
		DeclineOnReject: g.MayBool("DECLINE_ON_REJECT", true),
		HookToken:       g.MayString("HOOK_TOKEN", ""),
		GitHub: github.Options{
			BaseURL:    g.MayString("GH_BASE_URL", ""),
			UserAgent:  g.MayString("GH_UA", "yamlgate"),
			Timeout:    g.MayDuration("GH_TIMEOUT", 10*time.Second),
			TokensCSV:  g.MayString("GH_TOKENS", ""),
			MaxRetries: g.MayInt("GH_MAX_RETRIES", 3),
			RetryBase:  g.MayDuration("GH_RETRY_BASE", 250*time.Millisecond),
		},
	}
}
