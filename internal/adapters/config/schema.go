package config

// SettingsDTO represents the structure of the locksmith.yaml settings file.
type SettingsDTO struct {
	WantedVersions     []string `yaml:"wantedVersions"`
	IgnoreIncompatible *bool    `yaml:"ignoreIncompatible"`
	UseBranchLockfile  *bool    `yaml:"useBranchLockfile"`
}

// knownKeys lists the top-level keys SettingsDTO understands.
var knownKeys = map[string]struct{}{
	"wantedVersions":     {},
	"ignoreIncompatible": {},
	"useBranchLockfile":  {},
}
