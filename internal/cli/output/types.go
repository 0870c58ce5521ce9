package output

// LanguageInfo describes one loaded language directory for JSON output.
type LanguageInfo struct {
	Directory string `json:"directory"`
	Present   bool   `json:"present"`
	Files     int    `json:"files"`
	Records   int    `json:"records"`
}

// LoadSummary aggregates a load run.
type LoadSummary struct {
	Languages int `json:"languages"`
	Files     int `json:"files"`
	Records   int `json:"records"`
}

// LoadOutput is the JSON payload of the load command.
type LoadOutput struct {
	DataDir   string         `json:"data_dir"`
	Languages []LanguageInfo `json:"languages"`
	Summary   LoadSummary    `json:"summary"`
}

// AuditOutput is the JSON payload of the audit command.
type AuditOutput struct {
	AllKeys     []string    `json:"all_keys"`
	MissingKeys []string    `json:"missing_keys"`
	Load        LoadSummary `json:"load"`
}

// RunOutput is the JSON payload of the run command.
type RunOutput struct {
	Load  LoadOutput  `json:"load"`
	Audit AuditOutput `json:"audit"`
}

// FetchOutput is the JSON payload of the fetch command.
type FetchOutput struct {
	Dataset string `json:"dataset"`
	DataDir string `json:"data_dir"`
}
