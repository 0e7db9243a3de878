package graph

// Config represents inspection settings
type Config struct {
	SkipTests   bool     // Skip *Test.php files and test directories
	Exclude     []string // Glob patterns of excluded paths
	Concurrency int      // Files parsed in parallel
	StrictParse bool     // Fail on files with syntax errors
}

// DefaultConfig returns default inspection config
func DefaultConfig() *Config {
	return &Config{
		SkipTests:   true,
		Exclude:     []string{"**/vendor/**"},
		Concurrency: 4,
	}
}
