package repository

// Repository represents version control repository holding a project
type Repository struct {
	Kind   string
	Root   string
	Origin string
	Info   *Project
}

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (php, git, unknown)
	Name         string // Name of the project (composer package name, git origin or directory)
	RelativePath string // Path from project root to the specified location
	Composer     *Composer
}

// Composer represents composer.json fields used for project naming and source layout
type Composer struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Type        string                    `json:"type"`
	Autoload    map[string]map[string]any `json:"autoload"`
	AutoloadDev map[string]map[string]any `json:"autoload-dev"`
}

// SourceDirs returns psr-4 and psr-0 autoload directories ordered by namespace
func (c *Composer) SourceDirs() []string {
	if c == nil {
		return nil
	}
	var result []string
	seen := map[string]bool{}
	for _, standard := range []string{"psr-4", "psr-0"} {
		mapping, ok := c.Autoload[standard]
		if !ok {
			continue
		}
		for _, namespace := range sortedKeys(mapping) {
			for _, dir := range dirs(mapping[namespace]) {
				if dir == "" || seen[dir] {
					continue
				}
				seen[dir] = true
				result = append(result, dir)
			}
		}
	}
	return result
}

func dirs(value any) []string {
	switch actual := value.(type) {
	case string:
		return []string{actual}
	case []any:
		var result []string
		for _, item := range actual {
			if text, ok := item.(string); ok {
				result = append(result, text)
			}
		}
		return result
	}
	return nil
}
