package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
)

const (
	TypePHP     = "php"
	TypeGit     = "git"
	TypeUnknown = "unknown"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	// Project root marker files/directories
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"composer.json", // PHP projects
			".git",          // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string, baseURL ...string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectType := d.findProjectRoot(startDir)
	info := &Project{
		Type:     TypeUnknown,
		RootPath: startDir,
	}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		info.RootPath = baseURL[0]
	} else if rootPath != "" {
		info.RootPath = rootPath
		info.Type = projectType
	} else if ok, _ := HasFileWithSuffixes(startDir, []string{".php"}, []string{"Test.php"}); ok {
		info.Type = TypePHP
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)

	switch info.Type {
	case TypePHP:
		info.Composer = d.loadComposer(ctx, filepath.Join(info.RootPath, "composer.json"))
		if info.Composer != nil && info.Composer.Name != "" {
			info.Name = info.Composer.Name
		} else {
			info.Name = filepath.Base(info.RootPath)
		}
	case TypeGit:
		info.Name = d.extractGitProjectName(ctx, info.RootPath)
	default:
		info.Name = filepath.Base(info.RootPath)
	}
	return info, nil
}

// DetectRepository identifies the repository containing the given file path
func (d *Detector) DetectRepository(ctx context.Context, filePath string) (*Repository, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	info, err := d.DetectProject(ctx, filePath)
	if err != nil {
		return nil, err
	}
	if gitRoot := d.findGitRoot(startDir); gitRoot != "" {
		return &Repository{
			Kind:   TypeGit,
			Root:   gitRoot,
			Origin: d.extractGitOrigin(ctx, gitRoot),
			Info:   info,
		}, nil
	}
	return &Repository{
		Kind: info.Type,
		Root: info.RootPath,
		Info: info,
	}, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// findGitRoot finds the root of the git repository containing the given directory
func (d *Detector) findGitRoot(startDir string) string {
	dir := startDir
	homeDir := os.Getenv("HOME")
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || homeDir == parent {
			return ""
		}
		dir = parent
	}
}

// loadComposer reads composer.json, nil when missing or malformed
func (d *Detector) loadComposer(ctx context.Context, location string) *Composer {
	data, err := d.fs.DownloadWithURL(ctx, location)
	if err != nil || len(data) == 0 {
		return nil
	}
	composer := &Composer{}
	if err = json.Unmarshal(data, composer); err != nil {
		return nil
	}
	return composer
}

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(ctx context.Context, gitRoot string) string {
	data, err := d.fs.DownloadWithURL(ctx, filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = line == `[remote "origin"]`
			continue
		}
		if !foundRemote {
			continue
		}
		if key, value, ok := strings.Cut(line, "="); ok && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// extractGitProjectName returns repository name from origin URL or directory name
func (d *Detector) extractGitProjectName(ctx context.Context, gitRoot string) string {
	origin := strings.TrimSuffix(d.extractGitOrigin(ctx, gitRoot), ".git")
	if origin == "" {
		return filepath.Base(gitRoot)
	}
	if index := strings.LastIndexAny(origin, "/:"); index != -1 {
		origin = origin[index+1:]
	}
	if origin == "" {
		return filepath.Base(gitRoot)
	}
	return origin
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "composer.json":
		return TypePHP
	case ".git":
		return TypeGit
	default:
		return TypeUnknown
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
