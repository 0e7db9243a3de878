package graph

import (
	"path/filepath"
)

// Project represents an inspected code project with its namespace tree
type Project struct {
	Name          string
	Type          string
	RootPath      string
	RepositoryURL string
	Files         []string   // Inspected files, relative to RootPath when set
	Namespace     *Namespace // Root namespace
}

// Init adjusts file paths to be relative to project root
func (p *Project) Init() {
	if p.RootPath == "" {
		return
	}
	for i, file := range p.Files {
		if relPath, err := filepath.Rel(p.RootPath, file); err == nil {
			p.Files[i] = relPath
		}
	}
	if p.Namespace == nil {
		return
	}
	p.Namespace.Walk(func(ns *Namespace) bool {
		for _, class := range ns.Classes.Items() {
			p.adjustLocation(class.Location)
		}
		for _, iface := range ns.Interfaces.Items() {
			p.adjustLocation(iface.Location)
		}
		for _, trait := range ns.Traits.Items() {
			p.adjustLocation(trait.Location)
		}
		for _, function := range ns.Functions.Items() {
			p.adjustLocation(function.Location)
		}
		for _, constant := range ns.Constants.Items() {
			p.adjustLocation(constant.Location)
		}
		return true
	})
}

func (p *Project) adjustLocation(location *Location) {
	if location == nil || location.Path == "" || !filepath.IsAbs(location.Path) {
		return
	}
	if relPath, err := filepath.Rel(p.RootPath, location.Path); err == nil {
		location.Path = relPath
	}
}
