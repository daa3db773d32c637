package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
)

// Load restores every stored item into reg. Upstream references are not
// refreshed here; callers run reg.RefreshAll once loading succeeds.
func (s *Store) Load(reg *project.Registry) error {
	jobsDir := filepath.Join(s.root, jobsDirName)
	entries, err := os.ReadDir(jobsDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return bwerrors.NewPersistenceError(jobsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := s.loadItem(reg, filepath.Join(jobsDir, entry.Name()), entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadItem(reg *project.Registry, dir, rawName string) error {
	name, err := project.DecodeName(rawName)
	if err != nil {
		return err
	}
	doc, err := readDocument(dir)
	if err != nil {
		return err
	}

	switch doc.Kind {
	case project.KindFreeStyle:
		_, err := reg.LoadFreeStyleProject(name, doc)
		return err
	case project.KindMultiBranch:
		c, err := reg.LoadMultiBranchProject(name, doc)
		if err != nil {
			return err
		}
		return s.loadBranches(c, dir)
	default:
		return fmt.Errorf("%s: %s documents cannot be top-level items", dir, doc.Kind)
	}
}

func (s *Store) loadBranches(c *project.MultiBranchProject, dir string) error {
	templateDir := filepath.Join(dir, templateDirName)
	if _, err := os.Stat(filepath.Join(templateDir, ConfigFileName)); err == nil {
		doc, err := readDocument(templateDir)
		if err != nil {
			return err
		}
		if _, err := c.LoadTemplate(doc); err != nil {
			return fmt.Errorf("failed to load template of %s: %w", c.FullName(), err)
		}
	}

	branchesDir := filepath.Join(dir, branchesDirName)
	entries, err := os.ReadDir(branchesDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return bwerrors.NewPersistenceError(branchesDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		doc, err := readDocument(filepath.Join(branchesDir, entry.Name()))
		if err != nil {
			return err
		}
		if doc.Kind != project.KindBranchProject {
			return fmt.Errorf("%s: expected a %s document, found %s", filepath.Join(branchesDir, entry.Name()), project.KindBranchProject, doc.Kind)
		}
		if _, err := c.LoadBranch(entry.Name(), doc); err != nil {
			return fmt.Errorf("failed to load branch of %s: %w", c.FullName(), err)
		}
	}
	return nil
}

func readDocument(dir string) (*project.Document, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bwerrors.NewPersistenceError(path, err)
	}
	doc, err := project.UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
