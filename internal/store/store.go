// Package store persists projects as YAML documents under a workspace root.
//
// Layout:
//
//	<root>/jobs/<name>/config.yaml                          plain and multi-branch projects
//	<root>/jobs/<name>/template/config.yaml                 multi-branch template
//	<root>/jobs/<name>/branches/<encoded branch>/config.yaml  branch projects
//
// Branch directory names are percent-encoded and decoded again on load.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
)

const (
	// ConfigFileName is the document file inside every item directory
	ConfigFileName = "config.yaml"

	jobsDirName     = "jobs"
	branchesDirName = "branches"
	templateDirName = "template"
)

// Store is file-backed project.Storage
type Store struct {
	root string
}

var _ project.Storage = (*Store)(nil)

// New creates a store rooted at root
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the workspace root
func (s *Store) Root() string {
	return s.root
}

// ItemDir returns the directory holding item's document
func (s *Store) ItemDir(item project.Item) (string, error) {
	switch item := item.(type) {
	case *project.FreeStyleProject, *project.MultiBranchProject:
		return filepath.Join(s.root, jobsDirName, project.EncodeName(item.Name())), nil
	case *project.BranchProject:
		parentDir := filepath.Join(s.root, jobsDirName, project.EncodeName(item.Parent().Name()))
		if item == item.Parent().Template() {
			return filepath.Join(parentDir, templateDirName), nil
		}
		return filepath.Join(parentDir, branchesDirName, project.EncodeName(item.Name())), nil
	default:
		return "", fmt.Errorf("cannot store item %s of type %T", item.FullName(), item)
	}
}

// SaveItem implements project.Storage. The document is written to a temporary
// file and renamed into place, so a failed save leaves the old document intact.
func (s *Store) SaveItem(item project.Item) error {
	dir, err := s.ItemDir(item)
	if err != nil {
		return err
	}
	data, err := project.MarshalDocument(item.Document())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return bwerrors.NewPersistenceError(dir, err)
	}
	return writeFileAtomic(filepath.Join(dir, ConfigFileName), data)
}

// DeleteItem implements project.Storage
func (s *Store) DeleteItem(item project.Item) error {
	dir, err := s.ItemDir(item)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return bwerrors.NewPersistenceError(dir, err)
	}
	return nil
}

// CloneTemplate implements project.Storage by copying everything stored next to
// the template into the new branch directory. Symlinks are not followed.
func (s *Store) CloneTemplate(c *project.MultiBranchProject, branchName string) error {
	t := c.Template()
	if t == nil {
		return nil
	}
	src, err := s.ItemDir(t)
	if err != nil {
		return err
	}
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	dst := filepath.Join(s.root, jobsDirName, project.EncodeName(c.Name()), branchesDirName, project.EncodeName(branchName))
	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Skip
		},
	}
	if err := copy.Copy(src, dst, opts); err != nil {
		return bwerrors.NewPersistenceError(dst, err)
	}
	return nil
}

// ReadConfigDocument returns the stored document of item as written on disk
func (s *Store) ReadConfigDocument(item project.Item) ([]byte, error) {
	dir, err := s.ItemDir(item)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bwerrors.NewPersistenceError(path, err)
	}
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+ConfigFileName+"-*")
	if err != nil {
		return bwerrors.NewPersistenceError(path, err)
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return bwerrors.NewPersistenceError(path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return bwerrors.NewPersistenceError(path, err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = os.Remove(tmpName)
		return bwerrors.NewPersistenceError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return bwerrors.NewPersistenceError(path, err)
	}
	return nil
}
