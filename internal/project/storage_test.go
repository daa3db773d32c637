package project_test

import (
	"errors"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
)

// memStorage records saves in memory
type memStorage struct {
	docs    map[string]*project.Document
	saves   map[string]int
	deleted []string
	clones  []string
	failOn  string
}

func newMemStorage() *memStorage {
	return &memStorage{
		docs:  make(map[string]*project.Document),
		saves: make(map[string]int),
	}
}

func (s *memStorage) key(item project.Item) string {
	if b, ok := item.(*project.BranchProject); ok && b.IsTemplate() {
		return b.Parent().FullName() + "#template"
	}
	return item.FullName()
}

func (s *memStorage) SaveItem(item project.Item) error {
	key := s.key(item)
	if s.failOn != "" && key == s.failOn {
		return bwerrors.NewPersistenceError(key, errors.New("disk full"))
	}
	s.docs[key] = item.Document()
	s.saves[key]++
	return nil
}

func (s *memStorage) DeleteItem(item project.Item) error {
	key := s.key(item)
	delete(s.docs, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *memStorage) CloneTemplate(c *project.MultiBranchProject, branchName string) error {
	s.clones = append(s.clones, c.FullName()+"/"+branchName)
	return nil
}

func (s *memStorage) resetCounts() {
	s.saves = make(map[string]int)
}
