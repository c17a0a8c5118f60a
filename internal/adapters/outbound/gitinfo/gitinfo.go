package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Stamper implements domain.GitInfo using go-git. Reports carry the HEAD
// commit of the analyzed tree so findings stay attributable to a revision.
type Stamper struct{}

func New() *Stamper {
	return &Stamper{}
}

func (s *Stamper) IsGitRepo(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

func (s *Stamper) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
