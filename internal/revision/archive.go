// Package revision keeps a per-contract git archive of saved document
// states, so any earlier state can be inspected or restored by hash.
package revision

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"pactum/api/internal/contract"
)

const contentFile = "contract.json"

// CommitInfo is a single entry in a contract's history.
type CommitInfo struct {
	Hash      string
	Message   string
	Author    string
	CreatedAt time.Time
}

// Archive manages one bare-bones git repository per contract, all commits on
// a single main branch.
type Archive struct {
	baseDir string
	lockMu  sync.Mutex
	locks   map[string]*sync.Mutex
}

func New(baseDir string) *Archive {
	return &Archive{
		baseDir: baseDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Ensure creates the archive for a contract if it does not exist yet,
// committing the given document as the baseline.
func (a *Archive) Ensure(contractID string, doc contract.Document, author string) error {
	lock := a.contractLock(contractID)
	lock.Lock()
	defer lock.Unlock()

	path := a.repoPath(contractID)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat repo path: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create repo dir: %w", err)
	}

	repo, err := git.PlainInit(path, false)
	if err != nil {
		return fmt.Errorf("init repo: %w", err)
	}

	hash, err := writeAndCommit(repo, doc, author, "Import contract baseline")
	if err != nil {
		return err
	}
	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), hash)); err != nil {
		return fmt.Errorf("set main branch ref: %w", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))); err != nil {
		return fmt.Errorf("set HEAD to main: %w", err)
	}
	return nil
}

// Commit records a new document state. An unchanged document is a no-op and
// returns the current head.
func (a *Archive) Commit(contractID string, doc contract.Document, author, message string) (CommitInfo, error) {
	lock := a.contractLock(contractID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(a.repoPath(contractID))
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open repo: %w", err)
	}

	headRef, err := repo.Reference(plumbing.NewBranchReferenceName("main"), true)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("resolve main: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("load head commit: %w", err)
	}

	current, err := readDocumentFromCommit(headCommit)
	if err == nil && sameDocument(current, doc) {
		return toCommitInfo(headCommit), nil
	}

	hash, err := writeAndCommit(repo, doc, author, message)
	if err != nil {
		return CommitInfo{}, err
	}
	commitObj, err := repo.CommitObject(hash)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read commit object: %w", err)
	}
	return toCommitInfo(commitObj), nil
}

// Head returns the latest committed document and its commit.
func (a *Archive) Head(contractID string) (contract.Document, CommitInfo, error) {
	lock := a.contractLock(contractID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(a.repoPath(contractID))
	if err != nil {
		return contract.Document{}, CommitInfo{}, fmt.Errorf("open repo: %w", err)
	}
	ref, err := repo.Reference(plumbing.NewBranchReferenceName("main"), true)
	if err != nil {
		return contract.Document{}, CommitInfo{}, fmt.Errorf("resolve main: %w", err)
	}
	commitObj, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return contract.Document{}, CommitInfo{}, fmt.Errorf("load commit object: %w", err)
	}
	doc, err := readDocumentFromCommit(commitObj)
	if err != nil {
		return contract.Document{}, CommitInfo{}, err
	}
	return doc, toCommitInfo(commitObj), nil
}

// GetByHash returns the document state at a specific commit. Abbreviated
// hashes are resolved.
func (a *Archive) GetByHash(contractID, hash string) (contract.Document, error) {
	lock := a.contractLock(contractID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(a.repoPath(contractID))
	if err != nil {
		return contract.Document{}, fmt.Errorf("open repo: %w", err)
	}
	resolvedHash, err := resolveHash(repo, hash)
	if err != nil {
		return contract.Document{}, err
	}
	commitObj, err := repo.CommitObject(resolvedHash)
	if err != nil {
		return contract.Document{}, fmt.Errorf("read commit %s: %w", hash, err)
	}
	return readDocumentFromCommit(commitObj)
}

// History lists commits from newest to oldest, up to limit (0 = all).
func (a *Archive) History(contractID string, limit int) ([]CommitInfo, error) {
	lock := a.contractLock(contractID)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(a.repoPath(contractID))
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	ref, err := repo.Reference(plumbing.NewBranchReferenceName("main"), true)
	if err != nil {
		return nil, fmt.Errorf("resolve main: %w", err)
	}
	iter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	items := make([]CommitInfo, 0, limit)
	count := 0
	err = iter.ForEach(func(commitObj *object.Commit) error {
		items = append(items, toCommitInfo(commitObj))
		count++
		if limit > 0 && count >= limit {
			return io.EOF
		}
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("iterate log: %w", err)
	}
	return items, nil
}

func (a *Archive) repoPath(contractID string) string {
	return filepath.Join(a.baseDir, contractID)
}

func (a *Archive) contractLock(contractID string) *sync.Mutex {
	a.lockMu.Lock()
	defer a.lockMu.Unlock()
	lock, ok := a.locks[contractID]
	if ok {
		return lock
	}
	lock = &sync.Mutex{}
	a.locks[contractID] = lock
	return lock
}

func writeAndCommit(repo *git.Repository, doc contract.Document, author, message string) (plumbing.Hash, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("open worktree: %w", err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("marshal contract: %w", err)
	}

	repoRoot := worktree.Filesystem.Root()
	if err := os.WriteFile(filepath.Join(repoRoot, contentFile), append(payload, '\n'), 0o644); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("write %s: %w", contentFile, err)
	}
	if _, err := worktree.Add(contentFile); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("git add contract: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: fmt.Sprintf("%s@local.pactum.dev", sanitizeEmail(author)),
			When:  time.Now(),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("commit contract: %w", err)
	}
	return hash, nil
}

func readDocumentFromCommit(commitObj *object.Commit) (contract.Document, error) {
	file, err := commitObj.File(contentFile)
	if err != nil {
		return contract.Document{}, fmt.Errorf("load %s from commit: %w", contentFile, err)
	}
	reader, err := file.Reader()
	if err != nil {
		return contract.Document{}, fmt.Errorf("open content reader: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return contract.Document{}, fmt.Errorf("read content bytes: %w", err)
	}

	var doc contract.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return contract.Document{}, fmt.Errorf("decode commit content: %w", err)
	}
	return doc, nil
}

func sameDocument(a, b contract.Document) bool {
	left, err := json.Marshal(a)
	if err != nil {
		return false
	}
	right, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}

func toCommitInfo(commitObj *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:      commitObj.Hash.String()[:7],
		Message:   commitObj.Message,
		Author:    commitObj.Author.Name,
		CreatedAt: commitObj.Author.When,
	}
}

func sanitizeEmail(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
			continue
		}
		if r == ' ' || r == '-' || r == '_' {
			out = append(out, '.')
		}
	}
	if len(out) == 0 {
		return "user"
	}
	return string(out)
}

func resolveHash(repo *git.Repository, hash string) (plumbing.Hash, error) {
	if len(hash) == 40 {
		return plumbing.NewHash(hash), nil
	}
	resolved, err := repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve hash %s: %w", hash, err)
	}
	return *resolved, nil
}
