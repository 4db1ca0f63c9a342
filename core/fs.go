package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// GitletDirName is the name of the repository metadata directory.
const GitletDirName = ".gitlet"

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// EnsureDirExists creates a directory if it doesn't exist.
func EnsureDirExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to stat directory %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic writes data to path via a temp file + rename, so that a
// reader never observes a partially written object or ref.
func WriteFileAtomic(path string, data []byte) error {
	if err := EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to finalize file %s: %w", path, err)
	}
	return nil
}

// FindGitletRoot searches the current and parent directories for a .gitlet
// directory, honoring a GITLET_REPOSITORY_PATH override the same way the
// teacher's GetVecRoot honors VEC_REPOSITORY_PATH.
func FindGitletRoot() (string, error) {
	if forcedRoot := os.Getenv("GITLET_REPOSITORY_PATH"); forcedRoot != "" {
		gitletDir := filepath.Join(forcedRoot, GitletDirName)
		if FileExists(gitletDir) {
			return forcedRoot, nil
		}
		return "", fmt.Errorf("GITLET_REPOSITORY_PATH is set to '%s' but no repository found there", forcedRoot)
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	for {
		gitletDir := filepath.Join(currentDir, GitletDirName)
		if FileExists(gitletDir) {
			return currentDir, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", NewUserError("Not in an initialized Gitlet directory.")
		}
		currentDir = parentDir
	}
}
