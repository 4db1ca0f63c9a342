package cmd

import "os"

// currentDir returns the directory init should create a repository in:
// the GITLET_REPOSITORY_PATH override if set, otherwise the working
// directory. Unlike FindGitletRoot, it does not require a repository to
// already exist there.
func currentDir() (string, error) {
	if forced := os.Getenv("GITLET_REPOSITORY_PATH"); forced != "" {
		return forced, nil
	}
	return os.Getwd()
}
