package config

import "os"

const DefaultVaultPath = "~/Documents/vault"

// VaultPath returns the vault path from the ATTACHSWEEP_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("ATTACHSWEEP_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}
