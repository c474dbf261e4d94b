// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text
// files. Each file is one secret: the filename is the key and the trimmed
// contents are the value.
//
// Recognized keys: ncbi-api-key, ncbi-email.
package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

// Secret file names.
const (
	NCBIAPIKey = "ncbi-api-key"
	NCBIEmail  = "ncbi-email"
)

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error; Load returns an empty map. Unreadable files are logged and
// skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "reading secrets directory %s", dir)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logrus.WithError(err).WithField("secret", name).Warn("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}

// Apply fills EUtilsConfig credentials that are still empty from s.
// Values already set by flags, config file, or environment win.
func Apply(cfg *types.EUtilsConfig, s map[string]string) {
	if cfg.APIKey == "" {
		cfg.APIKey = s[NCBIAPIKey]
	}
	if cfg.Email == "" {
		cfg.Email = s[NCBIEmail]
	}
}
