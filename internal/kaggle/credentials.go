package kaggle

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credentials holds the Kaggle API username/key pair.
type Credentials struct {
	Username string `json:"username"`
	Key      string `json:"key"`
}

// LoadCredentials locates API credentials the same way the official client
// does: KAGGLE_USERNAME/KAGGLE_KEY environment variables first, then
// ~/.kaggle/kaggle.json. Returns ErrCredentials if neither is configured.
func LoadCredentials() (Credentials, error) {
	username := os.Getenv("KAGGLE_USERNAME")
	key := os.Getenv("KAGGLE_KEY")
	if username != "" && key != "" {
		return Credentials{Username: username, Key: key}, nil
	}

	path, err := credentialsFile()
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrCredentials, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: set KAGGLE_USERNAME and KAGGLE_KEY or create %s (see https://www.kaggle.com/docs/api)", ErrCredentials, path)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if creds.Username == "" || creds.Key == "" {
		return Credentials{}, fmt.Errorf("%w: %s is missing username or key", ErrCredentials, path)
	}

	return creds, nil
}
