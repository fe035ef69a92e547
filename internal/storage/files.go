// Package storage persists uploaded images under a public static-file root.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avelasco/gymtrack/internal/logger"
)

// ImageStore writes uploaded images below a root directory served at /images/.
// Files are segmented by resource type: machine images under machine/, user
// avatars under user/.
type ImageStore struct {
	root string
}

// NewImageStore creates the store and its resource subdirectories.
func NewImageStore(root string) (*ImageStore, error) {
	for _, sub := range []string{"machine", "user"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &ImageStore{root: root}, nil
}

// SaveMachineImage stores a machine image and returns its public URL path.
func (s *ImageStore) SaveMachineImage(originalName string, data []byte) (string, error) {
	fileName := fmt.Sprintf("machine_%d%s", time.Now().UnixMilli(), ext(originalName))
	return s.write("machine", fileName, data)
}

// SaveUserAvatar stores a user avatar keyed by user id and upload time, and
// returns its public URL path.
func (s *ImageStore) SaveUserAvatar(userID uuid.UUID, originalName string, data []byte) (string, error) {
	fileName := fmt.Sprintf("user_%s_%d%s", userID, time.Now().UnixMilli(), ext(originalName))
	return s.write("user", fileName, data)
}

func (s *ImageStore) write(sub, fileName string, data []byte) (string, error) {
	path := filepath.Join(s.root, sub, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Log.Errorw("failed to write image", "path", path, "error", err)
		return "", err
	}
	return "/images/" + sub + "/" + fileName, nil
}

func ext(name string) string {
	e := filepath.Ext(name)
	if e == "" || strings.ContainsAny(e, "/\\") {
		return ""
	}
	return e
}
