package file

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/Pascual-Eburi/employee-directory/internal/pkg/storage"
)

// avatarDir is the namespace inside the file storage shared by every
// employee's avatar.
const avatarDir = "avatars"

type FileService interface {
	// StoreAvatar persists an uploaded avatar under a name derived from its
	// content and returns that name.
	StoreAvatar(ctx context.Context, file io.Reader, filename string) (string, error)

	// DeleteAvatar removes a stored avatar by name. Missing files are an
	// error, not a no-op.
	DeleteAvatar(ctx context.Context, name string) error

	// AvatarExists reports whether a stored avatar is present.
	AvatarExists(ctx context.Context, name string) (bool, error)

	// AvatarURL resolves a stored avatar name to its public URL.
	AvatarURL(name string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// StoreAvatar uploads an employee avatar. The storage name is the sha256 of
// the file content plus the original extension, so re-uploads of the same
// bytes are stable and names from different uploads cannot collide.
func (s *fileServiceImpl) StoreAvatar(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read avatar: %w", err)
	}

	sum := sha256.Sum256(content)
	name := hex.EncodeToString(sum[:]) + ext

	if _, err := s.storage.Upload(ctx, bytes.NewReader(content), path.Join(avatarDir, name)); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return name, nil
}

// DeleteAvatar deletes a stored avatar file
func (s *fileServiceImpl) DeleteAvatar(ctx context.Context, name string) error {
	return s.storage.Delete(ctx, path.Join(avatarDir, name))
}

// AvatarExists implements FileService.
func (s *fileServiceImpl) AvatarExists(ctx context.Context, name string) (bool, error) {
	return s.storage.Exists(ctx, path.Join(avatarDir, name))
}

// AvatarURL implements FileService.
func (s *fileServiceImpl) AvatarURL(name string) string {
	return s.storage.URL(path.Join(avatarDir, name))
}
