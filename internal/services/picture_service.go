package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"holiday-api/pkg/utils"
)

// Picture is an uploaded file as received from the client.
type Picture struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// PictureEdit describes what an update wants done with the current picture.
type PictureEdit struct {
	Upload         *Picture
	DeleteExisting bool
}

type PictureStore interface {
	// Store validates and saves the picture, returning its path.
	Store(ctx context.Context, pic *Picture) (string, error)
	// Delete removes a stored picture. Stock pictures are left alone.
	Delete(ctx context.Context, path string) error
	IsDefault(path string) bool
}

var allowedPictureTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// readPicture checks type and size and that the bytes decode as an image.
func readPicture(pic *Picture, maxSize int64) (ext string, data []byte, err error) {
	if pic == nil || pic.Content == nil {
		return "", nil, fmt.Errorf("%w: empty upload", utils.ErrPictureStorage)
	}
	ext = strings.ToLower(filepath.Ext(pic.Filename))
	if _, ok := allowedPictureTypes[ext]; !ok {
		return "", nil, utils.ErrUnsupportedPictureType
	}
	if pic.Size > maxSize {
		return "", nil, utils.ErrPictureTooLarge
	}

	data, err = io.ReadAll(io.LimitReader(pic.Content, maxSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("%w: read upload: %v", utils.ErrPictureStorage, err)
	}
	if int64(len(data)) > maxSize {
		return "", nil, utils.ErrPictureTooLarge
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", nil, utils.ErrUnsupportedPictureType
	}
	return ext, data, nil
}

func isUnder(p, folder string) bool {
	if folder == "" {
		return false
	}
	clean := path.Clean("/" + filepath.ToSlash(p))
	return strings.HasPrefix(clean, "/"+strings.Trim(folder, "/")+"/")
}

// -------------- Local filesystem store ---------------

type LocalPictureStore struct {
	Root          string
	Folder        string
	DefaultFolder string
	MaxSize       int64
}

func NewLocalPictureStore(root, folder, defaultFolder string, maxSize int64) *LocalPictureStore {
	return &LocalPictureStore{Root: root, Folder: folder, DefaultFolder: defaultFolder, MaxSize: maxSize}
}

func (s *LocalPictureStore) IsDefault(p string) bool {
	return isUnder(p, s.DefaultFolder)
}

func (s *LocalPictureStore) Store(ctx context.Context, pic *Picture) (string, error) {
	ext, data, err := readPicture(pic, s.MaxSize)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrPictureStorage, err)
	}

	dir := filepath.Join(s.Root, s.Folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrPictureStorage, err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrPictureStorage, err)
	}

	rel := path.Join(s.Folder, name)
	log.Debug().Str("path", rel).Msg("Picture stored")
	return rel, nil
}

func (s *LocalPictureStore) Delete(ctx context.Context, p string) error {
	if p == "" || s.IsDefault(p) {
		return nil
	}
	if !isUnder(p, s.Folder) {
		return utils.ErrPictureNotFound
	}

	full := filepath.Join(s.Root, filepath.FromSlash(path.Clean("/"+p)))
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return utils.ErrPictureNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrPictureStorage, err)
	}
	return nil
}

// resolveNewPicture returns the path for a new entity: the upload if any,
// otherwise the stock picture.
func resolveNewPicture(ctx context.Context, store PictureStore, upload *Picture, stock string) (string, error) {
	if upload == nil {
		return stock, nil
	}
	return store.Store(ctx, upload)
}

// resolveEditedPicture applies the update rules: a new upload wins; without
// one the current picture stays unless DeleteExisting asks for the stock
// picture. It also returns the path to drop once the update is committed.
func resolveEditedPicture(ctx context.Context, store PictureStore, edit PictureEdit, current, stock string) (next, obsolete string, err error) {
	switch {
	case edit.Upload != nil:
		next, err = store.Store(ctx, edit.Upload)
		if err != nil {
			return "", "", err
		}
		return next, current, nil
	case edit.DeleteExisting:
		return stock, current, nil
	default:
		return current, "", nil
	}
}

// dropPicture deletes a replaced picture; failures are only logged.
func dropPicture(ctx context.Context, store PictureStore, p string) {
	if p == "" || store.IsDefault(p) {
		return
	}
	if err := store.Delete(ctx, p); err != nil {
		log.Warn().Err(err).Str("path", p).Msg("Failed to delete picture")
	}
}
