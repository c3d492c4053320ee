package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/crosspost/internal/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type UploadService interface {
	// Add replaces the workspace file list with files. An empty batch changes
	// nothing.
	Add(ctx context.Context, workspaceID string, files []*multipart.FileHeader) ([]*models.UploadedFile, error)
	// Remove drops every file with the given name.
	Remove(ctx context.Context, workspaceID, name string) error
	Discard(ctx context.Context, mediaIDs []string)
}

type uploadService struct {
	ws    WorkspaceService
	media MediaStorage
}

func NewUploadService(ws WorkspaceService, media MediaStorage) UploadService {
	return &uploadService{ws: ws, media: media}
}

func (s *uploadService) Add(ctx context.Context, workspaceID string, files []*multipart.FileHeader) ([]*models.UploadedFile, error) {
	current, err := s.ws.Get(workspaceID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return current.Files, nil
	}
	if current.Posting {
		return nil, ErrPostInFlight
	}

	uploaded := make([]*models.UploadedFile, 0, len(files))
	for _, file := range files {
		u, err := s.processFile(ctx, file)
		if err != nil {
			s.Discard(ctx, mediaIDs(uploaded))
			return nil, fmt.Errorf("error processing files: %w", err)
		}
		uploaded = append(uploaded, u)
	}

	var replaced []*models.UploadedFile
	err = s.ws.Update(workspaceID, func(w *models.Workspace) error {
		if w.Posting {
			return ErrPostInFlight
		}
		replaced, w.Files = w.Files, uploaded
		return nil
	})
	if err != nil {
		s.Discard(ctx, mediaIDs(uploaded))
		return nil, err
	}
	s.Discard(ctx, mediaIDs(replaced))

	return uploaded, nil
}

func (s *uploadService) processFile(ctx context.Context, file *multipart.FileHeader) (*models.UploadedFile, error) {
	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if kind, err := filetype.Match(fileBytes); err == nil && kind != types.Unknown {
		contentType = kind.MIME.Value
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	key := id + strings.ToLower(filepath.Ext(file.Filename))

	url, err := s.media.Save(ctx, key, fileBytes, contentType)
	if err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	return &models.UploadedFile{
		MediaID:     key,
		Name:        displayFileName(file.Filename),
		Size:        file.Size,
		ContentType: contentType,
		Kind:        mediaKind(contentType),
		URL:         url,
	}, nil
}

func (s *uploadService) Remove(ctx context.Context, workspaceID, name string) error {
	var removed []*models.UploadedFile
	err := s.ws.Update(workspaceID, func(w *models.Workspace) error {
		if w.Posting {
			return ErrPostInFlight
		}
		kept := w.Files[:0:0]
		for _, f := range w.Files {
			if f.Name == name {
				removed = append(removed, f)
				continue
			}
			kept = append(kept, f)
		}
		w.Files = kept
		return nil
	})
	if err != nil {
		return err
	}
	s.Discard(ctx, mediaIDs(removed))
	return nil
}

func (s *uploadService) Discard(ctx context.Context, ids []string) {
	for _, id := range ids {
		if err := s.media.Delete(ctx, id); err != nil {
			slog.Info(fmt.Sprintf("Unable to delete media %s: %v", id, err))
		}
	}
}

func mediaIDs(files []*models.UploadedFile) []string {
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.MediaID)
	}
	return ids
}

func mediaKind(contentType string) string {
	if strings.HasPrefix(contentType, "video") {
		return models.MediaKindVideo
	}
	return models.MediaKindImage
}

// displayFileName keeps the client's base name verbatim; templates escape it
// on render.
func displayFileName(name string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "" || name == "." || name == "/" {
		return "untitled"
	}
	return name
}
