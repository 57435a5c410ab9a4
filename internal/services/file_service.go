package services

import (
	"context"
	"log"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
)

type FileService struct {
	files FileRepository
}

func NewFileService(files FileRepository) *FileService {
	return &FileService{files: files}
}

// Register records file metadata for the acting user so submissions can
// reference it. Upload signing and storage live elsewhere.
func (s *FileService) Register(ctx context.Context, actor CurrentUser, req dto.RegisterFileRequest) (dto.FileRegisteredResponse, error) {
	var empty dto.FileRegisteredResponse

	file := domain.NewFile(req.Name, req.URL, actor.UserID)

	if err := s.files.Create(ctx, file); err != nil {
		log.Printf("register file: create failed for %s: %v", file.ID, err)
		return empty, fail("register_file", domain.ErrUnexpected)
	}

	return dto.FileRegisteredFromDomain(file), nil
}
