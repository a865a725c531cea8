package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/psds-microservice/grievance-service/internal/errs"
	"github.com/psds-microservice/grievance-service/internal/model"
	"github.com/psds-microservice/grievance-service/internal/repository"
)

type DocumentServicer interface {
	Upload(ctx context.Context, in DocumentUploadInput) (*DocumentMeta, error)
	List(ctx context.Context, grievanceID uint64) ([]DocumentMeta, error)
	Get(ctx context.Context, documentID uint64) (*DocumentWithData, error)
	Delete(ctx context.Context, documentID uint64, userID int64) error
}

// DocumentService хранит вложения обращения. Контент приходит и уходит в
// base64, в базе лежит bytea.
type DocumentService struct {
	documents  repository.DocumentRepository
	grievances repository.GrievanceRepository
}

func NewDocumentService(documents repository.DocumentRepository, grievances repository.GrievanceRepository) *DocumentService {
	return &DocumentService{documents: documents, grievances: grievances}
}

type DocumentUploadInput struct {
	GrievanceID    uint64
	FileName       string
	FileType       string
	FileDataBase64 string
	UploadedBy     int64
	UploadedByRole model.Role
}

// DocumentMeta — вложение без контента, для списков.
type DocumentMeta struct {
	ID             uint64     `json:"id"`
	GrievanceID    uint64     `json:"grievance_id"`
	FileName       string     `json:"file_name"`
	FileType       string     `json:"file_type,omitempty"`
	FileSize       int64      `json:"file_size"`
	UploadedBy     int64      `json:"uploaded_by"`
	UploadedByRole model.Role `json:"uploaded_by_role"`
}

type DocumentWithData struct {
	DocumentMeta
	FileDataBase64 string `json:"file_data_base64"`
}

func metaOf(d *model.Document) DocumentMeta {
	return DocumentMeta{
		ID:             d.ID,
		GrievanceID:    d.GrievanceID,
		FileName:       d.FileName,
		FileType:       d.FileType,
		FileSize:       d.FileSize,
		UploadedBy:     d.UploadedBy,
		UploadedByRole: d.UploadedByRole,
	}
}

func (s *DocumentService) Upload(ctx context.Context, in DocumentUploadInput) (*DocumentMeta, error) {
	if _, err := s.grievances.GetByID(ctx, in.GrievanceID); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(in.FileDataBase64)
	if err != nil {
		return nil, fmt.Errorf("decode file data: %w", err)
	}
	d := &model.Document{
		GrievanceID:    in.GrievanceID,
		FileName:       in.FileName,
		FileType:       in.FileType,
		FileSize:       int64(len(data)),
		FileData:       data,
		UploadedBy:     in.UploadedBy,
		UploadedByRole: in.UploadedByRole,
	}
	if err := s.documents.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	meta := metaOf(d)
	return &meta, nil
}

func (s *DocumentService) List(ctx context.Context, grievanceID uint64) ([]DocumentMeta, error) {
	if _, err := s.grievances.GetByID(ctx, grievanceID); err != nil {
		return nil, err
	}
	docs, err := s.documents.ListByGrievance(ctx, grievanceID)
	if err != nil {
		return nil, err
	}
	metas := make([]DocumentMeta, 0, len(docs))
	for i := range docs {
		metas = append(metas, metaOf(&docs[i]))
	}
	return metas, nil
}

func (s *DocumentService) Get(ctx context.Context, documentID uint64) (*DocumentWithData, error) {
	d, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return &DocumentWithData{
		DocumentMeta:   metaOf(d),
		FileDataBase64: base64.StdEncoding.EncodeToString(d.FileData),
	}, nil
}

// Delete разрешён только загрузившему: вложение — часть доказательной базы
// обращения, чужие файлы не трогаем.
func (s *DocumentService) Delete(ctx context.Context, documentID uint64, userID int64) error {
	d, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if d.UploadedBy != userID {
		return fmt.Errorf("%w: only the uploader can delete a document", errs.ErrUnauthorized)
	}
	return s.documents.Delete(ctx, documentID)
}
