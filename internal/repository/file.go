package repository

import (
	"context"

	"github.com/Deepfake2025/Deepfake-rear/internal/domain"
	"github.com/Deepfake2025/Deepfake-rear/internal/repository/dao"
)

var ErrDuplicateFile = dao.ErrDuplicateFile

//go:generate mockgen -source=./file.go -package=repomocks -destination=./mocks/file.mock.go FileRepository
type FileRepository interface {
	Create(ctx context.Context, f domain.FileRecord) (int64, error)
}

type GORMFileRepository struct {
	dao dao.FileDAO
}

func NewFileRepository(d dao.FileDAO) FileRepository {
	return &GORMFileRepository{dao: d}
}

func (r *GORMFileRepository) Create(ctx context.Context, f domain.FileRecord) (int64, error) {
	return r.dao.Insert(ctx, dao.File{
		Username:   f.Username,
		ObjectPath: f.ObjectPath,
		Bucket:     f.Bucket,
		FileType:   f.FileType,
	})
}
