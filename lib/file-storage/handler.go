package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	"smartjob-backend/db"
	filesdbstorage "smartjob-backend/lib/file-storage/storage"
	dbmodels "smartjob-backend/models/db"
	s3client "smartjob-backend/s3"
)

type Provider interface {
	Upload(ctx context.Context, file []byte, info dbmodels.UploadFileInfo) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error)
	Delete(ctx context.Context, fileID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3:         s3client.Client,
		bucketName: config.Conf.S3.BucketName,
		filesStore: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3         *minio.Client
	bucketName string
	filesStore filesdbstorage.Provider
}

func (i impl) Upload(ctx context.Context, file []byte, info dbmodels.UploadFileInfo) (string, error) {
	if i.s3 == nil {
		return "", errors.New("file storage is not configured")
	}
	logger := log.
		WithField("owner_id", info.OwnerID).
		WithField("file_type", info.FileType)
	rec := dbmodels.FileStorage{
		OwnerID:     info.OwnerID,
		Name:        info.FileName,
		Type:        info.FileType,
		ContentType: info.ContentType,
		Size:        int64(len(file)),
	}
	fileID, err := i.filesStore.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("file record not saved")
		return "", errors.Wrap(err, "file record not saved")
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3.PutObject(ctx, i.bucketName, objectName(info.FileType, fileID), bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("file upload to S3 failed")
		if delErr := i.filesStore.Delete(fileID); delErr != nil {
			logger.WithError(delErr).Error("orphan file record not removed")
		}
		return "", errors.Wrap(err, "file upload failed")
	}
	return fileID, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	if i.s3 == nil {
		return nil, nil, errors.New("file storage is not configured")
	}
	rec, err := i.filesStore.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.New("file not found")
	}
	object, err := i.s3.GetObject(ctx, i.bucketName, objectName(rec.Type, rec.ID), minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "file download failed")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "file read failed")
	}
	return body, rec, nil
}

func (i impl) Delete(ctx context.Context, fileID string) error {
	if i.s3 == nil || fileID == "" {
		return nil
	}
	rec, err := i.filesStore.GetByID(fileID)
	if err != nil || rec == nil {
		return err
	}
	err = i.s3.RemoveObject(ctx, i.bucketName, objectName(rec.Type, rec.ID), minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "file remove failed")
	}
	return i.filesStore.Delete(fileID)
}

func objectName(fileType dbmodels.FileType, fileID string) string {
	return fmt.Sprintf("%s/%s", fileType, fileID)
}
