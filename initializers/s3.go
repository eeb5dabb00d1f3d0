package initializers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	s3client "smartjob-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.Connect(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 bucket check failed")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
