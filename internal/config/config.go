package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/spf13/viper"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port            string
	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretKey    string
	StudentsTable   string
	AttendanceTable string
	S3Bucket        string
	S3PublicBaseURL string
}

// Load reads the configuration from viper. Environment variables (and any
// .env file loaded before this) win over defaults; the serve command's
// flags are bound into the same keys.
func Load() *Config {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "3000")

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		AWSRegion:       viper.GetString("AWS_REGION"),
		AWSAccessKeyID:  viper.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:    viper.GetString("AWS_SECRET_ACCESS_KEY"),
		StudentsTable:   viper.GetString("DYNAMO_STUDENTS_TABLE"),
		AttendanceTable: viper.GetString("DYNAMO_ATTENDANCE_TABLE"),
		S3Bucket:        viper.GetString("S3_BUCKET_NAME"),
		S3PublicBaseURL: viper.GetString("S3_PUBLIC_BASE_URL"),
	}

	// Photos are served from the bucket's public endpoint unless a CDN
	// or proxy URL is configured explicitly.
	if cfg.S3PublicBaseURL == "" && cfg.S3Bucket != "" {
		cfg.S3PublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
	}

	return cfg
}

// AWSConfig builds the SDK configuration shared by the DynamoDB and S3
// clients. Static credentials are used when provided, otherwise the SDK's
// default chain (instance role, shared profile) applies.
func (c *Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}
	if c.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
