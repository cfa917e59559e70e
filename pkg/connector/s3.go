package connector

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/semtable/semtable/internal/format"
	"github.com/semtable/semtable/pkg/table"
)

// S3Options configures access to an S3-compatible object store.
type S3Options struct {
	// AccessKey and SecretKey authenticate the request. Leave both empty
	// for anonymous access to public buckets.
	AccessKey string
	SecretKey string

	// Region of the bucket. Defaults to us-east-1 when unset.
	Region string

	// Endpoint overrides the provider default, for MinIO, R2 and other
	// S3-compatible stores. Host and optional port only, no scheme.
	Endpoint string

	// Protocol used with a custom endpoint: "http" (typical for a local
	// MinIO) or "https". Anything else, including the default, means https.
	Protocol string
}

func (o S3Options) scheme() string {
	if o.Protocol == "http" {
		return "http"
	}
	return "https"
}

// LoadFromS3 fetches a single object from a bucket and parses it into a
// table. The format is inferred from the key's extension, falling back
// to content sniffing.
func LoadFromS3(ctx context.Context, opts S3Options, bucket, key string) (*table.Table, error) {
	if bucket == "" {
		return nil, &ConnectionError{Source: "s3", Err: errors.New("bucket is empty")}
	}
	if key == "" {
		return nil, &LoadError{Source: "s3://" + bucket, Err: errors.New("file path is empty")}
	}
	source := fmt.Sprintf("s3://%s/%s", bucket, key)

	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, &ConnectionError{Source: source, Err: fmt.Errorf("failed to load client configuration: %v", err)}
	}
	if opts.AccessKey == "" {
		// No credentials means public access: leave the request unsigned.
		cfg.Credentials = aws.AnonymousCredentials{}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.scheme() + "://" + opts.Endpoint)
			// Compatible stores generally do not resolve bucket subdomains.
			o.UsePathStyle = true
		}
	})

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(source, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("failed to read object body: %v", err)}
	}

	tbl, err := format.Parse(key, data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return tbl, nil
}

// classifyS3Error separates "the object is not there" from "the store
// could not be reached or refused us".
func classifyS3Error(source string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return &LoadError{Source: source, Err: fmt.Errorf("object not found: %v", err)}
		}
	}
	return &ConnectionError{Source: source, Err: err}
}
