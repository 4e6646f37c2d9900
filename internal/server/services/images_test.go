package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/mango-services/loyalty-auth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageStore() *S3ImageStore {
	return NewS3ImageStore(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "rewards",
	})
}

// stubS3 replaces the AWS constructors with no-op fakes for the duration of t.
func stubS3(t *testing.T) {
	t.Helper()

	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	origPut, origGet := presignPutObject, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
}

func Test_getPresignClient_AppliesConfig(t *testing.T) {
	stubS3(t)
	store := newImageStore()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("credentials provider not applied")
		}
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := store.getPresignClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = store.getPresignClient(context.Background())
	require.EqualError(t, err, "load-fail")
}

func TestPresignUpload(t *testing.T) {
	stubS3(t)
	store := newImageStore()

	var gotBucket, gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		if po.Expires != 15*time.Minute {
			t.Fatalf("unexpected expiry: %v", po.Expires)
		}
		return &v4.PresignedHTTPRequest{URL: "https://put.example/" + *in.Key}, nil
	}

	key, url, err := store.PresignUpload(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "rewards", gotBucket)
	assert.Equal(t, gotKey, key)
	assert.True(t, strings.HasPrefix(key, "rewards/r1/"), key)
	assert.Equal(t, "https://put.example/"+key, url)

	key2, _, err := store.PresignUpload(context.Background(), "r1")
	require.NoError(t, err)
	assert.NotEqual(t, key, key2)
}

func TestPresignUpload_Errors(t *testing.T) {
	stubS3(t)
	store := newImageStore()

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-put-fail")
	}
	_, _, err := store.PresignUpload(context.Background(), "r1")
	require.EqualError(t, err, "presign-put-fail")

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, _, err = store.PresignUpload(context.Background(), "r1")
	require.EqualError(t, err, "load-fail")
}

func TestPresignDownload(t *testing.T) {
	stubS3(t)
	store := newImageStore()

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://get.example/" + *in.Bucket + "/" + *in.Key}, nil
	}

	url, err := store.PresignDownload(context.Background(), "rewards/r1/2024/05/x")
	require.NoError(t, err)
	assert.Equal(t, "https://get.example/rewards/rewards/r1/2024/05/x", url)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-get-fail")
	}
	_, err = store.PresignDownload(context.Background(), "k")
	require.EqualError(t, err, "presign-get-fail")
}

func TestRewardImageKey(t *testing.T) {
	key := rewardImageKey("r-9", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(key, "rewards/r-9/2024/03/"), key)
}
