// Package cs reads objects from Google Cloud Storage.
package cs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const scheme = "gs://"

var (
	ErrObjectNotExist = errors.New("object does not exist")
	ErrBucketNotExist = errors.New("bucket does not exist")
	ErrInvalidURL     = errors.New("invalid gs:// url")
)

type Operations interface {
	GetObjectWithData(ctx context.Context, name string) (*ObjectWithData, error)
}

type Client struct {
	client *storage.Client
	bucket string
}

var _ Operations = &Client{}

type Object struct {
	Name   string
	Bucket string
	Attrs  Attributes
}

type ObjectWithData struct {
	*Object
	Data []byte
}

type Attributes struct {
	ContentType     string
	ContentEncoding string
	Size            int64
	SizeStr         string
}

func (c *Client) GetObjectWithData(ctx context.Context, name string) (*ObjectWithData, error) {
	bucket := c.client.Bucket(c.bucket)
	obj := bucket.Object(name)

	r, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, c.missing(ctx, bucket)
		}

		return nil, fmt.Errorf("creating reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading object: %w", err)
	}

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting object attributes: %w", err)
	}

	return &ObjectWithData{
		Object: &Object{
			Name:   obj.ObjectName(),
			Bucket: obj.BucketName(),
			Attrs: Attributes{
				ContentType:     attrs.ContentType,
				ContentEncoding: attrs.ContentEncoding,
				Size:            attrs.Size,
				SizeStr:         strconv.FormatInt(attrs.Size, 10),
			},
		},
		Data: data,
	}, nil
}

// missing tells a missing object apart from a missing bucket, the object
// reader reports both as a missing object.
func (c *Client) missing(ctx context.Context, bucket *storage.BucketHandle) error {
	_, err := bucket.Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return ErrBucketNotExist
	}

	return ErrObjectNotExist
}

// IsURL reports whether source points at a bucket object.
func IsURL(source string) bool {
	return strings.HasPrefix(source, scheme)
}

// ParseURL splits gs://bucket/path/to/object into bucket and object name.
func ParseURL(source string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(source, scheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, source)
	}

	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, source)
	}

	return bucket, object, nil
}

// New creates a client for the bucket, endpoint overrides the storage API
// and disables authentication when set, e.g. for a local emulator.
func New(ctx context.Context, bucket, endpoint string) (*Client, error) {
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

func NewFromClient(bucket string, client *storage.Client) *Client {
	return &Client{
		client: client,
		bucket: bucket,
	}
}
