// Package userdirectory reads the CSV export of the organization's user
// directory, either from a local file or from a bucket.
package userdirectory

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/statisticsnorway/dapla-start-api/pkg/cs"
)

const (
	ColumnDisplayName       = "displayName"
	ColumnUserPrincipalName = "userPrincipalName"
	ColumnMail              = "mail"
)

var (
	ErrMissingColumn = errors.New("missing column in user export")
	utf8BOM          = []byte{0xEF, 0xBB, 0xBF}
)

type Fetcher interface {
	ListEntries(ctx context.Context) ([]Entry, error)
}

// Source returns the raw export.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
}

// Entry is one row of the export, values are as found in the file.
type Entry struct {
	DisplayName       string
	UserPrincipalName string
	Mail              string
}

type Client struct {
	source Source
}

var _ Fetcher = &Client{}

func (c *Client) ListEntries(ctx context.Context) ([]Entry, error) {
	data, err := c.source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading user export: %w", err)
	}

	entries, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing user export: %w", err)
	}

	return entries, nil
}

// Parse reads a UTF-8 export with a header row, a leading byte order mark is
// ignored and columns are found by name.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty export", ErrMissingColumn)
		}

		return nil, err
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}

	for _, name := range []string{ColumnDisplayName, ColumnUserPrincipalName, ColumnMail} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	field := func(record []string, name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}

		return record[i]
	}

	var entries []Entry

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			DisplayName:       field(record, ColumnDisplayName),
			UserPrincipalName: field(record, ColumnUserPrincipalName),
			Mail:              field(record, ColumnMail),
		})
	}

	return entries, nil
}

type FileSource struct {
	path string
}

func (f *FileSource) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(f.path)
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type BucketSource struct {
	ops    cs.Operations
	object string
}

func (b *BucketSource) Read(ctx context.Context) ([]byte, error) {
	obj, err := b.ops.GetObjectWithData(ctx, b.object)
	if err != nil {
		return nil, err
	}

	return obj.Data, nil
}

func NewBucketSource(ops cs.Operations, object string) *BucketSource {
	return &BucketSource{
		ops:    ops,
		object: object,
	}
}

// New picks the source from its form, gs://bucket/object reads from the
// bucket and anything else is a local path.
func New(ctx context.Context, source string) (*Client, error) {
	if !cs.IsURL(source) {
		return NewFromSource(NewFileSource(source)), nil
	}

	bucket, object, err := cs.ParseURL(source)
	if err != nil {
		return nil, err
	}

	client, err := cs.New(ctx, bucket, "")
	if err != nil {
		return nil, err
	}

	return NewFromSource(NewBucketSource(client, object)), nil
}

func NewFromSource(source Source) *Client {
	return &Client{
		source: source,
	}
}
