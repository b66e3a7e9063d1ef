// Package dynamo provides a DynamoDB-backed implementation of storage.Store.
//
// Table requirements:
//   - PK: key (string)
//
// Each collection is one item holding its JSON document. Documents larger
// than a DynamoDB item allows (400 KB) spill into chunk items keyed
// "<key>#<write id>#<n>"; the main item records how many there are.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/mmynk/agencydesk/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// API is the subset of the DynamoDB client the store needs.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Options configures the client built by NewClient.
type Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient builds a DynamoDB client. With an Endpoint set (DynamoDB Local)
// static credentials are used, since the SDK requires some even when the
// server does not check them.
func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" || opts.Endpoint != "" {
		accessKey, secret := opts.AccessKeyID, opts.SecretAccessKey
		if accessKey == "" {
			accessKey, secret = "local", "local"
		}
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}

// maxChunkBytes keeps an item with its other attributes under the 400 KB
// DynamoDB item limit.
const maxChunkBytes = 350 * 1024

type documentItem struct {
	Key       string `dynamodbav:"key"`
	Version   int    `dynamodbav:"version,omitempty"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`

	// Chunks counts every piece of Data including the main item's. Zero or
	// one means the document fits in the main item.
	Chunks  int    `dynamodbav:"chunks,omitempty"`
	ChunkID string `dynamodbav:"chunk_id,omitempty"`
}

func chunkKey(key storage.Key, chunkID string, n int) storage.Key {
	return storage.Key(fmt.Sprintf("%s#%s#%d", key, chunkID, n))
}

func isChunkKey(key string) bool {
	return strings.Contains(key, "#")
}

// splitData cuts data into pieces of at most size bytes without splitting a
// UTF-8 sequence, since DynamoDB strings must be valid UTF-8.
func splitData(data []byte, size int) []string {
	var parts []string
	for len(data) > size {
		end := size
		for end > 0 && !utf8.RuneStart(data[end]) {
			end--
		}
		if end == 0 {
			end = size
		}
		parts = append(parts, string(data[:end]))
		data = data[end:]
	}
	return append(parts, string(data))
}

func fromItem(it documentItem) (*storage.Record, error) {
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", it.UpdatedAt, err)
	}
	return &storage.Record{
		Key:       storage.Key(it.Key),
		Version:   it.Version,
		Data:      []byte(it.Data),
		UpdatedAt: updatedAt,
	}, nil
}

// Store persists documents in a single DynamoDB table.
type Store struct {
	ddb       API
	tableName string
	chunkSize int
}

// New returns a Store over the given table.
func New(ddb API, tableName string) *Store {
	return &Store{ddb: ddb, tableName: tableName, chunkSize: maxChunkBytes}
}

func (s *Store) keyAttr(key storage.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: string(key)},
	}
}

// getItem returns nil without error when the item does not exist.
func (s *Store) getItem(ctx context.Context, key storage.Key) (*documentItem, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &it, nil
}

func (s *Store) putItem(ctx context.Context, it documentItem) error {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

func (s *Store) deleteItem(ctx context.Context, key storage.Key) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// deleteChunks removes the chunk items a main item points to.
func (s *Store) deleteChunks(ctx context.Context, key storage.Key, it *documentItem) error {
	if it == nil {
		return nil
	}
	for n := 1; n < it.Chunks; n++ {
		if err := s.deleteItem(ctx, chunkKey(key, it.ChunkID, n)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key storage.Key) (*storage.Record, error) {
	it, err := s.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}

	if it.Chunks > 1 {
		var data strings.Builder
		data.WriteString(it.Data)
		for n := 1; n < it.Chunks; n++ {
			chunk, err := s.getItem(ctx, chunkKey(key, it.ChunkID, n))
			if err != nil {
				return nil, err
			}
			if chunk == nil {
				return nil, fmt.Errorf("document %s is missing chunk %d of %d", key, n, it.Chunks)
			}
			data.WriteString(chunk.Data)
		}
		it.Data = data.String()
	}
	return fromItem(*it)
}

// Put writes chunk items under a fresh write id before swapping the main
// item, so a failed write leaves the previous document readable. Chunks of
// the previous document are removed afterwards.
func (s *Store) Put(ctx context.Context, rec *storage.Record) error {
	if rec.Key == "" {
		return fmt.Errorf("record key is required")
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	prev, err := s.getItem(ctx, rec.Key)
	if err != nil {
		return err
	}

	parts := splitData(rec.Data, s.chunkSize)
	main := documentItem{
		Key:       string(rec.Key),
		Version:   rec.Version,
		Data:      parts[0],
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(parts) > 1 {
		main.Chunks = len(parts)
		main.ChunkID = strconv.FormatInt(rec.UpdatedAt.UnixNano(), 36)
		if prev != nil && prev.ChunkID == main.ChunkID {
			main.ChunkID += "x"
		}
		for n, part := range parts[1:] {
			chunk := documentItem{Key: string(chunkKey(rec.Key, main.ChunkID, n+1)), Data: part}
			if err := s.putItem(ctx, chunk); err != nil {
				return fmt.Errorf("failed to put chunk %d of %s: %w", n+1, rec.Key, err)
			}
		}
	}

	if err := s.putItem(ctx, main); err != nil {
		return err
	}
	return s.deleteChunks(ctx, rec.Key, prev)
}

func (s *Store) Delete(ctx context.Context, key storage.Key) error {
	prev, err := s.getItem(ctx, key)
	if err != nil {
		return err
	}
	if err := s.deleteItem(ctx, key); err != nil {
		return err
	}
	return s.deleteChunks(ctx, key, prev)
}

func (s *Store) List(ctx context.Context) ([]storage.Key, error) {
	var (
		keys  []storage.Key
		start map[string]types.AttributeValue
	)
	for {
		// "key" is a reserved word in expressions.
		out, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(s.tableName),
			ProjectionExpression:     aws.String("#k"),
			ExpressionAttributeNames: map[string]string{"#k": "key"},
			ExclusiveStartKey:        start,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan documents: %w", err)
		}
		for _, item := range out.Items {
			if v, ok := item["key"].(*types.AttributeValueMemberS); ok && !isChunkKey(v.Value) {
				keys = append(keys, storage.Key(v.Value))
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

// Close is a no-op; the SDK client holds no resources that need releasing.
func (s *Store) Close() error {
	return nil
}

// EnsureTable creates the table with on-demand billing if it does not exist.
func (s *Store) EnsureTable(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(s.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}
