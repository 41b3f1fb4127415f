package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/database"
	"github.com/smartattend/attendance-backend/internal/handlers"
	"github.com/smartattend/attendance-backend/internal/routes"
	"github.com/smartattend/attendance-backend/internal/storage"
)

const (
	studentsTable   = "students-test"
	attendanceTable = "attendance-test"
)

// fakeTable keeps items in insertion order so paginated scans are stable.
type fakeTable struct {
	keyAttr string
	items   []map[string]types.AttributeValue
}

// fakeDB implements database.API over in-memory tables.
type fakeDB struct {
	tables    map[string]*fakeTable
	pageSize  int
	scanErr   error
	putErr    error
	deleteErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: map[string]*fakeTable{
		studentsTable:   {keyAttr: "student_id"},
		attendanceTable: {keyAttr: "face_id"},
	}}
}

func (f *fakeDB) keyOf(tbl *fakeTable, item map[string]types.AttributeValue) string {
	if s, ok := item[tbl.keyAttr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDB) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	tbl := f.tables[aws.ToString(in.TableName)]

	start := 0
	if len(in.ExclusiveStartKey) > 0 {
		after := f.keyOf(tbl, in.ExclusiveStartKey)
		for i, item := range tbl.items {
			if f.keyOf(tbl, item) == after {
				start = i + 1
				break
			}
		}
	}

	end := len(tbl.items)
	out := &dynamodb.ScanOutput{}
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		last := tbl.items[end-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			tbl.keyAttr: last[tbl.keyAttr],
		}
	}
	out.Items = append(out.Items, tbl.items[start:end]...)
	return out, nil
}

func (f *fakeDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	tbl := f.tables[aws.ToString(in.TableName)]
	key := f.keyOf(tbl, in.Item)
	for i, item := range tbl.items {
		if f.keyOf(tbl, item) == key {
			tbl.items[i] = in.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}
	tbl.items = append(tbl.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	tbl := f.tables[aws.ToString(in.TableName)]
	key := f.keyOf(tbl, in.Key)
	kept := tbl.items[:0]
	for _, item := range tbl.items {
		if f.keyOf(tbl, item) != key {
			kept = append(kept, item)
		}
	}
	tbl.items = kept
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDB) count(table string) int {
	return len(f.tables[table].items)
}

// fakePresigner implements storage.PresignAPI and records the last input.
type fakePresigner struct {
	err       error
	lastInput *s3.PutObjectInput
	lastOpts  s3.PresignOptions
}

func (f *fakePresigner) PresignPutObject(_ context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastInput = in
	for _, fn := range optFns {
		fn(&f.lastOpts)
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://photos-test.s3.us-east-1.amazonaws.com/" + aws.ToString(in.Key) + "?X-Amz-Signature=test",
		Method: "PUT",
	}, nil
}

type testEnv struct {
	router *gin.Engine
	db     *fakeDB
	signer *fakePresigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newFakeDB()
	signer := &fakePresigner{}
	h := handlers.New(
		&database.Client{DB: db, StudentsTable: studentsTable, AttendanceTable: attendanceTable},
		&storage.Storage{
			Presigner:     signer,
			Bucket:        "photos-test",
			PublicBaseURL: "https://photos-test.s3.us-east-1.amazonaws.com",
		},
	)

	r := gin.New()
	routes.StudentRoutes(r, h)
	routes.AttendanceRoutes(r, h)
	routes.DashboardRoutes(r, h)
	routes.UploadRoutes(r, h)

	return &testEnv{router: r, db: db, signer: signer}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, env
}

func decodeData(t *testing.T, env envelope, into any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, into); err != nil {
		t.Fatalf("decode data %q: %v", string(env.Data), err)
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}
