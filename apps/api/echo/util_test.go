package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "courseboard/apps/api/echo"
	"courseboard/core"
	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
	"courseboard/storage/database"
)

func setup(t *testing.T) echoapi.Server {
	t.Helper()

	conf := &core.Config{TestMode: true}
	conf.Database.Path = ":memory:"

	db, err := database.Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))

	return echoapi.NewServer(&echoapi.Options{
		Config:         conf,
		DisableReqLogs: true,
		StudentSvc:     student.NewService(database.NewStudentRepository(db)),
		AssignmentSvc:  assignment.NewService(database.NewAssignmentRepository(db)),
		DiscussionSvc:  discussion.NewService(database.NewDiscussionRepository(db)),
		WeeklySvc:      weekly.NewService(database.NewWeeklyRepository(db)),
	})
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Count   *int            `json:"count"`
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

// do runs a request against the server and decodes the response envelope.
func do(t *testing.T, srv echoapi.Server, method, path string, data ...[]byte) (int, envelope) {
	t.Helper()

	req, rec := newRequest(method, path, data...)
	srv.ServeHTTP(rec, req)

	var env envelope
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	}
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func messageString(t *testing.T, env envelope) string {
	t.Helper()
	var msg string
	require.NoError(t, json.Unmarshal(env.Message, &msg))
	return msg
}

func fieldErrors(t *testing.T, env envelope) map[string]string {
	t.Helper()
	flds := map[string]string{}
	require.NoError(t, json.Unmarshal(env.Message, &flds))
	return flds
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
