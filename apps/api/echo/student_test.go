package echoapi_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseboard/core/student"
)

func Test_studentApi_crud(t *testing.T) {
	srv := setup(t)

	body := marchallObj(t, map[string]string{
		"student_id": "S1",
		"name":       "Awa Traore",
		"email":      "awa@school.test",
		"password":   "correct-horse-battery",
	})
	code, env := do(t, srv, http.MethodPost, "/api/students", body)
	require.Equal(t, http.StatusCreated, code)

	var created student.Student
	decodeData(t, env, &created)
	assert.Equal(t, "S1", created.ID)
	assert.Equal(t, "awa@school.test", created.Email)
	assert.NotContains(t, string(env.Data), "password") // hash is never serialized

	// same student_id again
	code, env = do(t, srv, http.MethodPost, "/api/students", body)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Student ID or email already exists", messageString(t, env))

	// same email under a new id
	body2 := marchallObj(t, map[string]string{
		"student_id": "S2",
		"name":       "Bertrand Kalou",
		"email":      "awa@school.test",
		"password":   "correct-horse-battery",
	})
	code, env = do(t, srv, http.MethodPost, "/api/students", body2)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Email already exists", messageString(t, env))

	// get by id
	code, env = do(t, srv, http.MethodGet, "/api/students?student_id=S1")
	require.Equal(t, http.StatusOK, code)
	var got student.Student
	decodeData(t, env, &got)
	assert.Equal(t, "Awa Traore", got.Name)

	code, env = do(t, srv, http.MethodGet, "/api/students?student_id=missing")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Student not found", messageString(t, env))

	// partial update: name only, email untouched
	code, env = do(t, srv, http.MethodPut, "/api/students",
		marchallObj(t, map[string]string{"student_id": "S1", "name": "Awa T."}))
	require.Equal(t, http.StatusOK, code)
	decodeData(t, env, &got)
	assert.Equal(t, "Awa T.", got.Name)
	assert.Equal(t, "awa@school.test", got.Email)

	// empty update set
	code, env = do(t, srv, http.MethodPut, "/api/students",
		marchallObj(t, map[string]string{"student_id": "S1"}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No fields to update", messageString(t, env))

	// delete, then the id is gone
	code, _ = do(t, srv, http.MethodDelete, "/api/students?student_id=S1")
	require.Equal(t, http.StatusOK, code)
	code, _ = do(t, srv, http.MethodDelete, "/api/students?student_id=S1")
	assert.Equal(t, http.StatusNotFound, code)
}

func Test_studentApi_validation(t *testing.T) {
	srv := setup(t)

	tests := []struct {
		name    string
		body    map[string]string
		wantFld string
	}{
		{
			name:    "missing name",
			body:    map[string]string{"student_id": "S1", "email": "a@b.test", "password": "correct-horse-battery"},
			wantFld: "name",
		},
		{
			name:    "blank student_id",
			body:    map[string]string{"student_id": "   ", "name": "A", "email": "a@b.test", "password": "correct-horse-battery"},
			wantFld: "student_id",
		},
		{
			name:    "bad email",
			body:    map[string]string{"student_id": "S1", "name": "A", "email": "not-an-email", "password": "correct-horse-battery"},
			wantFld: "email",
		},
		{
			name:    "short password",
			body:    map[string]string{"student_id": "S1", "name": "A", "email": "a@b.test", "password": "short"},
			wantFld: "password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, srv, http.MethodPost, "/api/students", marchallObj(t, tt.body))
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, fieldErrors(t, env), tt.wantFld)
		})
	}
}

func Test_studentApi_list(t *testing.T) {
	srv := setup(t)

	for _, stu := range []map[string]string{
		{"student_id": "S1", "name": "Awa Traore", "email": "awa@school.test", "password": "correct-horse-battery"},
		{"student_id": "S2", "name": "Bertrand Kalou", "email": "bertrand@school.test", "password": "correct-horse-battery"},
		{"student_id": "S3", "name": "Chidi Okafor", "email": "chidi@school.test", "password": "correct-horse-battery"},
	} {
		code, _ := do(t, srv, http.MethodPost, "/api/students", marchallObj(t, stu))
		require.Equal(t, http.StatusCreated, code)
	}

	list := func(t *testing.T, rawQuery string) ([]student.Student, envelope) {
		code, env := do(t, srv, http.MethodGet, "/api/students?"+rawQuery)
		require.Equal(t, http.StatusOK, code)
		var students []student.Student
		decodeData(t, env, &students)
		return students, env
	}

	students, env := list(t, "")
	assert.Len(t, students, 3)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)

	// case-insensitive substring search
	students, _ = list(t, "search="+url.QueryEscape("TRAORE"))
	require.Len(t, students, 1)
	assert.Equal(t, "S1", students[0].ID)

	students, _ = list(t, "sort=name&order=desc")
	require.Len(t, students, 3)
	assert.Equal(t, "Chidi Okafor", students[0].Name)

	// hostile sort column falls back to the default ordering
	students, _ = list(t, "sort=droptable")
	assert.Len(t, students, 3)

	students, env = list(t, "search=nobody")
	assert.Empty(t, students)
	assert.True(t, env.Success)
}

func Test_studentApi_changePassword(t *testing.T) {
	srv := setup(t)

	code, _ := do(t, srv, http.MethodPost, "/api/students", marchallObj(t, map[string]string{
		"student_id": "S1",
		"name":       "Awa Traore",
		"email":      "awa@school.test",
		"password":   "correct-horse-battery",
	}))
	require.Equal(t, http.StatusCreated, code)

	path := "/api/students?action=change_password"

	code, env := do(t, srv, http.MethodPost, path, marchallObj(t, map[string]string{
		"student_id":       "S1",
		"current_password": "wrong-password",
		"new_password":     "plum-kettle-sunrise",
	}))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Current password is incorrect", messageString(t, env))

	code, env = do(t, srv, http.MethodPost, path, marchallObj(t, map[string]string{
		"student_id":       "S1",
		"current_password": "correct-horse-battery",
		"new_password":     "short",
	}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, fieldErrors(t, env), "new_password")

	code, env = do(t, srv, http.MethodPost, path, marchallObj(t, map[string]string{
		"student_id":       "S1",
		"current_password": "correct-horse-battery",
		"new_password":     "plum-kettle-sunrise",
	}))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Password updated", messageString(t, env))

	// old password no longer works
	code, _ = do(t, srv, http.MethodPost, path, marchallObj(t, map[string]string{
		"student_id":       "S1",
		"current_password": "correct-horse-battery",
		"new_password":     "quiet-meadow-lantern",
	}))
	assert.Equal(t, http.StatusUnauthorized, code)
}
