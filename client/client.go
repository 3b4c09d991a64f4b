// Package client is a typed consumer of the Courseboard API, used by the
// course pages and by integration tooling. It holds no state between calls;
// callers re-fetch after every mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
)

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", err.StatusCode, err.Message)
}

// ListOptions mirror the list query parameters; zero values are omitted.
type ListOptions struct {
	Search string
	Sort   string
	Order  string
}

func (o ListOptions) apply(v url.Values) {
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Count   int             `json:"count"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "encoding request body")
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling api")
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	if res.StatusCode >= 300 || !env.Success {
		return &APIError{StatusCode: res.StatusCode, Message: messageText(env.Message)}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decoding response data")
		}
	}
	return nil
}

// messageText flattens the message field, which is either a string or a
// field-error map.
func messageText(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}
	flds := map[string]string{}
	if err := json.Unmarshal(raw, &flds); err == nil {
		parts := make([]string, 0, len(flds))
		for fld, fldMsg := range flds {
			parts = append(parts, fld+": "+fldMsg)
		}
		return strings.Join(parts, "; ")
	}
	return string(raw)
}

// NewTopicID generates a caller-supplied topic key, matching the ids the
// course pages generate before posting.
func NewTopicID() string {
	return "topic_" + uuid.NewString()
}

// NewReplyID generates a caller-supplied reply key.
func NewReplyID() string {
	return "reply_" + uuid.NewString()
}

// Students

func (c *Client) Students(ctx context.Context, opts ListOptions) ([]student.Student, error) {
	v := url.Values{}
	opts.apply(v)
	students := []student.Student{}
	if err := c.do(ctx, http.MethodGet, "/api/students", v, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) Student(ctx context.Context, id string) (student.Student, error) {
	var stu student.Student
	err := c.do(ctx, http.MethodGet, "/api/students", url.Values{"student_id": {id}}, nil, &stu)
	return stu, err
}

func (c *Client) CreateStudent(ctx context.Context, ns student.NewStudent) (student.Student, error) {
	var stu student.Student
	err := c.do(ctx, http.MethodPost, "/api/students", nil, ns, &stu)
	return stu, err
}

func (c *Client) UpdateStudent(ctx context.Context, us student.UpdateStudent) (student.Student, error) {
	var stu student.Student
	err := c.do(ctx, http.MethodPut, "/api/students", nil, us, &stu)
	return stu, err
}

func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/students", url.Values{"student_id": {id}}, nil, nil)
}

func (c *Client) ChangePassword(ctx context.Context, cp student.ChangePassword) error {
	return c.do(ctx, http.MethodPost, "/api/students", url.Values{"action": {"change_password"}}, cp, nil)
}

// Assignments

func (c *Client) Assignments(ctx context.Context, opts ListOptions) ([]assignment.Assignment, error) {
	v := url.Values{"resource": {"assignments"}}
	opts.apply(v)
	assignments := []assignment.Assignment{}
	if err := c.do(ctx, http.MethodGet, "/api/assignments", v, nil, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *Client) Assignment(ctx context.Context, id int) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments", url.Values{"id": {strconv.Itoa(id)}}, nil, &a)
	return a, err
}

func (c *Client) CreateAssignment(ctx context.Context, na assignment.NewAssignment) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := c.do(ctx, http.MethodPost, "/api/assignments", nil, na, &a)
	return a, err
}

func (c *Client) UpdateAssignment(ctx context.Context, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := c.do(ctx, http.MethodPut, "/api/assignments", nil, ua, &a)
	return a, err
}

func (c *Client) DeleteAssignment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/assignments", url.Values{"id": {strconv.Itoa(id)}}, nil, nil)
}

func (c *Client) AssignmentComments(ctx context.Context, assignmentID int) ([]assignment.Comment, error) {
	v := url.Values{"resource": {"comments"}, "assignment_id": {strconv.Itoa(assignmentID)}}
	comments := []assignment.Comment{}
	if err := c.do(ctx, http.MethodGet, "/api/assignments", v, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) AddAssignmentComment(ctx context.Context, nc assignment.NewComment) (assignment.Comment, error) {
	var cmt assignment.Comment
	err := c.do(ctx, http.MethodPost, "/api/assignments", url.Values{"resource": {"comments"}}, nc, &cmt)
	return cmt, err
}

func (c *Client) DeleteAssignmentComment(ctx context.Context, id int) error {
	v := url.Values{"resource": {"comments"}, "id": {strconv.Itoa(id)}}
	return c.do(ctx, http.MethodDelete, "/api/assignments", v, nil, nil)
}

// Discussion

func (c *Client) Topics(ctx context.Context, opts ListOptions) ([]discussion.Topic, error) {
	v := url.Values{"resource": {"topics"}}
	opts.apply(v)
	topics := []discussion.Topic{}
	if err := c.do(ctx, http.MethodGet, "/api/discussion", v, nil, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) Topic(ctx context.Context, id string) (discussion.Topic, error) {
	var t discussion.Topic
	v := url.Values{"resource": {"topics"}, "topic_id": {id}}
	err := c.do(ctx, http.MethodGet, "/api/discussion", v, nil, &t)
	return t, err
}

// CreateTopic posts a new topic; a blank TopicID gets a generated key.
func (c *Client) CreateTopic(ctx context.Context, nt discussion.NewTopic) (discussion.Topic, error) {
	if nt.TopicID == "" {
		nt.TopicID = NewTopicID()
	}
	var t discussion.Topic
	err := c.do(ctx, http.MethodPost, "/api/discussion", url.Values{"resource": {"topics"}}, nt, &t)
	return t, err
}

func (c *Client) UpdateTopic(ctx context.Context, ut discussion.UpdateTopic) (discussion.Topic, error) {
	var t discussion.Topic
	err := c.do(ctx, http.MethodPut, "/api/discussion", url.Values{"resource": {"topics"}}, ut, &t)
	return t, err
}

func (c *Client) DeleteTopic(ctx context.Context, id string) error {
	v := url.Values{"resource": {"topics"}, "topic_id": {id}}
	return c.do(ctx, http.MethodDelete, "/api/discussion", v, nil, nil)
}

func (c *Client) Replies(ctx context.Context, topicID string) ([]discussion.Reply, error) {
	v := url.Values{"resource": {"replies"}, "topic_id": {topicID}}
	replies := []discussion.Reply{}
	if err := c.do(ctx, http.MethodGet, "/api/discussion", v, nil, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

// CreateReply posts a new reply; a blank ReplyID gets a generated key.
func (c *Client) CreateReply(ctx context.Context, nr discussion.NewReply) (discussion.Reply, error) {
	if nr.ReplyID == "" {
		nr.ReplyID = NewReplyID()
	}
	var r discussion.Reply
	err := c.do(ctx, http.MethodPost, "/api/discussion", url.Values{"resource": {"replies"}}, nr, &r)
	return r, err
}

func (c *Client) DeleteReply(ctx context.Context, id string) error {
	v := url.Values{"resource": {"replies"}, "reply_id": {id}}
	return c.do(ctx, http.MethodDelete, "/api/discussion", v, nil, nil)
}

// Weekly breakdown

func (c *Client) Weeks(ctx context.Context, opts ListOptions) ([]weekly.Week, error) {
	v := url.Values{"resource": {"weeks"}}
	opts.apply(v)
	weeks := []weekly.Week{}
	if err := c.do(ctx, http.MethodGet, "/api/weekly", v, nil, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

func (c *Client) Week(ctx context.Context, id int) (weekly.Week, error) {
	var w weekly.Week
	err := c.do(ctx, http.MethodGet, "/api/weekly", url.Values{"id": {strconv.Itoa(id)}}, nil, &w)
	return w, err
}

func (c *Client) CreateWeek(ctx context.Context, nw weekly.NewWeek) (weekly.Week, error) {
	var w weekly.Week
	err := c.do(ctx, http.MethodPost, "/api/weekly", nil, nw, &w)
	return w, err
}

func (c *Client) UpdateWeek(ctx context.Context, uw weekly.UpdateWeek) (weekly.Week, error) {
	var w weekly.Week
	err := c.do(ctx, http.MethodPut, "/api/weekly", nil, uw, &w)
	return w, err
}

func (c *Client) DeleteWeek(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/weekly", url.Values{"id": {strconv.Itoa(id)}}, nil, nil)
}

func (c *Client) WeekComments(ctx context.Context, weekID int) ([]weekly.Comment, error) {
	v := url.Values{"resource": {"comments"}, "week_id": {strconv.Itoa(weekID)}}
	comments := []weekly.Comment{}
	if err := c.do(ctx, http.MethodGet, "/api/weekly", v, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) AddWeekComment(ctx context.Context, nc weekly.NewComment) (weekly.Comment, error) {
	var cmt weekly.Comment
	err := c.do(ctx, http.MethodPost, "/api/weekly", url.Values{"resource": {"comments"}}, nc, &cmt)
	return cmt, err
}

func (c *Client) DeleteWeekComment(ctx context.Context, id int) error {
	v := url.Values{"resource": {"comments"}, "id": {strconv.Itoa(id)}}
	return c.do(ctx, http.MethodDelete, "/api/weekly", v, nil, nil)
}
