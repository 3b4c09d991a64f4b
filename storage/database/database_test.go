package database

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseboard/core"
	"courseboard/core/assignment"
	"courseboard/core/discussion"
	"courseboard/core/student"
	"courseboard/core/weekly"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conf := &core.Config{}
	conf.Database.Path = ":memory:"
	db, err := Open(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestStudentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudentRepository(db)

	stu := student.Student{
		ID:           "S1",
		Name:         "Awa Traore",
		Email:        "awa@school.test",
		PasswordHash: []byte("not-a-real-hash"),
		CreatedAt:    time.Now().UTC(),
	}
	created, err := repo.CreateStudent(stu)
	require.NoError(t, err)
	assert.Equal(t, "S1", created.ID)

	// duplicate primary key
	_, err = repo.CreateStudent(stu)
	assert.Equal(t, student.ErrExists, err)

	// duplicate email under a new id
	dup := stu
	dup.ID = "S2"
	_, err = repo.CreateStudent(dup)
	assert.Equal(t, student.ErrEmailExists, err)

	got, err := repo.GetStudent("S1")
	require.NoError(t, err)
	assert.Equal(t, stu.Email, got.Email)
	assert.Equal(t, stu.PasswordHash, got.PasswordHash)

	_, err = repo.GetStudent("nope")
	assert.Equal(t, student.ErrNotFound, err)

	got.Name = "Awa T."
	updated, err := repo.UpdateStudent(got)
	require.NoError(t, err)
	assert.Equal(t, "Awa T.", updated.Name)

	require.NoError(t, repo.UpdateStudentPassword("S1", []byte("other-hash")))
	got, err = repo.GetStudent("S1")
	require.NoError(t, err)
	assert.Equal(t, []byte("other-hash"), got.PasswordHash)

	dup.Email = "other@school.test"
	_, err = repo.CreateStudent(dup)
	require.NoError(t, err)

	students, err := repo.QueryStudents(core.QueryFilter{
		Search:   "awa",
		Ordering: core.DBOrdering{Field: "student_id", Ascending: true},
	})
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "S1", students[0].ID)

	require.NoError(t, repo.DeleteStudent("S1"))
	assert.Equal(t, student.ErrNotFound, repo.DeleteStudent("S1"))
}

func TestAssignmentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssignmentRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	a, err := repo.CreateAssignment(assignment.Assignment{
		Title:       "Essay",
		Description: "Write about Go",
		DueDate:     "2024-02-29",
		Files:       []string{"brief.pdf"},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)

	got, err := repo.GetAssignment(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"brief.pdf"}, got.Files)

	_, err = repo.GetAssignment(999)
	assert.Equal(t, assignment.ErrNotFound, err)

	got.Files = nil
	updated, err := repo.UpdateAssignment(got)
	require.NoError(t, err)
	reloaded, err := repo.GetAssignment(updated.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, reloaded.Files) // never nil coming out of the store

	c, err := repo.CreateComment(assignment.Comment{
		AssignmentID: a.ID, Author: "S1", Text: "When is this due?", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	_, err = repo.CreateComment(assignment.Comment{AssignmentID: 999, Author: "S1", Text: "hi", CreatedAt: now})
	assert.Equal(t, assignment.ErrNotFound, err)

	comments, err := repo.QueryComments(a.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	// deleting the assignment removes its comments too
	require.NoError(t, repo.DeleteAssignment(a.ID))
	comments, err = repo.QueryComments(a.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.Equal(t, assignment.ErrNotFound, repo.DeleteAssignment(a.ID))
	assert.Equal(t, assignment.ErrCommentNotFound, repo.DeleteComment(c.ID))
}

func TestDiscussionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewDiscussionRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	topic := discussion.Topic{
		TopicID: "T1", Subject: "Exam prep", Message: "How to revise?", Author: "S1", CreatedAt: now,
	}
	_, err := repo.CreateTopic(topic)
	require.NoError(t, err)

	_, err = repo.CreateTopic(topic)
	assert.Equal(t, discussion.ErrTopicExists, err)

	_, err = repo.GetTopic("missing")
	assert.Equal(t, discussion.ErrTopicNotFound, err)

	topic.Subject = "Exam preparation"
	updated, err := repo.UpdateTopic(topic)
	require.NoError(t, err)
	assert.Equal(t, "Exam preparation", updated.Subject)

	reply := discussion.Reply{ReplyID: "R1", TopicID: "T1", Text: "Past papers", Author: "S2", CreatedAt: now}
	_, err = repo.CreateReply(reply)
	require.NoError(t, err)

	_, err = repo.CreateReply(reply)
	assert.Equal(t, discussion.ErrReplyExists, err)

	orphan := reply
	orphan.ReplyID = "R2"
	orphan.TopicID = "missing"
	_, err = repo.CreateReply(orphan)
	assert.Equal(t, discussion.ErrParentNotFound, err)

	replies, err := repo.QueryReplies("T1")
	require.NoError(t, err)
	assert.Len(t, replies, 1)

	topics, err := repo.QueryTopics(core.QueryFilter{
		Ordering: core.DBOrdering{Field: "created_at", Ascending: false},
	})
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	// cascade
	require.NoError(t, repo.DeleteTopic("T1"))
	replies, err = repo.QueryReplies("T1")
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.Equal(t, discussion.ErrReplyNotFound, repo.DeleteReply("R1"))
}

func TestWeeklyRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeeklyRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	w, err := repo.CreateWeek(weekly.Week{
		Title:       "Week 1",
		StartDate:   "2024-01-08",
		Description: "Introduction",
		Links:       []string{"https://example.test/slides"},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, w.ID)

	got, err := repo.GetWeek(w.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.test/slides"}, got.Links)

	_, err = repo.GetWeek(42)
	assert.Equal(t, weekly.ErrNotFound, err)

	c, err := repo.CreateComment(weekly.Comment{WeekID: w.ID, Author: "S1", Text: "Slides missing?", CreatedAt: now})
	require.NoError(t, err)

	_, err = repo.CreateComment(weekly.Comment{WeekID: 42, Author: "S1", Text: "hi", CreatedAt: now})
	assert.Equal(t, weekly.ErrNotFound, err)

	weeks, err := repo.QueryWeeks(core.QueryFilter{
		Ordering: core.DBOrdering{Field: "start_date", Ascending: true},
	})
	require.NoError(t, err)
	assert.Len(t, weeks, 1)

	require.NoError(t, repo.DeleteWeek(w.ID))
	comments, err := repo.QueryComments(w.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.Equal(t, weekly.ErrCommentNotFound, repo.DeleteComment(c.ID))
}
