package services

import (
	"errors"
	"testing"
	"time"

	"tasknest/tasknest/models"
	"tasknest/tasknest/testutils"

	"github.com/stretchr/testify/assert"
)

func TestCreateTodo_DefaultsCompletedFalse(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	todo, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: "Buy milk"})
	assert.NoError(t, err)
	assert.NotZero(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())
}

func TestCreateTodo_MissingTitle(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	_, err := todoService.CreateTodo(db, models.CreateTodoInput{})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = todoService.CreateTodo(db, models.CreateTodoInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	var count int64
	assert.NoError(t, db.DB.Model(&models.Todo{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateTodo_IDsStrictlyIncrease(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	var lastID uint
	for _, title := range []string{"first", "second", "third"} {
		todo, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: title})
		assert.NoError(t, err)
		assert.Greater(t, todo.ID, lastID)
		lastID = todo.ID
	}
}

func TestGetTodos_OrderedByCreatedAtDescending(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order on purpose.
	rows := []models.Todo{
		{Title: "middle", CreatedAt: base.Add(time.Hour)},
		{Title: "oldest", CreatedAt: base},
		{Title: "newest", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range rows {
		assert.NoError(t, db.DB.Create(&rows[i]).Error)
	}

	todoService := &TodoService{}
	todos, err := todoService.GetTodos(db)
	assert.NoError(t, err)
	assert.Len(t, todos, 3)
	assert.Equal(t, "newest", todos[0].Title)
	assert.Equal(t, "middle", todos[1].Title)
	assert.Equal(t, "oldest", todos[2].Title)
}

func TestGetTodos_EmptyTable(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	todos, err := todoService.GetTodos(db)
	assert.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Len(t, todos, 0)
}

func TestGetTodoById_NotFound(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	_, err := todoService.GetTodoById(db, 42)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestUpdateTodo_CompletedOnlyPreservesTitle(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	created, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: "Water plants"})
	assert.NoError(t, err)

	completed := true
	updated, err := todoService.UpdateTodo(db, created.ID, models.UpdateTodoInput{Completed: &completed})
	assert.NoError(t, err)
	assert.Equal(t, "Water plants", updated.Title)
	assert.True(t, updated.Completed)

	stored, err := todoService.GetTodoById(db, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Water plants", stored.Title)
	assert.True(t, stored.Completed)
}

func TestUpdateTodo_TitleOnlyPreservesCompleted(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	created, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: "Old title"})
	assert.NoError(t, err)

	completed := true
	_, err = todoService.UpdateTodo(db, created.ID, models.UpdateTodoInput{Completed: &completed})
	assert.NoError(t, err)

	title := "New title"
	updated, err := todoService.UpdateTodo(db, created.ID, models.UpdateTodoInput{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.True(t, updated.Completed)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	title := "anything"
	_, err := todoService.UpdateTodo(db, 42, models.UpdateTodoInput{Title: &title})
	assert.ErrorIs(t, err, ErrTodoNotFound)

	var count int64
	assert.NoError(t, db.DB.Model(&models.Todo{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteTodo_ThenGetNotFound(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	created, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: "Take out trash"})
	assert.NoError(t, err)

	assert.NoError(t, todoService.DeleteTodo(db, created.ID))

	_, err = todoService.GetTodoById(db, created.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestDeleteTodo_NotFoundLeavesStateAlone(t *testing.T) {
	db, close := testutils.SetupSQLiteDB()
	defer close()

	todoService := &TodoService{}
	_, err := todoService.CreateTodo(db, models.CreateTodoInput{Title: "Keep me"})
	assert.NoError(t, err)

	assert.ErrorIs(t, todoService.DeleteTodo(db, 42), ErrTodoNotFound)

	var count int64
	assert.NoError(t, db.DB.Model(&models.Todo{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetTodos_DatabaseError(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "todos" ORDER BY created_at DESC`).
		WillReturnError(errors.New("relation \"todos\" does not exist"))

	todoService := &TodoService{}
	_, err := todoService.GetTodos(db)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
