package services

import (
	"errors"
	"strings"

	"tasknest/tasknest/database"
	"tasknest/tasknest/models"

	"gorm.io/gorm"
)

type TodoServiceInterface interface {
	CreateTodo(db *database.Database, input models.CreateTodoInput) (models.Todo, error)
	GetTodos(db *database.Database) ([]models.Todo, error)
	GetTodoById(db *database.Database, id uint) (models.Todo, error)
	UpdateTodo(db *database.Database, id uint, input models.UpdateTodoInput) (models.Todo, error)
	DeleteTodo(db *database.Database, id uint) error
}

type TodoService struct{}

func (s *TodoService) CreateTodo(db *database.Database, input models.CreateTodoInput) (models.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Todo{}, ErrTitleRequired
	}

	todo := models.Todo{
		Title: input.Title,
	}
	if err := db.DB.Create(&todo).Error; err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) GetTodos(db *database.Database) ([]models.Todo, error) {
	todos := []models.Todo{}
	if err := db.DB.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) GetTodoById(db *database.Database, id uint) (models.Todo, error) {
	var todo models.Todo
	if err := db.DB.First(&todo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}
	return todo, nil
}

// UpdateTodo reads the current row and writes back both mutable columns,
// keeping the stored value for any field omitted from the request.
func (s *TodoService) UpdateTodo(db *database.Database, id uint, input models.UpdateTodoInput) (models.Todo, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Todo{}, tx.Error
	}

	var todo models.Todo
	if err := tx.First(&todo, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}

	title := todo.Title
	if input.Title != nil {
		title = *input.Title
	}
	completed := todo.Completed
	if input.Completed != nil {
		completed = *input.Completed
	}

	if err := tx.Model(&todo).Updates(map[string]interface{}{
		"title":     title,
		"completed": completed,
	}).Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	todo.Title = title
	todo.Completed = completed
	return todo, nil
}

func (s *TodoService) DeleteTodo(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var todo models.Todo
	if err := tx.First(&todo, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	if err := tx.Delete(&todo).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

var TodoServiceInstance TodoServiceInterface = &TodoService{}
