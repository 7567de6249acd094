package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tasknest/tasknest/config"
	"tasknest/tasknest/database"
	"tasknest/tasknest/models"
	"tasknest/tasknest/services"

	"github.com/gin-gonic/gin"
)

func RegisterTodoRoutes(router *gin.Engine, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	router.POST("/todos", func(c *gin.Context) { CreateTodo(c, cfg, acquirer, todoService) })
	router.GET("/todos", func(c *gin.Context) { GetTodos(c, cfg, acquirer, todoService) })
	router.GET("/todos/:id", func(c *gin.Context) { GetTodoById(c, cfg, acquirer, todoService) })
	router.PUT("/todos/:id", func(c *gin.Context) { UpdateTodo(c, cfg, acquirer, todoService) })
	router.DELETE("/todos/:id", func(c *gin.Context) { DeleteTodo(c, cfg, acquirer, todoService) })
}

// acquireDB opens the request-scoped connection. On failure it writes the
// 500 response itself; the caller just returns.
func acquireDB(c *gin.Context, cfg config.Config, acquirer *database.Acquirer) (*database.Database, bool) {
	db, err := acquirer.Acquire(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database connection failed"})
		return nil, false
	}
	return db, true
}

// parseTodoID treats a non-numeric id as not found: no such row can exist.
func parseTodoID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrTodoNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func CreateTodo(c *gin.Context, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	var input models.CreateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate before touching the database so a bad request never pays
	// for a connection.
	if strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrTitleRequired.Error()})
		return
	}

	db, ok := acquireDB(c, cfg, acquirer)
	if !ok {
		return
	}
	defer db.Close()

	todo, err := todoService.CreateTodo(db, input)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func GetTodos(c *gin.Context, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	db, ok := acquireDB(c, cfg, acquirer)
	if !ok {
		return
	}
	defer db.Close()

	todos, err := todoService.GetTodos(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todos)
}

func GetTodoById(c *gin.Context, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	db, ok := acquireDB(c, cfg, acquirer)
	if !ok {
		return
	}
	defer db.Close()

	todo, err := todoService.GetTodoById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todo)
}

func UpdateTodo(c *gin.Context, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	var input models.UpdateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db, ok := acquireDB(c, cfg, acquirer)
	if !ok {
		return
	}
	defer db.Close()

	todo, err := todoService.UpdateTodo(db, id, input)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todo)
}

func DeleteTodo(c *gin.Context, cfg config.Config, acquirer *database.Acquirer, todoService services.TodoServiceInterface) {
	id, ok := parseTodoID(c)
	if !ok {
		return
	}

	db, ok := acquireDB(c, cfg, acquirer)
	if !ok {
		return
	}
	defer db.Close()

	if err := todoService.DeleteTodo(db, id); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
