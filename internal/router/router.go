package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/todogo/backend/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	User   *apiHandler.UserHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task routes
	r.GET("/todos", handlers.Task.GetTasks)
	r.GET("/todos/{user_id}", handlers.Task.GetTasksByUser)
	r.POST("/tasks", handlers.Task.CreateTask)
	r.PATCH("/tasks/{id}", handlers.Task.SetCompletion)
	r.PATCH("/tasks/{id}/edit", handlers.Task.EditDescription)
	r.DELETE("/tasks/{id}", handlers.Task.DeleteTask)

	// User routes
	r.GET("/users", handlers.User.GetUsers)
	r.POST("/users/signup", handlers.User.Signup)
	r.POST("/users/login", handlers.User.Login)
	r.DELETE("/users/{id}", handlers.User.DeleteUser)

	return r
}
