package Controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Tasker/Models"
)

// TaskController handles the task CRUD API endpoints
type TaskController struct {
	DB *gorm.DB
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// CreateTaskInput is the JSON payload for POST /api/tasks. Field order
// matters: required checks report the first missing field.
type CreateTaskInput struct {
	EntityName    string `json:"entity_name" validate:"required"`
	TaskType      string `json:"task_type" validate:"required"`
	TaskTime      string `json:"task_time" validate:"required"`
	ContactPerson string `json:"contact_person" validate:"required"`
	Note          string `json:"note"`
}

// UpdateTaskInput is the JSON payload for PUT /api/tasks/:id. Pointer
// fields distinguish "absent, leave unchanged" from a submitted value.
type UpdateTaskInput struct {
	EntityName    *string `json:"entity_name"`
	TaskType      *string `json:"task_type"`
	TaskTime      *string `json:"task_time"`
	ContactPerson *string `json:"contact_person"`
	Note          *string `json:"note"`
	Status        *string `json:"status"`
}

// StatusUpdateInput is the JSON payload for PATCH /api/tasks/:id/status
type StatusUpdateInput struct {
	Status *string `json:"status"`
}

var errInvalidTaskDate = errors.New("invalid task_date")

// buildTaskQuery applies the list filters and ordering from the request's
// query parameters. Blank or whitespace-only values are ignored; all
// filters are combined with AND, the search term across its four columns
// with OR.
func (tc *TaskController) buildTaskQuery(c *fiber.Ctx) (*gorm.DB, error) {
	query := tc.DB.Model(&Models.Task{})

	if v := strings.TrimSpace(c.Query("entity_name")); v != "" {
		query = query.Where("LOWER(entity_name) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(c.Query("task_type")); v != "" {
		query = query.Where("task_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		query = query.Where("status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("contact_person")); v != "" {
		query = query.Where("LOWER(contact_person) LIKE ?", "%"+strings.ToLower(v)+"%")
	}
	if v := strings.TrimSpace(c.Query("task_date")); v != "" {
		day, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			return nil, errInvalidTaskDate
		}
		query = query.Where("task_time >= ? AND task_time < ?", day, day.AddDate(0, 0, 1))
	}
	if v := strings.TrimSpace(c.Query("search_term")); v != "" {
		pattern := "%" + strings.ToLower(v) + "%"
		query = query.Where(
			"LOWER(entity_name) LIKE ? OR LOWER(task_type) LIKE ? OR LOWER(contact_person) LIKE ? OR LOWER(note) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	column, ok := Models.SortColumns[c.Query("sort_by", "date_created")]
	if !ok {
		column = "date_created"
	}
	direction := "asc"
	if c.Query("sort_order", "desc") == "desc" {
		direction = "desc"
	}

	return query.Order(column + " " + direction), nil
}

// GetTasks retrieves all tasks matching the query filters, sorted
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	query, err := tc.buildTaskQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task_date format"})
	}

	tasks := []Models.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	return c.JSON(tasks)
}

// CreateTask creates a new task with status open
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	// Single wall-clock read per request
	now := time.Now().UTC()

	var input CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": firstValidationError(err)})
	}

	taskTime, err := parseTaskTime(input.TaskTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task_time format"})
	}
	if taskTime.Before(now) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Task due time cannot be in the past"})
	}

	task := Models.Task{
		DateCreated:   now,
		EntityName:    input.EntityName,
		TaskType:      input.TaskType,
		TaskTime:      taskTime,
		ContactPerson: input.ContactPerson,
		Note:          input.Note,
		Status:        Models.StatusOpen,
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask overwrites the submitted fields of an existing task. All
// validation happens before the row is written, so a rejected update
// leaves the task untouched.
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	now := time.Now().UTC()

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input UpdateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if input.EntityName != nil {
		task.EntityName = *input.EntityName
	}
	if input.TaskType != nil {
		task.TaskType = *input.TaskType
	}
	if input.TaskTime != nil {
		taskTime, err := parseTaskTime(*input.TaskTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task_time format"})
		}
		if taskTime.Before(now) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Task due time cannot be in the past"})
		}
		task.TaskTime = taskTime
	}
	if input.ContactPerson != nil {
		task.ContactPerson = *input.ContactPerson
	}
	if input.Note != nil {
		task.Note = *input.Note
	}
	if input.Status != nil {
		if !Models.ValidStatus(*input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be open or closed"})
		}
		task.Status = *input.Status
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}

	return c.JSON(task)
}

// UpdateTaskStatus flips a task between open and closed
func (tc *TaskController) UpdateTaskStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input StatusUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if input.Status == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required"})
	}
	if !Models.ValidStatus(*input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be open or closed"})
	}

	task.Status = *input.Status
	if err := tc.DB.Save(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task status"})
	}

	return c.JSON(task)
}

// DeleteTask permanently removes a task
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := tc.DB.First(&task, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	if err := tc.DB.Delete(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete task"})
	}

	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}

// GetTaskTypes returns the distinct task types currently in use
func (tc *TaskController) GetTaskTypes(c *fiber.Ctx) error {
	types := []string{}
	if err := tc.DB.Model(&Models.Task{}).Distinct().Pluck("task_type", &types).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve task types"})
	}

	return c.JSON(types)
}

// GetContactPersons returns the distinct contact persons currently in use
func (tc *TaskController) GetContactPersons(c *fiber.Ctx) error {
	contacts := []string{}
	if err := tc.DB.Model(&Models.Task{}).Distinct().Pluck("contact_person", &contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve contact persons"})
	}

	return c.JSON(contacts)
}
