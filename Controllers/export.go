package Controllers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"Tasker/Models"
)

// ExportTasks writes the filtered task list as an Excel workbook. It
// accepts the same query parameters as GetTasks.
func (tc *TaskController) ExportTasks(c *fiber.Ctx) error {
	query, err := tc.buildTaskQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task_date format"})
	}

	tasks := []Models.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	buf, err := tasksToExcel(tasks)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Excel file"})
	}

	filename := fmt.Sprintf("tasks_export_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(buf.Bytes())
}

// tasksToExcel builds a workbook with a styled header row and one row per task
func tasksToExcel(tasks []Models.Task) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Tasks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Date Created", "Entity Name", "Task Type",
		"Task Time", "Contact Person", "Note", "Status",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, task := range tasks {
		row := rowIndex + 2 // Start from row 2 (after headers)

		values := []interface{}{
			task.ID,
			task.DateCreated.Format("2006-01-02 15:04:05"),
			task.EntityName,
			task.TaskType,
			task.TaskTime.Format("2006-01-02 15:04:05"),
			task.ContactPerson,
			task.Note,
			task.Status,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}

	return &buf, nil
}
