package utils

import (
	"fmt"

	"eduverse/engine"
	"eduverse/models"

	"github.com/xuri/excelize/v2"
)

// BuildEnrollmentReport renders a spreadsheet of every enrollment with its
// user, course, progress, and certificate status, for the admin dashboard.
func BuildEnrollmentReport(snapshot engine.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"User", "Email", "Course", "Category", "Progress (%)", "Lessons Completed", "Total Lessons", "Certificate"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	usersByID := make(map[string]models.User, len(snapshot.Users))
	for _, u := range snapshot.Users {
		usersByID[u.ID] = u
	}
	coursesByID := make(map[string]models.Course, len(snapshot.Courses))
	for _, c := range snapshot.Courses {
		coursesByID[c.ID] = c
	}
	certified := make(map[string]bool, len(snapshot.Certificates))
	for _, cert := range snapshot.Certificates {
		certified[cert.UserID+"/"+cert.CourseID] = true
	}

	for row, e := range snapshot.Enrollments {
		user := usersByID[e.UserID]
		course := coursesByID[e.CourseID]
		hasCert := "No"
		if certified[e.UserID+"/"+e.CourseID] {
			hasCert = "Yes"
		}

		values := []interface{}{
			user.Name, user.Email, course.Title, course.Category,
			e.Progress, len(e.CompletedLessons), len(course.Lessons), hasCert,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write report cell %s: %w", cell, err)
			}
		}
	}

	return f, nil
}
