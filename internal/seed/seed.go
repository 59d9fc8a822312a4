package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/arjun/examhall/internal/app/models"
	appRepos "github.com/arjun/examhall/internal/app/repositories"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

var staffData = []appModels.Staff{
	{Name: "Dr. Anil Kumar", Department: "CSE", Designation: "Professor", IsAvailable: true},
	{Name: "Prof. Sneha Rao", Department: "CSE", Designation: "Asst. Professor", IsAvailable: true},
	{Name: "Dr. Rajesh Patil", Department: "ECE", Designation: "Professor", IsAvailable: true},
	{Name: "Prof. Meena Sharma", Department: "ECE", Designation: "Asst. Professor", IsAvailable: true},
	{Name: "Dr. Vikram Desai", Department: "MECH", Designation: "Professor", IsAvailable: true},
	{Name: "Prof. Priya Joshi", Department: "MECH", Designation: "Asst. Professor", IsAvailable: true},
	{Name: "Dr. Suresh Nair", Department: "CIVIL", Designation: "Professor", IsAvailable: true},
	{Name: "Prof. Kavita Iyer", Department: "CIVIL", Designation: "Asst. Professor", IsAvailable: true},
	{Name: "Dr. Ramesh Gupta", Department: "CSE", Designation: "HOD", IsAvailable: true},
	{Name: "Prof. Anita Kulkarni", Department: "ECE", Designation: "Asst. Professor", IsAvailable: true},
}

var classroomData = []appModels.Classroom{
	{RoomNumber: "A-101", Block: "BB", Capacity: 30},
	{RoomNumber: "A-102", Block: "BB", Capacity: 40},
	{RoomNumber: "A-103", Block: "BB", Capacity: 50},
	{RoomNumber: "B-201", Block: "IS", Capacity: 35},
	{RoomNumber: "B-202", Block: "IS", Capacity: 45},
	{RoomNumber: "B-203", Block: "IS", Capacity: 30},
	{RoomNumber: "C-301", Block: "EC", Capacity: 60},
	{RoomNumber: "C-302", Block: "EC", Capacity: 40},
}

var departments = []string{"CSE", "ISE", "AIML", "ECE"}

var deptCodes = map[string]string{
	"CSE":  "CS",
	"ISE":  "IS",
	"AIML": "AI",
	"ECE":  "EC",
}

// generateStudents produces 15 students per department per semester 1-6
// with 10-character USNs.
func generateStudents() []appModels.Student {
	var students []appModels.Student
	counter := 1
	for _, dept := range departments {
		code := deptCodes[dept]
		for sem := 1; sem <= 6; sem++ {
			for i := 1; i <= 15; i++ {
				students = append(students, appModels.Student{
					USN:        fmt.Sprintf("1DS21%s%03d", code, counter),
					Name:       fmt.Sprintf("Student %s-%d-%d", dept, sem, i),
					Semester:   sem,
					Department: dept,
				})
				counter++
			}
		}
	}
	return students
}

var examData = []appModels.Exam{
	{ExamName: "CIA-1 Feb 2026", Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), Semester: 3},
	{ExamName: "CIA-1 Feb 2026", Date: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), Semester: 5},
}

// CreateSampleData populates the database with sample staff, classrooms,
// students and exams. Records that already exist are skipped, so the seed
// is safe to run on every startup.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	staffRepo := appRepos.NewStaffRepository(dbPool)
	classroomRepo := appRepos.NewClassroomRepository(dbPool)
	examRepo := appRepos.NewExamRepository(dbPool)

	lgr.Info().Msg("Seeding sample data...")
	var finalErr error

	staffCount := 0
	existingStaff, err := staffRepo.GetAll(ctx)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if len(existingStaff) == 0 {
		for i := range staffData {
			staff := staffData[i]
			if err := staffRepo.Create(ctx, &staff); err != nil {
				lgr.Error().Err(err).Str("name", staff.Name).Msg("Error seeding staff member")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			staffCount++
		}
	}

	classroomCount := 0
	for i := range classroomData {
		classroom := classroomData[i]
		err := classroomRepo.Create(ctx, &classroom)
		if err != nil && !errors.Is(err, apperrors.ErrClassroomAlreadyExists) {
			lgr.Error().Err(err).Str("room", classroom.RoomNumber).Msg("Error seeding classroom")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err == nil {
			classroomCount++
		}
	}

	studentCount := 0
	for _, student := range generateStudents() {
		s := student
		err := studentRepo.Create(ctx, &s)
		if err != nil && !errors.Is(err, apperrors.ErrUSNAlreadyExists) {
			lgr.Error().Err(err).Str("usn", s.USN).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err == nil {
			studentCount++
		}
	}

	examCount := 0
	existingExams, err := examRepo.GetAll(ctx)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if len(existingExams) == 0 {
		for i := range examData {
			exam := examData[i]
			if err := examRepo.Create(ctx, &exam); err != nil {
				lgr.Error().Err(err).Str("exam", exam.ExamName).Msg("Error seeding exam")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			examCount++
		}
	}

	lgr.Info().
		Int("staff", staffCount).
		Int("classrooms", classroomCount).
		Int("students", studentCount).
		Int("exams", examCount).
		Msg("Sample data seeding complete")

	return finalErr
}
