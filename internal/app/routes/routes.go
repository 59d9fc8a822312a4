package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/arjun/examhall/internal/app/controllers"
	"github.com/arjun/examhall/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	staffController *controllers.StaffController,
	classroomController *controllers.ClassroomController,
	examController *controllers.ExamController,
	allocationController *controllers.AllocationController,
	healthController *controllers.HealthController,
	allocationCache *cache.Cache,
	cacheTTL time.Duration,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthController.Check)

	// Student, staff and exam rows are joined into cached allocation
	// views, so edits to them invalidate the allocation cache. Classroom
	// edits do not: stored plans snapshot room details at generation.
	students := v1.Group("/students")
	students.Use(middleware.FlushOnWrite(allocationCache))
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	staff := v1.Group("/staff")
	staff.Use(middleware.FlushOnWrite(allocationCache))
	{
		staff.POST("", staffController.CreateStaff)
		staff.GET("", staffController.GetAllStaff)
		staff.GET("/:id", staffController.GetStaffByID)
		staff.PUT("/:id", staffController.UpdateStaff)
		staff.DELETE("/:id", staffController.DeleteStaff)
	}

	classrooms := v1.Group("/classrooms")
	{
		classrooms.POST("", classroomController.CreateClassroom)
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroomByID)
		classrooms.PUT("/:id", classroomController.UpdateClassroom)
		classrooms.DELETE("/:id", classroomController.DeleteClassroom)
	}

	exams := v1.Group("/exams")
	exams.Use(middleware.FlushOnWrite(allocationCache))
	{
		exams.POST("", examController.CreateExam)
		exams.GET("", examController.GetAllExams)
		exams.GET("/:id", examController.GetExamByID)
		exams.PUT("/:id", examController.UpdateExam)
		exams.DELETE("/:id", examController.DeleteExam)
	}

	// Seating plans are read often once generated, so reads are cached.
	// The cache middleware flushes the store on any mutating request.
	allocations := v1.Group("/allocations")
	allocations.Use(middleware.CacheGET(allocationCache, cacheTTL))
	{
		allocations.POST("/generate/:examId", allocationController.GenerateAllocation)
		allocations.GET("", allocationController.GetAllAllocations)
		allocations.GET("/exam/:examId", allocationController.GetAllocationByExam)
		allocations.DELETE("/:id", allocationController.DeleteAllocation)
	}
}
