package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mokoena/studenthub/internal/app/controllers"
	"github.com/mokoena/studenthub/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
	programmeController *controllers.ProgrammeController,
	moduleController *controllers.ModuleController,
	studentController *controllers.StudentController,
	enrolmentController *controllers.EnrolmentController,
	analyticsController *controllers.AnalyticsController,
	realtimeHandler *websocket.Handler,
) {
	api := router.Group("/api")

	// Health check used by deploy probes
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	faculties := api.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
		faculties.GET("/:id", facultyController.GetFacultyByID)
		faculties.POST("", facultyController.CreateFaculty)
		faculties.PUT("/:id", facultyController.UpdateFaculty)
		faculties.DELETE("/:id", facultyController.DeleteFaculty)
	}

	programmes := api.Group("/programmes")
	{
		programmes.GET("", programmeController.GetProgrammes)
		programmes.GET("/:id", programmeController.GetProgrammeByID)
		programmes.POST("", programmeController.CreateProgramme)
		programmes.PUT("/:id", programmeController.UpdateProgramme)
	}

	modules := api.Group("/modules")
	{
		modules.GET("", moduleController.GetModules)
		modules.GET("/:id", moduleController.GetModuleByID)
		modules.POST("", moduleController.CreateModule)
		modules.PUT("/:id", moduleController.UpdateModule)
		modules.DELETE("/:id", moduleController.DeactivateModule)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
	}

	enrolments := api.Group("/enrolments")
	{
		enrolments.GET("", enrolmentController.GetEnrolments)
		enrolments.GET("/:id", enrolmentController.GetEnrolmentByID)
		enrolments.POST("", enrolmentController.CreateEnrolment)
		enrolments.PUT("/:id", enrolmentController.UpdateEnrolment)
	}

	api.GET("/analytics", analyticsController.GetAnalytics)

	// WebSocket upgrade endpoint for live analytics and change events
	api.GET("/realtime", realtimeHandler.HandleConnection)
}
