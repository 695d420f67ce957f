package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emrekoc/acadport/internal/app/controllers"
	"github.com/emrekoc/acadport/internal/app/models"
	"github.com/emrekoc/acadport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	subjectController *controllers.SubjectController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	parentController *controllers.ParentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Subject catalog: reads are open to all authenticated roles,
		// creation is restricted to admins and faculty
		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:id", subjectController.GetSubjectByID)

			subjectsWrite := subjects.Group("")
			subjectsWrite.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				subjectsWrite.POST("", subjectController.CreateSubject)
			}
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.POST("/users", adminController.RegisterUser)
			admin.GET("/users", adminController.GetAllUsers)
			admin.PUT("/users/role", adminController.AssignRole)
			admin.GET("/reevaluations", adminController.GetReevaluationRequests)
			admin.PUT("/reevaluations/:id", adminController.DecideReevaluation)
		}

		student := authenticated.Group("/student")
		student.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			student.POST("/enroll", studentController.Enroll)
			student.GET("/subjects", studentController.GetMySubjects)
			student.GET("/subjects/:id/content", studentController.GetSubjectContent)
			student.GET("/grades", studentController.GetMyGrades)
			student.GET("/attendance", studentController.GetMyAttendance)
			student.GET("/timetable", studentController.GetMyTimetable)
			student.POST("/reevaluations", studentController.SubmitReevaluation)
		}

		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			faculty.GET("/students", facultyController.GetMyStudents)
			faculty.POST("/grades", facultyController.RecordGrade)
			faculty.POST("/grades/finalize", facultyController.FinalizeGrades)
			faculty.POST("/attendance", facultyController.MarkAttendance)
			faculty.POST("/content", facultyController.CreateContent)
			faculty.PUT("/content/:id", facultyController.UpdateContent)
			faculty.DELETE("/content/:id", facultyController.DeleteContent)
			faculty.GET("/subjects/:id/content", facultyController.GetSubjectContent)
		}

		parent := authenticated.Group("/parent")
		parent.Use(authMiddleware.RoleRequired(models.RoleParent))
		{
			parent.GET("/subjects", parentController.GetChildSubjects)
			parent.GET("/grades", parentController.GetChildGrades)
			parent.GET("/attendance", parentController.GetChildAttendance)
			parent.GET("/timetable", parentController.GetChildTimetable)
		}
	}
}
