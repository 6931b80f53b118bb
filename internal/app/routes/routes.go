package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/controllers"
	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	directorController *controllers.DirectorController,
	instituteController *controllers.InstituteController,
	studentController *controllers.StudentController,
	hostelController *controllers.HostelController,
	roomController *controllers.RoomController,
	managerController *controllers.ManagerController,
	applicationController *controllers.ApplicationController,
	allocationController *controllers.AllocationController,
	paymentController *controllers.PaymentController,
	authMiddleware *middleware.AuthMiddleware,
	storagePath string,
) {
	registerCustomValidators()

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success:   true,
			Message:   "ok",
			Timestamp: time.Now(),
		})
	})

	// Stored hostel images are served straight from disk.
	router.Static("/uploads", storagePath)

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.RegisterStudent)
		auth.POST("/verify-email", authController.VerifyEmail)
		auth.POST("/resend-verification", authController.ResendVerification)
		auth.POST("/login/student", authController.LoginStudent)
		auth.POST("/login/admin", authController.LoginAdmin)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password/:uid/:token", authController.ResetPassword)
	}

	v1.POST("/director/register", directorController.RegisterDirector)

	institutes := v1.Group("/institutes")
	{
		institutes.GET("", instituteController.GetAllInstitutes)
		institutes.GET("/:id", instituteController.GetInstituteByID)
		institutes.GET("/:id/courses", instituteController.GetCourses)
	}
	courses := v1.Group("/courses")
	{
		courses.GET("/:id", instituteController.GetCourseByID)
		courses.GET("/:id/branches", instituteController.GetBranches)
	}
	v1.GET("/branches/:id", instituteController.GetBranchByID)

	// Hostel inventory is browsable without an account so applicants can
	// compare hostels before registering.
	v1.GET("/hostel/hostels", hostelController.ListHostels)
	v1.GET("/hostel/hostels/:id", hostelController.GetHostelByID)
	v1.GET("/hostel/rooms", roomController.ListRooms)
	v1.GET("/hostel/rooms/:id", roomController.GetRoomByID)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/auth/change-password", authController.ChangePassword)
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Institute hierarchy writes (director or admin; ownership is
		// re-checked in the services)
		hierarchyWrites := authenticated.Group("")
		hierarchyWrites.Use(authMiddleware.RoleRequired(models.RoleDirector, models.RoleAdmin))
		{
			hierarchyWrites.POST("/institutes", instituteController.CreateInstitute)
			hierarchyWrites.PUT("/institutes/:id", instituteController.UpdateInstitute)
			hierarchyWrites.POST("/institutes/:id/courses", instituteController.CreateCourse)
			hierarchyWrites.PUT("/courses/:id", instituteController.UpdateCourse)
			hierarchyWrites.DELETE("/courses/:id", instituteController.DeleteCourse)
			hierarchyWrites.POST("/courses/:id/branches", instituteController.CreateBranch)
			hierarchyWrites.PUT("/branches/:id", instituteController.UpdateBranch)
			hierarchyWrites.DELETE("/branches/:id", instituteController.DeleteBranch)
		}

		// Student profile
		students := authenticated.Group("/students")
		{
			students.GET("", authMiddleware.StaffRequired(), studentController.ListStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.PUT("/profile", authMiddleware.RoleRequired(models.RoleStudent), studentController.UpdateProfile)
		}

		hostel := authenticated.Group("/hostel")
		{
			// Hostel inventory writes
			hostelWrites := hostel.Group("")
			hostelWrites.Use(authMiddleware.RoleRequired(models.RoleDirector, models.RoleAdmin))
			{
				hostelWrites.POST("/hostels", hostelController.CreateHostel)
				hostelWrites.PUT("/hostels/:id", hostelController.UpdateHostel)
			}

			staff := hostel.Group("")
			staff.Use(authMiddleware.StaffRequired())
			{
				staff.POST("/hostels/:id/images", hostelController.UploadImage)
				staff.DELETE("/hostels/:id/images/:imageId", hostelController.DeleteImage)

				staff.POST("/hostels/:id/rooms", roomController.CreateRoom)
				staff.PUT("/rooms/:id", roomController.UpdateRoom)
				staff.DELETE("/rooms/:id", roomController.DeleteRoom)

				staff.GET("/managers", managerController.ListManagers)
				staff.GET("/managers/:id", managerController.GetManagerByID)

				staff.PATCH("/applications/:id/status", applicationController.ReviewApplication)

				staff.POST("/allocations", allocationController.Allocate)
				staff.POST("/allocations/:id/deallocate", allocationController.Deallocate)
			}

			managerAdmin := hostel.Group("/managers")
			managerAdmin.Use(authMiddleware.RoleRequired(models.RoleDirector, models.RoleAdmin))
			{
				managerAdmin.POST("", managerController.CreateManager)
				managerAdmin.POST("/:id/assign", managerController.AssignHostel)
				managerAdmin.DELETE("/:id", managerController.EndAssignment)
			}

			applications := hostel.Group("/applications")
			{
				applications.POST("", authMiddleware.RoleRequired(models.RoleStudent), applicationController.SubmitApplication)
				applications.GET("", applicationController.ListApplications)
				applications.GET("/:id", applicationController.GetApplicationByID)
				applications.POST("/:id/cancel", authMiddleware.RoleRequired(models.RoleStudent), applicationController.CancelApplication)
			}

			allocations := hostel.Group("/allocations")
			{
				allocations.GET("", allocationController.ListAllocations)
				allocations.GET("/:id", allocationController.GetAllocationByID)
			}
		}

		payments := authenticated.Group("/payments")
		{
			payments.POST("", authMiddleware.StaffRequired(), paymentController.CreatePayment)
			payments.GET("", paymentController.ListPayments)
			payments.GET("/:id", paymentController.GetPaymentByID)
			payments.PATCH("/:id/status", authMiddleware.StaffRequired(), paymentController.UpdatePaymentStatus)
		}
	}
}
