package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anup/resultportal/internal/app/controllers"
	"github.com/anup/resultportal/internal/middleware"
)

// SetupRouter configures all application routes. The public endpoints
// are an explicit allow-list: only authenticate and signup are
// registered outside the session-gated groups, so a newly added
// endpoint is protected unless someone deliberately moves it out.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	accountController *controllers.AccountController,
	studentController *controllers.StudentController,
	marksheetController *controllers.MarksheetController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	api := router.Group("/api")

	// --- Public endpoints ---
	api.POST("/user/authenticate", authController.Authenticate)
	api.POST("/user/signup", accountController.Signup)

	// --- Session-gated endpoints ---
	gated := api.Group("")
	gated.Use(sessionMiddleware.RequireSession())

	user := gated.Group("/user")
	{
		user.POST("/logout", authController.Logout)
		user.POST("/adduser", accountController.Add)
		user.GET("/searchuser", accountController.Search)
		user.GET("/getuser/:id", accountController.GetByID)
		user.POST("/updateuser/:id", accountController.Update)
		user.POST("/deleteuser/:id", accountController.Delete)
	}

	student := gated.Group("/student")
	{
		student.POST("/addstudent", studentController.Add)
		student.GET("/searchstudent", studentController.Search)
		student.GET("/getstudent/:id", studentController.GetByID)
		student.POST("/updatestudent/:id", studentController.Update)
		student.POST("/deletestudent/:id", studentController.Delete)
	}

	marksheet := gated.Group("/marksheet")
	{
		marksheet.POST("/addMarksheet", marksheetController.Add)
		marksheet.GET("/searchMarksheet", marksheetController.Search)
		marksheet.GET("/getMarksheet/:id", marksheetController.GetByID)
		marksheet.POST("/updateMarksheet/:id", marksheetController.Update)
		marksheet.POST("/deleteMarksheet/:id", marksheetController.Delete)
		marksheet.GET("/getMeritList", marksheetController.GetMeritList)
	}
}
