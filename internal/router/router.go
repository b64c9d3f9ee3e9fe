package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/niloykhan002/life-stream-server/internal/handlers"
	"github.com/niloykhan002/life-stream-server/internal/middleware"
)

// New builds the gin engine with every route registered. The middleware
// chain is always token verification first, then the role gate where one
// applies, then the handler.
func New(h *handlers.Handler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	verify := middleware.VerifyToken(h.Secret)
	admin := middleware.RequireAdmin(h)
	volunteer := middleware.RequireVolunteer(h)

	r.GET("/", h.Health)
	r.POST("/jwt", h.IssueToken)

	// Users
	r.POST("/users", h.CreateUser)
	r.GET("/users", verify, admin, h.ListUsers)
	r.GET("/users/admin/:email", verify, h.CheckAdmin)
	r.GET("/users/volunteer/:email", verify, h.CheckVolunteer)
	r.GET("/users/donors", h.ListDonors)
	r.GET("/user", verify, h.GetUserByEmail)
	r.PATCH("/users/:id", verify, h.UpdateProfile)
	r.PATCH("/all-users/:id", verify, admin, h.UpdateUserAccess)

	// Donation requests
	r.POST("/donations", h.CreateDonation)
	r.GET("/donations/limit", verify, h.RecentDonations)
	r.GET("/donations", verify, h.ListDonations)
	r.GET("/all-donations", verify, admin, h.ListAllDonations)
	r.GET("/all-donations/volunteer", verify, volunteer, h.ListAllDonations)
	r.GET("/all-pending", h.ListPendingDonations)
	r.GET("/donations/:id", verify, h.GetDonation)
	r.PATCH("/donations/:id", verify, h.UpdateDonationStatus)
	r.PUT("/donations/:id", verify, h.ReplaceDonation)
	r.DELETE("/donations/:id", verify, h.DeleteDonation)

	// Blogs
	r.POST("/blogs", h.CreateBlog)
	r.GET("/blogs", h.ListBlogs)
	r.GET("/blogs/:id", h.GetBlog)
	r.PATCH("/blogs/:id", verify, admin, h.UpdateBlogStatus)
	r.DELETE("/blogs/:id", verify, admin, h.DeleteBlog)

	return r
}
