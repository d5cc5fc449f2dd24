package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rfqdesk/internal/auth"
	"rfqdesk/internal/config"
	"rfqdesk/internal/handler"
	"rfqdesk/internal/middleware"
	"rfqdesk/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	rfqHandler *handler.RFQHandler,
	activityHandler *handler.ActivityHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/signin", authHandler.Signin)
	e.POST("/submitRfq", rfqHandler.Submit)

	// Protected routes: a valid bearer token that has not been signed out.
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), middleware.RejectRevoked(tokenStore))

	secured.POST("/signout", authHandler.Signout)
	secured.GET("/user", userHandler.GetProfile)
	secured.PUT("/updateuser", userHandler.UpdateProfile)

	// The client list is admin-only. Both verbs are served for compatibility
	// with existing dashboard callers.
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	secured.GET("/all", userHandler.ListClients, adminOnly)
	secured.PUT("/all", userHandler.ListClients, adminOnly)

	secured.GET("/myRfqs", rfqHandler.ListMine, middleware.RequireRoles(model.RoleClient))
	secured.GET("/getAllRFQS", rfqHandler.ListAll, adminOnly)
	secured.PATCH("/updateRFQStatus", rfqHandler.UpdateStatus, adminOnly)

	employeeOnly := middleware.RequireRoles(model.RoleEmployee)
	secured.GET("/assigned", rfqHandler.ListAssigned, employeeOnly)
	secured.GET("/activities", activityHandler.ListMine, employeeOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
