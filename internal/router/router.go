package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"userhub/internal/config"
	"userhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	emailHandler *handler.EmailHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/user/:id", userHandler.GetUser)
	api.PATCH("/user/:id", userHandler.UpdateUser)
	api.PUT("/user/:id", userHandler.ReplaceUser)
	api.DELETE("/user/:id", userHandler.DeleteUser)
	api.POST("/login", authHandler.Login)
	api.POST("/send-email", emailHandler.SendEmail)

	// Secured routes (require JWT authentication). Missing, malformed,
	// expired and badly-signed tokens all collapse to the same 401.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	}))

	secured.POST("/change-password", authHandler.ChangePassword)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
