package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contact_service/internal/auth"
	"contact_service/internal/lib/logger/sl"
	"contact_service/internal/service"
	"contact_service/internal/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	serviceLayer service.Service
	log          *slog.Logger
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewHandler(srvc service.Service, lgr *slog.Logger, jwtSecret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		serviceLayer: srvc,
		log:          lgr,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

type errorResponse struct {
	Msg string `json:"msg"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func newErrorResponse(c *gin.Context, statusCode int, errMessage string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Msg: errMessage})
}

func newValidationResponse(c *gin.Context, errs map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": errs})
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.log))

	router.GET("/", h.Welcome)

	api := router.Group("/api")
	{
		api.POST("/users", h.Register)
		api.POST("/auth", h.Login)
		api.GET("/auth", AuthMiddleware(h.jwtSecret), h.CurrentUser)

		contacts := api.Group("/contacts", AuthMiddleware(h.jwtSecret))
		{
			contacts.GET("", h.ListContacts)
			contacts.POST("", h.CreateContact)
			contacts.PUT("/:id", h.UpdateContact)
			contacts.DELETE("/:id", h.DeleteContact)
		}
	}

	return router
}

// GET /
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Welcome to the ContactKeeper API"})
}

// POST /api/users
func (h *Handler) Register(c *gin.Context) {
	const op = "handler.Register"

	log := h.log.With(slog.String("op", op))

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to read request body", sl.Err(err))

		newErrorResponse(c, http.StatusBadRequest, "invalid request body")

		return
	}

	v := validator.New()
	validator.ValidateRegisterInput(v, req.Name, req.Email, req.Password)
	if !v.Valid() {
		newValidationResponse(c, v.Errors)

		return
	}

	userID, err := h.serviceLayer.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			newErrorResponse(c, http.StatusBadRequest, "User already exists")

			return
		}
		log.Error("failed to register user", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	token, err := auth.GenerateJWT(userID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// POST /api/auth
func (h *Handler) Login(c *gin.Context) {
	const op = "handler.Login"

	log := h.log.With(slog.String("op", op))

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to read request body", sl.Err(err))

		newErrorResponse(c, http.StatusBadRequest, "invalid request body")

		return
	}

	v := validator.New()
	validator.ValidateLoginInput(v, req.Email, req.Password)
	if !v.Valid() {
		newValidationResponse(c, v.Errors)

		return
	}

	userID, err := h.serviceLayer.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid Credentials")

			return
		}
		log.Error("failed to login user", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	token, err := auth.GenerateJWT(userID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// GET /api/auth
func (h *Handler) CurrentUser(c *gin.Context) {
	const op = "handler.CurrentUser"

	log := h.log.With(slog.String("op", op))

	userID, ok := userIDFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "Token is not valid")

		return
	}

	user, err := h.serviceLayer.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to get user by id", slog.String("user_id", userID.String()), sl.Err(err))

		newErrorResponse(c, http.StatusInternalServerError, "Server Error")

		return
	}

	c.JSON(http.StatusOK, user)
}
