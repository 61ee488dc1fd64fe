package controllers

import (
	"time"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/pkg/resp"
	"github.com/cooper235/Canteen-project-sub000/repository"
	"github.com/cooper235/Canteen-project-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	Users     *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(users *repository.UserRepository, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	u := entity.User{
		Email:       req.Email,
		Password:    string(hash),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Role:        "customer",
	}
	if err := ac.Users.Create(&u); err != nil {
		resp.BadRequest(c, "email already registered")
		return
	}
	resp.Created(c, gin.H{"id": u.ID, "email": u.Email})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := ac.Users.FindByEmail(req.Email)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(u.ID, u.Role, ac.JWTSecret, ac.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": u})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, u)
}
