package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"shakwa-be/config"
	"shakwa-be/locale"
	"shakwa-be/models"
	authUtils "shakwa-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func usersCol() *mongo.Collection {
	return config.GetCollection("users")
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignupInput is the registration payload.
type SignupInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Password   string `json:"password"`
}

// ValidateSignupInput applies the profile field rules and returns a map of
// field name to Arabic message for every violated rule.
func ValidateSignupInput(input SignupInput) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errs["name"] = locale.MsgNameRequired
	} else if len([]rune(name)) < 3 {
		errs["name"] = locale.MsgNameTooShort
	}

	if input.NationalID == "" {
		errs["nationalId"] = locale.MsgNationalIDMissing
	} else if !models.IsValidNationalID(input.NationalID) {
		errs["nationalId"] = locale.MsgNationalIDInvalid
	}

	if input.Phone == "" {
		errs["phone"] = locale.MsgPhoneMissing
	} else if !models.IsValidPhone(input.Phone) {
		errs["phone"] = locale.MsgPhoneInvalid
	}

	if input.Email == "" {
		errs["email"] = locale.MsgEmailRequired
	} else if !emailPattern.MatchString(input.Email) {
		errs["email"] = locale.MsgInvalidEmail
	}

	if input.Password == "" {
		errs["password"] = locale.MsgPasswordRequired
	} else if len(input.Password) < 6 {
		errs["password"] = locale.MsgWeakPassword
	}

	return errs
}

// RegisterUser handles user registration and creates the profile document
// with the default role.
func RegisterUser(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := ValidateSignupInput(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := usersCol().CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error checking existing user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgSignupFailed})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgEmailInUse})
		return
	}

	user := models.User{
		Name:       strings.TrimSpace(input.Name),
		Email:      input.Email,
		Phone:      input.Phone,
		NationalID: input.NationalID,
		Role:       models.DefaultRole,
		Password:   input.Password,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgSignupFailed})
		return
	}

	result, err := usersCol().InsertOne(ctx, user)
	if err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgSignupFailed})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        result.InsertedID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}

// LoginUser handles user login and sets the session cookie
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !emailPattern.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgInvalidEmail})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := usersCol().FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": locale.MsgUserNotFound})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": locale.MsgWrongPassword})
		return
	}

	token, err := authUtils.GenerateAndSetToken(user.ID.Hex())
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgInvalidCredentials})
		return
	}
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
		"createdAt": user.CreatedAt,
	})
}

// GetMe retrieves the authenticated user's profile. If the identity exists
// but no profile document does, one is created with the default role, the
// same bootstrap the mobile client performed on first sign-in.
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = usersCol().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		user = models.User{
			ID:        objectID,
			Role:      models.DefaultRole,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, insErr := usersCol().InsertOne(ctx, user); insErr != nil {
			log.Println("Error bootstrapping profile:", insErr)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": locale.MsgUserNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"nationalId": user.NationalID,
		"role":       user.Role,
		"createdAt":  user.CreatedAt,
	})
}

// LogoutUser handles user logout by clearing the auth_token cookie
func LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// ChangePassword re-verifies the current password before storing a new one.
func ChangePassword(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgWeakPassword})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := usersCol().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": locale.MsgUserNotFound})
		return
	}

	if !user.ComparePassword(input.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": locale.MsgWrongPassword})
		return
	}

	user.Password = input.NewPassword
	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	_, err = usersCol().UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"password": user.Password, "updatedAt": time.Now()},
	})
	if err != nil {
		log.Println("Error updating password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// DeleteAccount removes the user's profile after password re-verification.
// Complaints filed by the account are intentionally left in place.
func DeleteAccount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := usersCol().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": locale.MsgUserNotFound})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": locale.MsgWrongPassword})
		return
	}

	if _, err := usersCol().DeleteOne(ctx, bson.M{"_id": objectID}); err != nil {
		log.Println("Error deleting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	c.SetCookie("auth_token", "", -1, "/", os.Getenv("DOMAIN"), environment == "production", true)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
