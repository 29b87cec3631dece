package controllers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"shakwa-be/config"
	"shakwa-be/locale"
	"shakwa-be/models"
	"shakwa-be/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Media is the media helper wired in from main. Kept as a package variable
// so handlers stay plain functions.
var Media *storage.MediaHelper

const minDescriptionLen = 20

func complaintsCol() *mongo.Collection {
	return config.GetCollection("complaints")
}

// ComplaintInput carries the complaint form fields.
type ComplaintInput struct {
	Name        string
	Email       string
	Governorate string
	Ministry    string
	Description string
	Latitude    *float64
	Longitude   *float64
}

// ValidateComplaintInput applies the form rules and returns field-level
// Arabic messages. An empty map means the form is valid.
func ValidateComplaintInput(input ComplaintInput) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = locale.MsgNameRequired
	}

	if input.Email == "" {
		errs["email"] = locale.MsgEmailRequired
	} else if !emailPattern.MatchString(input.Email) {
		errs["email"] = locale.MsgInvalidEmail
	}

	if input.Governorate == "" {
		errs["governorate"] = locale.MsgGovernorateRequired
	} else if !models.IsValidGovernorate(input.Governorate) {
		errs["governorate"] = locale.MsgGovernorateInvalid
	}

	if input.Ministry == "" {
		errs["ministry"] = locale.MsgMinistryRequired
	} else if !models.IsValidMinistry(input.Ministry) {
		errs["ministry"] = locale.MsgMinistryInvalid
	}

	desc := strings.TrimSpace(input.Description)
	if desc == "" {
		errs["description"] = locale.MsgDescriptionRequired
	} else if len([]rune(desc)) < minDescriptionLen {
		errs["description"] = locale.MsgDescriptionTooShort
	}

	if input.Latitude == nil || input.Longitude == nil {
		errs["location"] = locale.MsgLocationRequired
	}

	return errs
}

// SortComplaintsNewest orders complaints newest first. Records without a
// creation timestamp compare equal to everything, so the stable sort leaves
// them where they are instead of pushing them to either end.
func SortComplaintsNewest(complaints []models.Complaint) {
	sort.SliceStable(complaints, func(i, j int) bool {
		a, b := complaints[i].CreatedAt, complaints[j].CreatedAt
		if a.IsZero() || b.IsZero() {
			return false
		}
		return a.After(b)
	})
}

func parseCoordinate(c *gin.Context, field string) *float64 {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CreateComplaint handles complaint submission: validate the form, resolve
// media, then write exactly one complaint record. Any media failure aborts
// the whole submission before anything is persisted.
func CreateComplaint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	input := ComplaintInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Governorate: c.PostForm("governorate"),
		Ministry:    c.PostForm("ministry"),
		Description: c.PostForm("description"),
		Latitude:    parseCoordinate(c, "latitude"),
		Longitude:   parseCoordinate(c, "longitude"),
	}

	if errs := ValidateComplaintInput(input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	complaintID := models.GenerateComplaintID()

	var imageURL, videoURL *string

	if header, err := c.FormFile("image"); err == nil {
		data, err := readFormFile(header)
		if err != nil {
			log.Println("Error reading image upload:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgImageUploadFailed})
			return
		}
		url, err := Media.ResolveImage(c.Request.Context(), data, complaintID)
		if err != nil {
			log.Println("Image upload failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		imageURL = &url
	}

	if header, err := c.FormFile("video"); err == nil {
		if header.Size > storage.MaxVideoSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgVideoTooLarge})
			return
		}
		data, err := readFormFile(header)
		if err != nil {
			log.Println("Error reading video upload:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": locale.MsgVideoUploadFailed})
			return
		}
		url, err := Media.UploadVideo(c.Request.Context(), data, header.Filename, complaintID)
		if err != nil {
			log.Println("Video upload failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		videoURL = &url
	}

	complaint := models.Complaint{
		ID:          primitive.NewObjectID(),
		ComplaintID: complaintID,
		Name:        strings.TrimSpace(input.Name),
		Email:       input.Email,
		Governorate: input.Governorate,
		Ministry:    input.Ministry,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    imageURL,
		VideoURL:    videoURL,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Status:      models.StatusInReview,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := complaintsCol().InsertOne(ctx, complaint); err != nil {
		log.Println("Error inserting complaint:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgSubmitFailed})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"complaintId": complaint.ComplaintID,
		"status":      complaint.Status,
		"message":     locale.MsgSubmitOK,
	})
}

// GetMyComplaints returns the caller's complaint history, newest first.
// Records written before identities were linked carry no userId, so when the
// id query comes back empty we fall back to matching by the profile email.
func GetMyComplaints(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	complaints, err := findComplaints(ctx, bson.M{"userId": ownerID})
	if err != nil {
		log.Println("Error loading complaints:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgHistoryLoadFailed})
		return
	}

	if len(complaints) == 0 {
		var user models.User
		if err := usersCol().FindOne(ctx, bson.M{"_id": ownerID}).Decode(&user); err == nil && user.Email != "" {
			complaints, err = findComplaints(ctx, bson.M{"email": user.Email})
			if err != nil {
				log.Println("Error loading complaints by email:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": locale.MsgHistoryLoadFailed})
				return
			}
		}
	}

	SortComplaintsNewest(complaints)

	c.JSON(http.StatusOK, complaints)
}

func findComplaints(ctx context.Context, filter bson.M) ([]models.Complaint, error) {
	cursor, err := complaintsCol().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	complaints := make([]models.Complaint, 0)
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetComplaint returns one complaint, owner-scoped, with the status badge
// color the client renders in the detail view.
func GetComplaint(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ownerID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	docID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var complaint models.Complaint
	err = complaintsCol().FindOne(ctx, bson.M{"_id": docID, "userId": ownerID}).Decode(&complaint)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          complaint.ID,
		"complaintId": complaint.ComplaintID,
		"name":        complaint.Name,
		"email":       complaint.Email,
		"governorate": complaint.Governorate,
		"ministry":    complaint.Ministry,
		"description": complaint.Description,
		"imageUrl":    complaint.ImageURL,
		"videoUrl":    complaint.VideoURL,
		"latitude":    complaint.Latitude,
		"longitude":   complaint.Longitude,
		"status":      complaint.Status,
		"statusColor": locale.StatusColor(string(complaint.Status)),
		"createdAt":   complaint.CreatedAt,
	})
}
