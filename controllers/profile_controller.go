package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/emre/event-discovery-go/config"
	models "github.com/emre/event-discovery-go/models"
	utils "github.com/emre/event-discovery-go/utils"
)

// ---------------- GET PROFILE ----------------
func GetProfile(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")
		userID, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		var user models.User
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("users").
			FindOne(ctx, bson.M{"_id": userID}).
			Decode(&user)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// ---------------- UPDATE PROFILE ----------------
func UpdateProfile(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")
		userID, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		// ✅ Bind input (form-data for mixed text + avatar upload)
		var input struct {
			Username string `form:"username"`
			Bio      string `form:"bio"`
			Phone    string `form:"phone"`
			City     string `form:"city"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updated_at": time.Now()}
		if input.Username != "" {
			update["username"] = input.Username
		}
		if input.Bio != "" {
			update["bio"] = input.Bio
		}
		if input.Phone != "" {
			update["phone"] = input.Phone
		}
		if input.City != "" {
			update["city"] = input.City
		}

		// ✅ Handle avatar upload
		form, _ := c.MultipartForm()
		if form != nil {
			files := form.File["avatar"] // key = "avatar"
			if len(files) > 0 {
				file, err := files[0].Open()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open avatar"})
					return
				}
				url, err := utils.UploadAvatarToCloudinary(file, files[0])
				file.Close()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar upload failed", "details": err.Error()})
					return
				}
				update["avatar_url"] = url
			}
		}

		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("users")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": update}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
			return
		}

		var updated models.User
		if err := col.FindOne(ctx, bson.M{"_id": userID}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve updated profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "profile updated successfully",
			"user":    updated,
		})
	}
}
