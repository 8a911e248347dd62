package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/emre/event-discovery-go/config"
	filter "github.com/emre/event-discovery-go/filter"
	models "github.com/emre/event-discovery-go/models"
	utils "github.com/emre/event-discovery-go/utils"
)

// ---------------- CREATE ----------------
func CreateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Authenticated user ---
		uid := c.GetString("user_id")
		userID, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		// --- Bind form fields (numbers arrive as text, parsed below) ---
		var input struct {
			Title                string `form:"title" binding:"required"`
			Description          string `form:"description"`
			CategoryIDs          string `form:"category_ids"` // comma separated
			StartDate            string `form:"start_date" binding:"required"`
			EndDate              string `form:"end_date"`
			RegistrationDeadline string `form:"registration_deadline"`
			LocationName         string `form:"location_name"`
			AddressLine1         string `form:"address_line1"`
			AddressLine2         string `form:"address_line2"`
			City                 string `form:"city"`
			District             string `form:"district"`
			Latitude             string `form:"lat"`
			Longitude            string `form:"lng"`
			MaxParticipants      string `form:"max_participants"`
			ShowRemaining        bool   `form:"show_remaining"`
			AgeMin               string `form:"age_min"`
			AgeMax               string `form:"age_max"`
			OrganizerName        string `form:"organizer_name"`
			OrganizerEmail       string `form:"organizer_email"`
			OrganizerPhone       string `form:"organizer_phone"`
			OrganizerWebsite     string `form:"organizer_website"`
			Price                string `form:"price"`
			Currency             string `form:"currency"`
			Requirements         string `form:"requirements"`
			SocialLinks          string `form:"social_links"`
			ContactInfo          string `form:"contact_info"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// --- Parse dates and numbers at the input boundary ---
		startDate, err := filter.ParseDate(input.StartDate)
		if err != nil || startDate == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, use RFC3339 or YYYY-MM-DD"})
			return
		}
		endDate, err := filter.ParseDate(input.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := filter.CheckDateRange(startDate, endDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		deadline, err := filter.ParseDate(input.RegistrationDeadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		maxParticipants, err := filter.ParseCount(input.MaxParticipants)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ageMin, err := filter.ParseCount(input.AgeMin)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ageMax, err := filter.ParseCount(input.AgeMax)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := filter.CheckCountRange("age", ageMin, ageMax); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		price, err := filter.ParsePrice(input.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// --- Handle file uploads ---
		form, err := c.MultipartForm()
		if err != nil && err != http.ErrNotMultipart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
			return
		}

		var imageURLs []string
		if form != nil {
			files := form.File["images"] // key must be "images"
			for _, fileHeader := range files {
				file, err := fileHeader.Open()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
					return
				}

				url, err := utils.UploadToCloudinary(file, fileHeader)
				file.Close()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{
						"error":   "image upload failed",
						"details": err.Error(),
						"file":    fileHeader.Filename,
					})
					return
				}

				imageURLs = append(imageURLs, url)
			}
		}

		// --- Save event ---
		now := time.Now()
		event := models.Event{
			ID:                   primitive.NewObjectID(),
			CreatorID:            userID,
			Title:                input.Title,
			Description:          input.Description,
			CategoryIDs:          splitCSV(input.CategoryIDs),
			StartDate:            *startDate,
			EndDate:              endDate,
			RegistrationDeadline: deadline,
			Location: models.Location{
				Name:         input.LocationName,
				AddressLine1: input.AddressLine1,
				AddressLine2: input.AddressLine2,
				City:         input.City,
				District:     input.District,
				Latitude:     input.Latitude,
				Longitude:    input.Longitude,
			},
			Participants: models.Participants{
				ShowRemaining: input.ShowRemaining,
			},
			Organizer: models.Organizer{
				Name:    input.OrganizerName,
				Email:   input.OrganizerEmail,
				Phone:   input.OrganizerPhone,
				Website: input.OrganizerWebsite,
			},
			Pricing: models.Pricing{
				Currency: input.Currency,
			},
			Images:       imageURLs,
			Requirements: input.Requirements,
			SocialLinks:  input.SocialLinks,
			ContactInfo:  input.ContactInfo,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if maxParticipants != nil {
			event.Participants.Max = *maxParticipants
		}
		if price != nil {
			event.Pricing.Amount = *price
		}
		if ageMin != nil || ageMax != nil {
			event.AgeRestriction = &models.AgeRestriction{Min: ageMin, Max: ageMax}
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create event"})
			return
		}

		c.JSON(http.StatusCreated, event)
	}
}

// ---------------- LIST ----------------
func ListEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// --- Build filter ---
		mongoFilter := bson.M{}
		if q := c.Query("q"); q != "" {
			mongoFilter["title"] = bson.M{"$regex": q, "$options": "i"}
		}
		if mine := c.Query("mine"); mine == "true" {
			userID, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
				return
			}
			mongoFilter["creator_id"] = userID
		}

		// --- Fetch data ---
		cursor, err := col.Find(ctx, mongoFilter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
			return
		}

		var events []models.Event
		if err := cursor.All(ctx, &events); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode events"})
			return
		}

		if len(events) == 0 {
			c.JSON(http.StatusOK, []models.Event{})
			return
		}

		// --- Pick the most recently updated event ---
		latest := events[0]
		for _, ev := range events {
			if ev.UpdatedAt.After(latest.UpdatedAt) {
				latest = ev
			}
		}

		// --- Generate ETag from latest event ---
		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		// --- Add Last-Modified from latest event ---
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, events)
	}
}

// ---------------- GET ----------------
func GetEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		var event models.Event
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.MongoClient.Database(cfg.DBName).
			Collection("events").
			FindOne(ctx, bson.M{"_id": eventID}).
			Decode(&event)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		etag := utils.GenerateETag(event.ID, event.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, event)
	}
}

// ---------------- UPDATE ----------------
func UpdateEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ✅ Validate requester identity
		role := c.GetString("role")
		requesterID := c.GetString("user_id")
		if requesterID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// ✅ Validate event ID
		objID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		// ✅ Fetch existing event
		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Event
		if err := col.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		// ✅ Check permission
		if role != "admin" && existing.CreatorID.Hex() != requesterID {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		// ✅ Bind input (form-data for mixed text + file upload)
		var input struct {
			Title                string   `form:"title"`
			Description          string   `form:"description"`
			CategoryIDs          string   `form:"category_ids"`
			StartDate            string   `form:"start_date"`
			EndDate              string   `form:"end_date"`
			RegistrationDeadline string   `form:"registration_deadline"`
			LocationName         string   `form:"location_name"`
			AddressLine1         string   `form:"address_line1"`
			City                 string   `form:"city"`
			District             string   `form:"district"`
			MaxParticipants      string   `form:"max_participants"`
			Price                string   `form:"price"`
			Currency             string   `form:"currency"`
			Requirements         string   `form:"requirements"`
			SocialLinks          string   `form:"social_links"`
			ContactInfo          string   `form:"contact_info"`
			Images               []string `form:"images"` // existing image URLs to keep
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// ✅ Prepare update document
		update := bson.M{"updated_at": time.Now()}

		if input.Title != "" {
			update["title"] = input.Title
		}
		if input.Description != "" {
			update["description"] = input.Description
		}
		if input.CategoryIDs != "" {
			update["category_ids"] = splitCSV(input.CategoryIDs)
		}
		if input.StartDate != "" {
			parsed, err := filter.ParseDate(input.StartDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update["start_date"] = *parsed
		}
		if input.EndDate != "" {
			parsed, err := filter.ParseDate(input.EndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update["end_date"] = *parsed
		}
		if input.RegistrationDeadline != "" {
			parsed, err := filter.ParseDate(input.RegistrationDeadline)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update["registration_deadline"] = *parsed
		}
		if input.LocationName != "" {
			update["location.name"] = input.LocationName
		}
		if input.AddressLine1 != "" {
			update["location.address_line1"] = input.AddressLine1
		}
		if input.City != "" {
			update["location.city"] = input.City
		}
		if input.District != "" {
			update["location.district"] = input.District
		}
		if input.MaxParticipants != "" {
			parsed, err := filter.ParseCount(input.MaxParticipants)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update["participants.max"] = *parsed
		}
		if input.Price != "" {
			parsed, err := filter.ParsePrice(input.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			update["pricing.amount"] = *parsed
		}
		if input.Currency != "" {
			update["pricing.currency"] = input.Currency
		}
		if input.Requirements != "" {
			update["requirements"] = input.Requirements
		}
		if input.SocialLinks != "" {
			update["social_links"] = input.SocialLinks
		}
		if input.ContactInfo != "" {
			update["contact_info"] = input.ContactInfo
		}

		// ✅ Handle new image uploads (multipart form)
		newImageURLs := []string{}
		form, _ := c.MultipartForm()
		if form != nil {
			files := form.File["new_images"] // key = "new_images"
			for _, fileHeader := range files {
				file, err := fileHeader.Open()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open image"})
					return
				}
				url, err := utils.UploadToCloudinary(file, fileHeader)
				file.Close()
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed", "details": err.Error()})
					return
				}
				newImageURLs = append(newImageURLs, url)
			}
		}

		// ✅ Merge images (keep provided + add new)
		if input.Images != nil || len(newImageURLs) > 0 {
			update["images"] = append(input.Images, newImageURLs...)
		}

		// ❗ Reject empty update
		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		// ✅ Apply update
		_, err = col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update event"})
			return
		}

		// ✅ Fetch updated event
		var updated models.Event
		if err := col.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve updated event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "event updated successfully",
			"event":   updated,
		})
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ✅ Validate requester identity
		role := c.GetString("role")
		requesterID := c.GetString("user_id")
		if requesterID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// ✅ Validate event ID
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// ✅ Fetch existing event
		var existing models.Event
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		// ✅ Check permission
		if role != "admin" && existing.CreatorID.Hex() != requesterID {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		// ✅ Delete event
		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		for _, img := range existing.Images {
			utils.DeleteFromCloudinary(img)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "event deleted successfully",
			"id":      oid.Hex(),
		})
	}
}

// ---------------- JOIN ----------------
func JoinEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")
		userID, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var event models.Event
		if err := col.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}

		if event.RegistrationDeadline != nil && time.Now().After(*event.RegistrationDeadline) {
			c.JSON(http.StatusConflict, gin.H{"error": "registration deadline has passed"})
			return
		}
		if event.Participants.IsFull() {
			c.JSON(http.StatusConflict, gin.H{"error": "event is full"})
			return
		}
		for _, id := range event.AttendeeIDs {
			if id == userID {
				c.JSON(http.StatusConflict, gin.H{"error": "already joined"})
				return
			}
		}

		// Guard against racing joins: only count up while the user is not yet
		// an attendee and a capacity limit, when set, is not exceeded.
		joinFilter := bson.M{
			"_id":          eventID,
			"attendee_ids": bson.M{"$ne": userID},
		}
		if event.Participants.Max > 0 {
			joinFilter["participants.current"] = bson.M{"$lt": event.Participants.Max}
		}
		res, err := col.UpdateOne(ctx, joinFilter, bson.M{
			"$addToSet": bson.M{"attendee_ids": userID},
			"$inc":      bson.M{"participants.current": 1},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not join event"})
			return
		}
		if res.ModifiedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "event is full or already joined"})
			return
		}

		if event.Organizer.Email != "" {
			go utils.SendJoinNotification(event.Organizer.Email, event.Title, uid)
		}

		remaining := event.Participants.Remaining()
		if remaining > 0 {
			remaining-- // this join took one spot
		}
		c.JSON(http.StatusOK, gin.H{
			"message":         "joined event",
			"event_id":        eventID.Hex(),
			"remaining_spots": remaining,
		})
	}
}

// ---------------- LEAVE ----------------
func LeaveEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("user_id")
		userID, err := primitive.ObjectIDFromHex(uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			return
		}

		eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("events")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{
			"_id":          eventID,
			"attendee_ids": userID,
		}, bson.M{
			"$pull": bson.M{"attendee_ids": userID},
			"$inc":  bson.M{"participants.current": -1},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not leave event"})
			return
		}
		if res.ModifiedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "not attending this event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "left event",
			"event_id": eventID.Hex(),
		})
	}
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
