package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/emre/event-discovery-go/config"
	filter "github.com/emre/event-discovery-go/filter"
	store "github.com/emre/event-discovery-go/store"
)

// ---------------- CATEGORIES ----------------
func ListCategories(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		src := store.NewMongo(cfg.MongoClient, cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		categories, err := src.FetchCategories(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// ---------------- GROUPS ----------------
func ListGroups(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		src := store.NewMongo(cfg.MongoClient, cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		groups, err := src.FetchGroups(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch groups"})
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// ---------------- PRESETS ----------------
// ListFilterPresets feeds the filter sheet its shortcut chips.
func ListFilterPresets(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"date":         []filter.DatePreset{filter.DateToday, filter.DateTomorrow, filter.DateThisWeek, filter.DateThisWeekend, filter.DateThisMonth},
			"price":        []filter.PricePreset{filter.PriceFree, filter.PriceBudget, filter.PriceMid, filter.PricePremium},
			"participants": []filter.ParticipantsPreset{filter.ParticipantsIntimate, filter.ParticipantsMedium, filter.ParticipantsCrowded},
			"locations":    filter.LocationPresets,
		})
	}
}
