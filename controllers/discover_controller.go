package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/emre/event-discovery-go/config"
	filter "github.com/emre/event-discovery-go/filter"
	store "github.com/emre/event-discovery-go/store"
)

// ---------------- DISCOVER ----------------
// DiscoverEvents runs the filter and sort engine over the full event
// collection: query parameters cross the input boundary into criteria, the
// composition controller loads, filters and sorts, and the ordered snapshot
// is returned. Zero matches with no error is a legitimate empty page.
func DiscoverEvents(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria, sortOpt, err := filter.FromQuery(c.Request.URL.Query())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctl := filter.NewController(store.NewMongo(cfg.MongoClient, cfg.DBName))
		ctl.SetCriteria(criteria)
		ctl.SetSort(sortOpt)

		if err := ctl.Load(c.Request.Context()); err != nil {
			snap := ctl.Snapshot()
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  snap.ErrorMessage,
				"events": snap.Events,
			})
			return
		}

		snap := ctl.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"events":              snap.Events,
			"total":               len(snap.Events),
			"sort":                string(snap.Sort),
			"active_filter_count": snap.ActiveFilterCount,
		})
	}
}
