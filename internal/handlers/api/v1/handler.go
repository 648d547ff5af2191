// Package v1 exposes the editor operations over HTTP using gin.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/services/assort"
	"github.com/sptforge/questforge/internal/services/preset"
	"github.com/sptforge/questforge/internal/services/quest"
)

// Config holds the services the handler depends on
type Config struct {
	QuestService  quest.Service
	AssortService assort.Service
	PresetService preset.Service
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.QuestService == nil {
		return errors.InvalidArgument("quest service is required")
	}
	if c.AssortService == nil {
		return errors.InvalidArgument("assort service is required")
	}
	if c.PresetService == nil {
		return errors.InvalidArgument("preset service is required")
	}
	return nil
}

// Handler serves the editor API
type Handler struct {
	quests  quest.Service
	assorts assort.Service
	presets preset.Service
}

// NewHandler creates a handler with the provided configuration
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{
		quests:  cfg.QuestService,
		assorts: cfg.AssortService,
		presets: cfg.PresetService,
	}, nil
}

// RegisterRoutes mounts the API under the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	quests := rg.Group("/quests")
	{
		quests.POST("", h.createQuest)
		quests.GET("", h.listQuests)
		quests.GET("/export", h.exportQuests)
		quests.POST("/import", h.importQuests)
		quests.GET("/:questId", h.getQuest)
		quests.PUT("/:questId", h.updateQuest)
		quests.DELETE("/:questId", h.deleteQuest)
		quests.GET("/:questId/export", h.exportQuest)

		quests.POST("/:questId/conditions", h.addCondition)
		quests.PUT("/:questId/conditions/:conditionId", h.updateCondition)
		quests.DELETE("/:questId/conditions/:conditionId", h.deleteCondition)

		quests.POST("/:questId/rewards", h.addReward)
		quests.PUT("/:questId/rewards/:rewardId", h.updateReward)
		quests.DELETE("/:questId/rewards/:rewardId", h.deleteReward)
	}

	assorts := rg.Group("/assort")
	{
		assorts.POST("/build", h.buildAssort)
		assorts.POST("/parse", h.parseAssort)
	}

	presets := rg.Group("/presets")
	{
		presets.POST("", h.createPreset)
		presets.GET("", h.listPresets)
		presets.GET("/export", h.exportPresets)
		presets.POST("/import", h.importPresets)
		presets.GET("/:presetId", h.getPreset)
		presets.DELETE("/:presetId", h.deletePreset)
		presets.PUT("/:presetId/name", h.updatePresetName)
		presets.PUT("/:presetId/base-weapon", h.setBaseWeapon)
		presets.GET("/:presetId/export", h.exportPreset)

		presets.POST("/:presetId/parts", h.addPart)
		presets.PUT("/:presetId/parts/:partId", h.updatePart)
		presets.DELETE("/:presetId/parts/:partId", h.deletePart)
	}
}

// respondError maps a service error onto an HTTP status and JSON body.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.JSON(code.HTTPStatus(), gin.H{
		"code":  string(code),
		"error": err.Error(),
	})
}

// respondFile sends serialized document bytes as a JSON download.
func respondFile(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}
