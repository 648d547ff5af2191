package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/metrics"
	"github.com/sptforge/questforge/internal/services/conversion"
	"github.com/sptforge/questforge/internal/services/quest"
)

// updateQuestRequest carries the scalar fields of a quest form save.
type updateQuestRequest struct {
	QuestName   string `json:"questName"`
	Trader      string `json:"trader"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Side        string `json:"side"`
	Description string `json:"description"`
	Image       string `json:"image"`

	InstantComplete            bool `json:"instantComplete"`
	Restartable                bool `json:"restartable"`
	SecretQuest                bool `json:"secretQuest"`
	IsKey                      bool `json:"isKey"`
	CanShowNotificationsInGame bool `json:"canShowNotificationsInGame"`

	AcceptPlayerMessage    string `json:"acceptPlayerMessage"`
	ChangeQuestMessageText string `json:"changeQuestMessageText"`
	CompletePlayerMessage  string `json:"completePlayerMessage"`
	DeclinePlayerMessage   string `json:"declinePlayerMessage"`
	FailMessageText        string `json:"failMessageText"`
	Note                   string `json:"note"`
	StartedMessageText     string `json:"startedMessageText"`
	SuccessMessageText     string `json:"successMessageText"`
}

func (h *Handler) createQuest(c *gin.Context) {
	output, err := h.quests.CreateQuest(c.Request.Context(), &quest.CreateQuestInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Quest)
}

func (h *Handler) listQuests(c *gin.Context) {
	output, err := h.quests.ListQuests(c.Request.Context(), &quest.ListQuestsInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Quests)
}

func (h *Handler) getQuest(c *gin.Context) {
	output, err := h.quests.GetQuest(c.Request.Context(), &quest.GetQuestInput{
		QuestID: c.Param("questId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Quest)
}

func (h *Handler) updateQuest(c *gin.Context) {
	var req updateQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.quests.UpdateQuest(c.Request.Context(), &quest.UpdateQuestInput{
		QuestID:                    c.Param("questId"),
		QuestName:                  req.QuestName,
		Trader:                     req.Trader,
		Location:                   req.Location,
		Type:                       req.Type,
		Side:                       req.Side,
		Description:                req.Description,
		Image:                      req.Image,
		InstantComplete:            req.InstantComplete,
		Restartable:                req.Restartable,
		SecretQuest:                req.SecretQuest,
		IsKey:                      req.IsKey,
		CanShowNotificationsInGame: req.CanShowNotificationsInGame,
		AcceptPlayerMessage:        req.AcceptPlayerMessage,
		ChangeQuestMessageText:     req.ChangeQuestMessageText,
		CompletePlayerMessage:      req.CompletePlayerMessage,
		DeclinePlayerMessage:       req.DeclinePlayerMessage,
		FailMessageText:            req.FailMessageText,
		Note:                       req.Note,
		StartedMessageText:         req.StartedMessageText,
		SuccessMessageText:         req.SuccessMessageText,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Quest)
}

func (h *Handler) deleteQuest(c *gin.Context) {
	_, err := h.quests.DeleteQuest(c.Request.Context(), &quest.DeleteQuestInput{
		QuestID: c.Param("questId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addCondition(c *gin.Context) {
	var form conversion.ConditionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.quests.AddCondition(c.Request.Context(), &quest.AddConditionInput{
		QuestID: c.Param("questId"),
		Form:    form,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Condition)
}

func (h *Handler) updateCondition(c *gin.Context) {
	var form conversion.ConditionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.quests.UpdateCondition(c.Request.Context(), &quest.UpdateConditionInput{
		QuestID:     c.Param("questId"),
		ConditionID: c.Param("conditionId"),
		Form:        form,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Condition)
}

func (h *Handler) deleteCondition(c *gin.Context) {
	_, err := h.quests.DeleteCondition(c.Request.Context(), &quest.DeleteConditionInput{
		QuestID:     c.Param("questId"),
		Category:    c.Query("category"),
		ConditionID: c.Param("conditionId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addReward(c *gin.Context) {
	var form conversion.RewardForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.quests.AddReward(c.Request.Context(), &quest.AddRewardInput{
		QuestID: c.Param("questId"),
		Form:    form,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Reward)
}

func (h *Handler) updateReward(c *gin.Context) {
	var form conversion.RewardForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.quests.UpdateReward(c.Request.Context(), &quest.UpdateRewardInput{
		QuestID:  c.Param("questId"),
		RewardID: c.Param("rewardId"),
		Form:     form,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Reward)
}

func (h *Handler) deleteReward(c *gin.Context) {
	_, err := h.quests.DeleteReward(c.Request.Context(), &quest.DeleteRewardInput{
		QuestID:  c.Param("questId"),
		Timing:   c.Query("timing"),
		RewardID: c.Param("rewardId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportQuests(c *gin.Context) {
	output, err := h.quests.ExportQuests(c.Request.Context(), &quest.ExportQuestsInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.DocumentsExported.WithLabelValues("quests").Inc()
	respondFile(c, output.Filename, output.Data)
}

func (h *Handler) exportQuest(c *gin.Context) {
	output, err := h.quests.ExportQuest(c.Request.Context(), &quest.ExportQuestInput{
		QuestID: c.Param("questId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.DocumentsExported.WithLabelValues("quest").Inc()
	respondFile(c, output.Filename, output.Data)
}

func (h *Handler) importQuests(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request body"))
		return
	}

	output, err := h.quests.ImportQuests(c.Request.Context(), &quest.ImportQuestsInput{Data: data})
	if err != nil {
		metrics.DocumentsImported.WithLabelValues("quests", "error").Inc()
		respondError(c, err)
		return
	}
	metrics.DocumentsImported.WithLabelValues("quests", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"imported": output.Imported})
}
