// Package spt defines the canonical document shapes consumed by the SPT
// game server: quests, trader assorts, and weapon presets. Field names and
// nesting are contractual; they must match the server's expected schema
// exactly.
package spt

import "fmt"

// Quest is a task definition keyed by its 24-hex-character id.
type Quest struct {
	ID                         string          `json:"_id"`
	AcceptPlayerMessage        string          `json:"acceptPlayerMessage"`
	CanShowNotificationsInGame bool            `json:"canShowNotificationsInGame"`
	ChangeQuestMessageText     string          `json:"changeQuestMessageText"`
	CompletePlayerMessage      string          `json:"completePlayerMessage"`
	Conditions                 QuestConditions `json:"conditions"`
	DeclinePlayerMessage       string          `json:"declinePlayerMessage"`
	Description                string          `json:"description"`
	FailMessageText            string          `json:"failMessageText"`
	Image                      string          `json:"image"`
	InstantComplete            bool            `json:"instantComplete"`
	IsKey                      bool            `json:"isKey"`
	Location                   string          `json:"location"`
	Name                       string          `json:"name"`
	Note                       string          `json:"note"`
	QuestName                  string          `json:"QuestName"`
	Restartable                bool            `json:"restartable"`
	Rewards                    QuestRewards    `json:"rewards"`
	SecretQuest                bool            `json:"secretQuest"`
	Side                       string          `json:"side"`
	StartedMessageText         string          `json:"startedMessageText"`
	SuccessMessageText         string          `json:"successMessageText"`
	TraderID                   string          `json:"traderId"`
	Type                       string          `json:"type"`
}

// QuestFile is the export/import format: quests keyed by id.
type QuestFile map[string]*Quest

// QuestMessages holds the free-text locale fields of a quest.
type QuestMessages struct {
	AcceptPlayerMessage    string
	ChangeQuestMessageText string
	CompletePlayerMessage  string
	DeclinePlayerMessage   string
	Description            string
	FailMessageText        string
	Name                   string
	Note                   string
	StartedMessageText     string
	SuccessMessageText     string
}

// DefaultMessages derives placeholder locale text from a quest id, one
// entry per locale field.
func DefaultMessages(questID string) QuestMessages {
	return QuestMessages{
		AcceptPlayerMessage:    fmt.Sprintf("%s acceptPlayerMessage", questID),
		ChangeQuestMessageText: fmt.Sprintf("%s changeQuestMessageText", questID),
		CompletePlayerMessage:  fmt.Sprintf("%s completePlayerMessage", questID),
		DeclinePlayerMessage:   fmt.Sprintf("%s declinePlayerMessage", questID),
		Description:            fmt.Sprintf("%s description", questID),
		FailMessageText:        fmt.Sprintf("%s failMessageText", questID),
		Name:                   fmt.Sprintf("%s name", questID),
		Note:                   fmt.Sprintf("%s note", questID),
		StartedMessageText:     fmt.Sprintf("%s startedMessageText", questID),
		SuccessMessageText:     fmt.Sprintf("%s successMessageText", questID),
	}
}

// ConditionCount returns the total number of conditions across categories.
func (q *Quest) ConditionCount() int {
	return len(q.Conditions.AvailableForStart) +
		len(q.Conditions.AvailableForFinish) +
		len(q.Conditions.Fail)
}

// RewardCount returns the total number of rewards across timings.
func (q *Quest) RewardCount() int {
	return len(q.Rewards.Success) + len(q.Rewards.Started) + len(q.Rewards.Fail)
}
