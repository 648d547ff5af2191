package spt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sptforge/questforge/internal/entities/spt"
)

func TestConditionListDispatchesOnType(t *testing.T) {
	data := []byte(`[
		{
			"conditionType": "HandoverItem",
			"id": "aaaaaaaaaaaaaaaaaaaaaaaa",
			"index": 0,
			"target": ["5449016a4bdc2d6f028b456f"],
			"value": 3,
			"maxDurability": 100,
			"onlyFoundInRaid": true
		},
		{
			"conditionType": "Level",
			"id": "bbbbbbbbbbbbbbbbbbbbbbbb",
			"index": 1,
			"compareMethod": ">=",
			"value": 15
		}
	]`)

	var list spt.ConditionList
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 2)

	item, ok := list[0].(*spt.ItemCondition)
	require.True(t, ok)
	assert.Equal(t, []string{"5449016a4bdc2d6f028b456f"}, item.Target)
	assert.Equal(t, 3, item.Value)
	assert.Equal(t, 100, item.MaxDurability)
	assert.True(t, item.OnlyFoundInRaid)

	level, ok := list[1].(*spt.LevelCondition)
	require.True(t, ok)
	assert.Equal(t, ">=", level.CompareMethod)
	assert.Equal(t, 15, level.Value)
}

func TestConditionListNestedCounter(t *testing.T) {
	data := []byte(`[{
		"conditionType": "CounterCreator",
		"id": "cccccccccccccccccccccccc",
		"index": 0,
		"type": "Elimination",
		"value": 5,
		"counter": {
			"id": "dddddddddddddddddddddddd",
			"conditions": [{
				"conditionType": "Kills",
				"id": "eeeeeeeeeeeeeeeeeeeeeeee",
				"target": "Savage",
				"weapon": ["5447a9cd4bdc2dbd208b4567"],
				"daytime": {"from": 0, "to": 0},
				"distance": {"compareMethod": ">=", "value": 0}
			}]
		}
	}]`)

	var list spt.ConditionList
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)

	counter, ok := list[0].(*spt.CounterCreatorCondition)
	require.True(t, ok)
	assert.Equal(t, "Elimination", counter.Type)
	require.Len(t, counter.Counter.Conditions, 1)

	kills, ok := counter.Counter.Conditions[0].(*spt.KillsCondition)
	require.True(t, ok)
	assert.Equal(t, "Savage", kills.Target)
	assert.Equal(t, []string{"5447a9cd4bdc2dbd208b4567"}, kills.Weapon)
	assert.Equal(t, ">=", kills.Distance.CompareMethod)
}

func TestConditionListKeepsUnknownTypesRaw(t *testing.T) {
	data := []byte(`[{
		"conditionType": "HealthEffect",
		"id": "ffffffffffffffffffffffff",
		"bodyPartsWithEffects": [{"bodyParts": ["Head"], "effects": ["Fracture"]}]
	}]`)

	var list spt.ConditionList
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)

	raw, ok := list[0].(spt.RawCondition)
	require.True(t, ok)
	assert.Equal(t, "HealthEffect", raw.Kind())
	assert.Equal(t, "ffffffffffffffffffffffff", raw.ConditionID())

	// the raw document survives a marshal with its unmodeled fields
	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Contains(t, string(out), "bodyPartsWithEffects")
}

func TestCounterConditionListRejectsUnknownType(t *testing.T) {
	data := []byte(`[{"conditionType": "Shots", "id": "aaaaaaaaaaaaaaaaaaaaaaaa"}]`)

	var list spt.CounterConditionList
	err := json.Unmarshal(data, &list)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown counter condition type")
}

func TestQuestConditionsList(t *testing.T) {
	conditions := spt.NewQuestConditions()

	assert.NotNil(t, conditions.List(spt.CategoryAvailableForStart))
	assert.NotNil(t, conditions.List(spt.CategoryAvailableForFinish))
	assert.NotNil(t, conditions.List(spt.CategoryFail))
	assert.Nil(t, conditions.List("Bonus"))
}
