package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	v1 "github.com/sptforge/questforge/internal/handlers/api/v1"
	"github.com/sptforge/questforge/internal/pkg/idgen"
	presetrepo "github.com/sptforge/questforge/internal/repositories/presets"
	questrepo "github.com/sptforge/questforge/internal/repositories/quests"
	"github.com/sptforge/questforge/internal/services/assort"
	"github.com/sptforge/questforge/internal/services/conversion"
	"github.com/sptforge/questforge/internal/services/preset"
	"github.com/sptforge/questforge/internal/services/quest"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	idGen := idgen.NewSequential()

	conditions, err := conversion.NewConditionConverter(&conversion.ConditionConverterConfig{
		IDGenerator: idGen,
	})
	s.Require().NoError(err)
	rewards, err := conversion.NewRewardConverter(&conversion.RewardConverterConfig{
		IDGenerator: idGen,
	})
	s.Require().NoError(err)
	assortConv, err := conversion.NewAssortConverter(&conversion.AssortConverterConfig{
		IDGenerator: idGen,
	})
	s.Require().NoError(err)

	questSvc, err := quest.NewService(&quest.Config{
		Repository: questrepo.NewInMemory(),
		Conditions: conditions,
		Rewards:    rewards,
		IDGen:      idGen,
	})
	s.Require().NoError(err)
	assortSvc, err := assort.NewService(&assort.Config{
		Converter: assortConv,
	})
	s.Require().NoError(err)
	presetSvc, err := preset.NewService(&preset.Config{
		Repository: presetrepo.NewInMemory(),
		IDGen:      idGen,
	})
	s.Require().NoError(err)

	handler, err := v1.NewHandler(&v1.Config{
		QuestService:  questSvc,
		AssortService: assortSvc,
		PresetService: presetSvc,
	})
	s.Require().NoError(err)

	s.router = v1.NewRouter(handler)
}

func (s *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) createQuest() string {
	w := s.request(http.MethodPost, "/api/v1/quests", nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	id, ok := body["_id"].(string)
	s.Require().True(ok)
	return id
}

func (s *HandlerTestSuite) TestHealthz() {
	w := s.request(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal("test-request-id", w.Header().Get("X-Request-ID"))
}

func (s *HandlerTestSuite) TestRequestIDGenerated() {
	w := s.request(http.MethodGet, "/healthz", nil)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *HandlerTestSuite) TestMetricsEndpoint() {
	s.request(http.MethodGet, "/healthz", nil)

	w := s.request(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "questforge_http_requests_total")
}

func (s *HandlerTestSuite) TestCreateQuest() {
	w := s.request(http.MethodPost, "/api/v1/quests", nil)
	s.Require().Equal(http.StatusCreated, w.Code)

	body := s.decode(w)
	id := body["_id"].(string)
	s.Len(id, 24)
	s.Equal("New Quest", body["QuestName"])
	s.Equal("any", body["location"])
}

func (s *HandlerTestSuite) TestGetQuestNotFound() {
	w := s.request(http.MethodGet, "/api/v1/quests/missing", nil)
	s.Require().Equal(http.StatusNotFound, w.Code)

	body := s.decode(w)
	s.Equal("NOT_FOUND", body["code"])
}

func (s *HandlerTestSuite) TestUpdateQuest() {
	id := s.createQuest()

	w := s.request(http.MethodPut, "/api/v1/quests/"+id, map[string]any{
		"questName": "Supply Run",
		"trader":    "Therapist",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("Supply Run", body["QuestName"])
}

func (s *HandlerTestSuite) TestUpdateQuestInvalidBody() {
	id := s.createQuest()

	w := s.request(http.MethodPut, "/api/v1/quests/"+id, []byte("{not json"))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteQuest() {
	id := s.createQuest()

	w := s.request(http.MethodDelete, "/api/v1/quests/"+id, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.request(http.MethodGet, "/api/v1/quests/"+id, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestConditionLifecycle() {
	questID := s.createQuest()

	w := s.request(http.MethodPost, "/api/v1/quests/"+questID+"/conditions", map[string]any{
		"type":     "HandoverItem",
		"category": "AvailableForFinish",
		"target":   "5449016a4bdc2d6f028b456f",
		"value":    3,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	body := s.decode(w)
	conditionID := body["id"].(string)
	s.Len(conditionID, 24)

	w = s.request(http.MethodPut, "/api/v1/quests/"+questID+"/conditions/"+conditionID, map[string]any{
		"type":     "HandoverItem",
		"category": "AvailableForFinish",
		"id":       conditionID,
		"target":   "5449016a4bdc2d6f028b456f",
		"value":    5,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodDelete,
		"/api/v1/quests/"+questID+"/conditions/"+conditionID+"?category=AvailableForFinish", nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestAddConditionUnknownType() {
	questID := s.createQuest()

	w := s.request(http.MethodPost, "/api/v1/quests/"+questID+"/conditions", map[string]any{
		"type":     "Mystery",
		"category": "AvailableForFinish",
	})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	body := s.decode(w)
	s.Equal("INVALID_ARGUMENT", body["code"])
}

func (s *HandlerTestSuite) TestRewardLifecycle() {
	questID := s.createQuest()

	w := s.request(http.MethodPost, "/api/v1/quests/"+questID+"/rewards", map[string]any{
		"type":    "Experience",
		"timing":  "Success",
		"value":   2500,
		"unknown": false,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	body := s.decode(w)
	rewardID := body["id"].(string)

	w = s.request(http.MethodDelete,
		"/api/v1/quests/"+questID+"/rewards/"+rewardID+"?timing=Success", nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestExportQuestsEmpty() {
	w := s.request(http.MethodGet, "/api/v1/quests/export", nil)
	s.Equal(http.StatusPreconditionFailed, w.Code)
}

func (s *HandlerTestSuite) TestExportQuests() {
	s.createQuest()

	w := s.request(http.MethodGet, "/api/v1/quests/export", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="quests.json"`, w.Header().Get("Content-Disposition"))
	s.True(strings.HasPrefix(w.Body.String(), "{"))
}

func (s *HandlerTestSuite) TestImportQuests() {
	id := s.createQuest()

	export := s.request(http.MethodGet, "/api/v1/quests/"+id+"/export", nil)
	s.Require().Equal(http.StatusOK, export.Code)

	w := s.request(http.MethodDelete, "/api/v1/quests/"+id, nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.request(http.MethodPost, "/api/v1/quests/import", export.Body.Bytes())
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal(float64(1), body["imported"])

	w = s.request(http.MethodGet, "/api/v1/quests/"+id, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestImportQuestsMalformed() {
	w := s.request(http.MethodPost, "/api/v1/quests/import", []byte("not json"))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestBuildAssort() {
	w := s.request(http.MethodPost, "/api/v1/assort/build", map[string]any{
		"trader": "Therapist",
		"items": []map[string]any{
			{"itemTpl": "544fb45d4bdc2dee738b4568", "count": 5, "price": 12000},
		},
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="therapist_assort.json"`, w.Header().Get("Content-Disposition"))
	s.Contains(w.Body.String(), "barter_scheme")
}

func (s *HandlerTestSuite) TestBuildAssortUnknownTrader() {
	w := s.request(http.MethodPost, "/api/v1/assort/build", map[string]any{
		"trader": "Nobody",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestParseAssortRoundTrip() {
	build := s.request(http.MethodPost, "/api/v1/assort/build", map[string]any{
		"trader": "Prapor",
		"items": []map[string]any{
			{"itemTpl": "5449016a4bdc2d6f028b456f", "count": 10, "price": 500},
		},
	})
	s.Require().Equal(http.StatusOK, build.Code)

	w := s.request(http.MethodPost, "/api/v1/assort/parse", build.Body.Bytes())
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	items := body["items"].([]any)
	s.Require().Len(items, 1)
	item := items[0].(map[string]any)
	s.Equal("5449016a4bdc2d6f028b456f", item["itemTpl"])
	s.Equal(float64(10), item["count"])
}

func (s *HandlerTestSuite) createPreset() string {
	w := s.request(http.MethodPost, "/api/v1/presets", nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	return body["_id"].(string)
}

func (s *HandlerTestSuite) TestCreatePreset() {
	w := s.request(http.MethodPost, "/api/v1/presets", nil)
	s.Require().Equal(http.StatusCreated, w.Code)

	body := s.decode(w)
	s.Len(body["_id"].(string), 24)
	s.Equal("New Weapon Preset", body["_name"])
}

func (s *HandlerTestSuite) TestPresetPartLifecycle() {
	presetID := s.createPreset()

	w := s.request(http.MethodPut, "/api/v1/presets/"+presetID+"/base-weapon", map[string]any{
		"weaponTpl": "5447a9cd4bdc2dbd208b4567",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("5447a9cd4bdc2dbd208b4567", body["_parent"])

	items := body["_items"].([]any)
	base := items[0].(map[string]any)
	baseID := base["_id"].(string)

	w = s.request(http.MethodPost, "/api/v1/presets/"+presetID+"/parts", map[string]any{
		"itemTpl":  "55d4b9964bdc2d1d4e8b456e",
		"parentId": baseID,
		"modSlot":  "mod_pistol_grip",
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	part := s.decode(w)
	partID := part["_id"].(string)

	w = s.request(http.MethodDelete, "/api/v1/presets/"+presetID+"/parts/"+partID, nil)
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestRenamePreset() {
	presetID := s.createPreset()

	w := s.request(http.MethodPut, "/api/v1/presets/"+presetID+"/name", map[string]any{
		"name": "M4A1 Long Barrel",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	body := s.decode(w)
	s.Equal("M4A1 Long Barrel", body["_name"])
}

func (s *HandlerTestSuite) TestExportPresetFilename() {
	presetID := s.createPreset()

	s.request(http.MethodPut, "/api/v1/presets/"+presetID+"/name", map[string]any{
		"name": "M4A1 Long Barrel",
	})

	w := s.request(http.MethodGet, "/api/v1/presets/"+presetID+"/export", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="M4A1_Long_Barrel_preset.json"`, w.Header().Get("Content-Disposition"))
}

func (s *HandlerTestSuite) TestImportPresetsReplaces() {
	first := s.createPreset()

	export := s.request(http.MethodGet, "/api/v1/presets/export", nil)
	s.Require().Equal(http.StatusOK, export.Code)

	second := s.createPreset()

	w := s.request(http.MethodPost, "/api/v1/presets/import", export.Body.Bytes())
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/presets/"+first, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/presets/"+second, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
