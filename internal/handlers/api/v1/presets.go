package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/metrics"
	"github.com/sptforge/questforge/internal/services/preset"
)

type renamePresetRequest struct {
	Name string `json:"name"`
}

type setBaseWeaponRequest struct {
	WeaponTpl string `json:"weaponTpl"`
}

type partRequest struct {
	ItemTpl  string `json:"itemTpl"`
	ParentID string `json:"parentId"`
	ModSlot  string `json:"modSlot"`
}

func (r *partRequest) form() preset.PartForm {
	return preset.PartForm{
		ItemTpl:  r.ItemTpl,
		ParentID: r.ParentID,
		ModSlot:  r.ModSlot,
	}
}

func (h *Handler) createPreset(c *gin.Context) {
	output, err := h.presets.CreatePreset(c.Request.Context(), &preset.CreatePresetInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Preset)
}

func (h *Handler) listPresets(c *gin.Context) {
	output, err := h.presets.ListPresets(c.Request.Context(), &preset.ListPresetsInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Presets)
}

func (h *Handler) getPreset(c *gin.Context) {
	output, err := h.presets.GetPreset(c.Request.Context(), &preset.GetPresetInput{
		PresetID: c.Param("presetId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Preset)
}

func (h *Handler) deletePreset(c *gin.Context) {
	_, err := h.presets.DeletePreset(c.Request.Context(), &preset.DeletePresetInput{
		PresetID: c.Param("presetId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updatePresetName(c *gin.Context) {
	var req renamePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.presets.UpdateName(c.Request.Context(), &preset.UpdateNameInput{
		PresetID: c.Param("presetId"),
		Name:     req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Preset)
}

func (h *Handler) setBaseWeapon(c *gin.Context) {
	var req setBaseWeaponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.presets.SetBaseWeapon(c.Request.Context(), &preset.SetBaseWeaponInput{
		PresetID:  c.Param("presetId"),
		WeaponTpl: req.WeaponTpl,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Preset)
}

func (h *Handler) addPart(c *gin.Context) {
	var req partRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.presets.AddPart(c.Request.Context(), &preset.AddPartInput{
		PresetID: c.Param("presetId"),
		Part:     req.form(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Item)
}

func (h *Handler) updatePart(c *gin.Context) {
	var req partRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	output, err := h.presets.UpdatePart(c.Request.Context(), &preset.UpdatePartInput{
		PresetID: c.Param("presetId"),
		PartID:   c.Param("partId"),
		Part:     req.form(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Item)
}

func (h *Handler) deletePart(c *gin.Context) {
	_, err := h.presets.DeletePart(c.Request.Context(), &preset.DeletePartInput{
		PresetID: c.Param("presetId"),
		PartID:   c.Param("partId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportPreset(c *gin.Context) {
	output, err := h.presets.ExportPreset(c.Request.Context(), &preset.ExportPresetInput{
		PresetID: c.Param("presetId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.DocumentsExported.WithLabelValues("preset").Inc()
	respondFile(c, output.Filename, output.Data)
}

func (h *Handler) exportPresets(c *gin.Context) {
	output, err := h.presets.ExportPresets(c.Request.Context(), &preset.ExportPresetsInput{})
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.DocumentsExported.WithLabelValues("presets").Inc()
	respondFile(c, output.Filename, output.Data)
}

func (h *Handler) importPresets(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		respondError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request body"))
		return
	}

	output, err := h.presets.ImportPresets(c.Request.Context(), &preset.ImportPresetsInput{Data: data})
	if err != nil {
		metrics.DocumentsImported.WithLabelValues("presets", "error").Inc()
		respondError(c, err)
		return
	}
	metrics.DocumentsImported.WithLabelValues("presets", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"imported": output.Imported})
}
