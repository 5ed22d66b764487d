package handler

import (
	"net/http"
	"strings"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityHandler serves activity creation (admin) and the public listing.
type ActivityHandler struct {
	DB *gorm.DB
}

func NewActivityHandler(db *gorm.DB) *ActivityHandler {
	return &ActivityHandler{DB: db}
}

type createActivityReq struct {
	ProjectID   *uint  `json:"ID_Progetto"` // nullable
	Name        string `json:"NomeAttivita"`
	Description string `json:"Descrizione"`
	Date        string `json:"DataAttivita"`
	Location    string `json:"Luogo"`
	ImageURL    string `json:"ImmagineURL"`
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: NomeAttivita")
		return
	}

	if req.ProjectID != nil {
		var count int64
		if err := h.DB.Model(&models.Project{}).Where("id = ?", *req.ProjectID).Count(&count).Error; err != nil {
			util.ServerError(c)
			return
		}
		if count == 0 {
			util.Error(c, http.StatusNotFound, "Progetto non trovato")
			return
		}
	}

	activity := models.Activity{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}
	if req.Date != "" {
		t, err := util.ParseDateTime(req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "DataAttivita non valida")
			return
		}
		activity.Date = &t
	}

	if err := h.DB.Create(&activity).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Attività aggiunta con successo", activity.ID)
}

// List returns activities most recent first.
func (h *ActivityHandler) List(c *gin.Context) {
	var activities []models.Activity
	if err := h.DB.Order("date DESC").Find(&activities).Error; err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(activities))
	for _, a := range activities {
		out = append(out, gin.H{
			"ID_Attivita":  a.ID,
			"ID_Progetto":  a.ProjectID,
			"NomeAttivita": a.Name,
			"Descrizione":  a.Description,
			"DataAttivita": util.ISOTimeOrNil(a.Date),
			"Luogo":        a.Location,
			"ImmagineURL":  a.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}
