package handler

import (
	"net/http"
	"strings"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProjectHandler serves project creation (admin) and the public listing.
type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

type createProjectReq struct {
	Name        string `json:"NomeProgetto"`
	Description string `json:"Descrizione"`
	StartDate   string `json:"DataInizio"`
	EndDate     string `json:"DataFine"`
	Status      string `json:"Stato"`
	ImageURL    string `json:"ImmagineURL"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: NomeProgetto")
		return
	}

	status := req.Status
	if status == "" {
		status = models.ProjectPlanned
	}
	if !models.ValidProjectStatus(status) {
		util.Error(c, http.StatusBadRequest, "Stato non valido")
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		ImageURL:    req.ImageURL,
	}
	if req.StartDate != "" {
		d, err := util.ParseDate(req.StartDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "DataInizio non valida, usare YYYY-MM-DD")
			return
		}
		project.StartDate = &d
	}
	if req.EndDate != "" {
		d, err := util.ParseDate(req.EndDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "DataFine non valida, usare YYYY-MM-DD")
			return
		}
		project.EndDate = &d
	}

	if err := h.DB.Create(&project).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Progetto aggiunto con successo", project.ID)
}

func (h *ProjectHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.DB.Find(&projects).Error; err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(projects))
	for _, p := range projects {
		out = append(out, gin.H{
			"ID_Progetto":  p.ID,
			"NomeProgetto": p.Name,
			"Descrizione":  p.Description,
			"DataInizio":   util.ISODateOrNil(p.StartDate),
			"DataFine":     util.ISODateOrNil(p.EndDate),
			"Stato":        p.Status,
			"ImmagineURL":  p.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}
