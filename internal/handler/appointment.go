package handler

import (
	"net/http"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppointmentHandler serves appointment creation and the month-filtered listing.
type AppointmentHandler struct {
	DB *gorm.DB
}

func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

type createAppointmentReq struct {
	FamilyID   *uint  `json:"ID_Famiglia"`
	ActivityID *uint  `json:"ID_Attivita"`
	Title      string `json:"Titolo"`
	Date       string `json:"DataOraAppuntamento"`
	Location   string `json:"Luogo"`
	Notes      string `json:"Note"`
	Status     string `json:"Stato"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}
	if req.Date == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: DataOraAppuntamento")
		return
	}
	date, err := util.ParseDateTime(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "DataOraAppuntamento non valida")
		return
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentPlanned
	}
	if !models.ValidAppointmentStatus(status) {
		util.Error(c, http.StatusBadRequest, "Stato non valido")
		return
	}

	if req.FamilyID != nil {
		var count int64
		if err := h.DB.Model(&models.Family{}).Where("id = ?", *req.FamilyID).Count(&count).Error; err != nil {
			util.ServerError(c)
			return
		}
		if count == 0 {
			util.Error(c, http.StatusNotFound, "Famiglia non trovata")
			return
		}
	}
	if req.ActivityID != nil {
		var count int64
		if err := h.DB.Model(&models.Activity{}).Where("id = ?", *req.ActivityID).Count(&count).Error; err != nil {
			util.ServerError(c)
			return
		}
		if count == 0 {
			util.Error(c, http.StatusNotFound, "Attività non trovata")
			return
		}
	}

	appointment := models.Appointment{
		FamilyID:   req.FamilyID,
		ActivityID: req.ActivityID,
		Title:      req.Title,
		Date:       date,
		Location:   req.Location,
		Notes:      req.Notes,
		Status:     status,
	}
	if err := h.DB.Create(&appointment).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Appuntamento creato", appointment.ID)
}

// List returns appointments in chronological order, optionally restricted to
// a YYYY-MM month. Rows with a family reference carry the family name.
func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.DB.Model(&models.Appointment{})

	if month := c.Query("mese_anno"); month != "" {
		start, end, err := util.MonthRange(month)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Formato mese_anno non valido. Usare YYYY-MM")
			return
		}
		q = q.Where("date BETWEEN ? AND ?", start, end)
	}

	var appointments []models.Appointment
	if err := q.Order("date").Find(&appointments).Error; err != nil {
		util.ServerError(c)
		return
	}

	// one batched lookup for family names instead of a query per row
	familyIDs := make([]uint, 0, len(appointments))
	for _, a := range appointments {
		if a.FamilyID != nil {
			familyIDs = append(familyIDs, *a.FamilyID)
		}
	}
	familyNames := make(map[uint]string, len(familyIDs))
	if len(familyIDs) > 0 {
		var families []models.Family
		if err := h.DB.Where("id IN ?", familyIDs).Find(&families).Error; err != nil {
			util.ServerError(c)
			return
		}
		for _, f := range families {
			familyNames[f.ID] = f.Name
		}
	}

	out := make([]gin.H, 0, len(appointments))
	for _, a := range appointments {
		item := gin.H{
			"ID_Appuntamento":     a.ID,
			"Titolo":              a.Title,
			"DataOraAppuntamento": a.Date.Format(time.RFC3339),
			"Luogo":               a.Location,
			"Note":                a.Notes,
			"Stato":               a.Status,
		}
		if a.FamilyID != nil {
			if name, ok := familyNames[*a.FamilyID]; ok {
				item["NomeFamiglia"] = name
			} else {
				item["NomeFamiglia"] = nil
			}
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}
