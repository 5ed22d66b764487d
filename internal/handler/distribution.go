package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/middleware"
	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DistributionHandler serves distribution creation and listing.
type DistributionHandler struct {
	DB *gorm.DB
}

func NewDistributionHandler(db *gorm.DB) *DistributionHandler {
	return &DistributionHandler{DB: db}
}

type lineItemReq struct {
	ProductID uint             `json:"ID_Prodotto"`
	Quantity  *decimal.Decimal `json:"QuantitaDistribuita"`
}

type createDistributionReq struct {
	FamilyID    uint          `json:"ID_Famiglia"`
	Date        string        `json:"DataDistribuzione"`
	Notes       string        `json:"Note"`
	VolunteerID *uint         `json:"ID_VolontarioConsegna"`
	Status      string        `json:"Stato"`
	LineItems   []lineItemReq `json:"prodotti"`
}

// insufficientStockError carries the offending product out of the transaction.
type insufficientStockError struct {
	ProductID uint
}

func (e *insufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

// Create persists the distribution header, its line items and the matching
// inventory decrements as one transaction. Any missing or insufficient
// inventory entry aborts the whole operation.
func (h *DistributionHandler) Create(c *gin.Context) {
	var req createDistributionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}
	if req.FamilyID == 0 || req.Date == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: ID_Famiglia e DataDistribuzione sono obbligatori")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "DataDistribuzione non valida, usare YYYY-MM-DD")
		return
	}
	status := req.Status
	if status == "" {
		status = models.DistributionPlanned
	}
	if !models.ValidDistributionStatus(status) {
		util.Error(c, http.StatusBadRequest, "Stato non valido")
		return
	}
	for _, item := range req.LineItems {
		if item.ProductID == 0 || item.Quantity == nil {
			util.Error(c, http.StatusBadRequest, "Dettaglio prodotto non valido: ID_Prodotto e QuantitaDistribuita sono obbligatori")
			return
		}
	}

	var familyCount int64
	if err := h.DB.Model(&models.Family{}).Where("id = ?", req.FamilyID).Count(&familyCount).Error; err != nil {
		util.ServerError(c)
		return
	}
	if familyCount == 0 {
		util.Error(c, http.StatusNotFound, "Famiglia non trovata")
		return
	}

	volunteerID := req.VolunteerID
	if volunteerID == nil {
		if user := middleware.CurrentUser(c); user != nil {
			volunteerID = &user.ID
		}
	}

	distribution := models.Distribution{
		FamilyID:    req.FamilyID,
		Date:        date,
		Notes:       req.Notes,
		VolunteerID: volunteerID,
		Status:      status,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&distribution).Error; err != nil {
			return err
		}

		for _, item := range req.LineItems {
			var entry models.InventoryEntry
			if err := tx.Where("product_id = ?", item.ProductID).First(&entry).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &insufficientStockError{ProductID: item.ProductID}
				}
				return err
			}
			if entry.Quantity.LessThan(*item.Quantity) {
				return &insufficientStockError{ProductID: item.ProductID}
			}

			entry.Quantity = entry.Quantity.Sub(*item.Quantity)
			if err := tx.Save(&entry).Error; err != nil {
				return err
			}

			detail := models.DistributionLineItem{
				DistributionID: distribution.ID,
				ProductID:      item.ProductID,
				Quantity:       *item.Quantity,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var insufficient *insufficientStockError
		if errors.As(err, &insufficient) {
			util.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Quantità non sufficiente per il prodotto ID %d", insufficient.ProductID))
			return
		}
		util.ServerError(c)
		return
	}

	util.Created(c, "Distribuzione creata con successo", distribution.ID)
}

// distributionRow is the denormalized listing shape.
type distributionRow struct {
	ID                 uint
	FamilyName         string
	Date               time.Time
	Status             string
	VolunteerFirstName *string
	VolunteerLastName  *string
}

// List returns distributions joined with family and volunteer, most recent
// first, optionally filtered by family and/or YYYY-MM month.
func (h *DistributionHandler) List(c *gin.Context) {
	q := h.DB.Model(&models.Distribution{}).
		Select(`distributions.id AS id,
			families.name AS family_name,
			distributions.date AS date,
			distributions.status AS status,
			users.first_name AS volunteer_first_name,
			users.last_name AS volunteer_last_name`).
		Joins("JOIN families ON families.id = distributions.family_id").
		Joins("LEFT JOIN users ON users.id = distributions.volunteer_id")

	if month := c.Query("mese"); month != "" {
		start, end, err := util.MonthRange(month)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Formato mese non valido. Usare YYYY-MM")
			return
		}
		q = q.Where("distributions.date BETWEEN ? AND ?", start, end)
	}
	if famStr := c.Query("id_famiglia"); famStr != "" {
		famID, err := strconv.Atoi(famStr)
		if err != nil || famID <= 0 {
			util.Error(c, http.StatusBadRequest, "id_famiglia non valido")
			return
		}
		q = q.Where("distributions.family_id = ?", famID)
	}

	var rows []distributionRow
	if err := q.Order("distributions.date DESC").Scan(&rows).Error; err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		volunteer := "N/A"
		if r.VolunteerFirstName != nil && *r.VolunteerFirstName != "" {
			volunteer = *r.VolunteerFirstName
			if r.VolunteerLastName != nil && *r.VolunteerLastName != "" {
				volunteer += " " + *r.VolunteerLastName
			}
		}
		out = append(out, gin.H{
			"ID_Distribuzione":  r.ID,
			"Destinatario":      r.FamilyName,
			"DataDistribuzione": r.Date.Format("2006-01-02"),
			"Stato":             r.Status,
			"Volontario":        volunteer,
		})
	}
	c.JSON(http.StatusOK, out)
}
